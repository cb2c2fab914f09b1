package memory

import (
	"context"
	"sync"

	"mandate-gateway/internal/core/domain"
	"mandate-gateway/pkg/apperror"
)

// MandateRepo is the in-memory implementation of
// ports.MandateRepository. Records are owned by the repo; all reads
// return copies. Insertion order is preserved for List.
type MandateRepo struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Mandate
	ordered []string
}

// NewMandateRepo creates an empty mandate registry.
func NewMandateRepo() *MandateRepo {
	return &MandateRepo{byID: make(map[string]*domain.Mandate)}
}

func (r *MandateRepo) Insert(ctx context.Context, m *domain.Mandate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[m.ID]; exists {
		return apperror.Validation("mandate id already exists")
	}
	cp := cloneMandate(m)
	r.byID[m.ID] = cp
	r.ordered = append(r.ordered, m.ID)
	return nil
}

func (r *MandateRepo) Update(ctx context.Context, m *domain.Mandate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[m.ID]; !exists {
		return apperror.ErrMandateNotFound(m.ID)
	}
	r.byID[m.ID] = cloneMandate(m)
	return nil
}

func (r *MandateRepo) GetByID(ctx context.Context, id string) (*domain.Mandate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneMandate(m), nil
}

func (r *MandateRepo) List(ctx context.Context) ([]domain.Mandate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Mandate, 0, len(r.ordered))
	for _, id := range r.ordered {
		out = append(out, *cloneMandate(r.byID[id]))
	}
	return out, nil
}

func (r *MandateRepo) Restore(ctx context.Context, mandates []domain.Mandate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = make(map[string]*domain.Mandate, len(mandates))
	r.ordered = make([]string, 0, len(mandates))
	for i := range mandates {
		m := mandates[i]
		r.byID[m.ID] = cloneMandate(&m)
		r.ordered = append(r.ordered, m.ID)
	}
	return nil
}

// cloneMandate deep-copies a mandate, including its nested assessment.
func cloneMandate(m *domain.Mandate) *domain.Mandate {
	cp := *m
	if m.Risk != nil {
		risk := *m.Risk
		risk.Rationale = append([]string(nil), m.Risk.Rationale...)
		cp.Risk = &risk
	}
	if m.DerivedFrom != nil {
		from := *m.DerivedFrom
		cp.DerivedFrom = &from
	}
	return &cp
}
