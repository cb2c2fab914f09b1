package memory

import (
	"context"
	"fmt"
	"testing"

	"mandate-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMandate(id string) *domain.Mandate {
	return &domain.Mandate{
		ID:       id,
		Kind:     domain.KindIntent,
		Amount:   500,
		Currency: "AED",
		State:    domain.StateDraft,
	}
}

func TestMandateRepo_InsertAndGet(t *testing.T) {
	repo := NewMandateRepo()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newMandate("M-0000000001")))

	got, err := repo.GetByID(ctx, "M-0000000001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "M-0000000001", got.ID)

	missing, err := repo.GetByID(ctx, "M-0000000099")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMandateRepo_InsertDuplicate(t *testing.T) {
	repo := NewMandateRepo()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newMandate("M-0000000001")))
	err := repo.Insert(ctx, newMandate("M-0000000001"))
	assert.Error(t, err)
}

func TestMandateRepo_UpdateUnknown(t *testing.T) {
	repo := NewMandateRepo()
	err := repo.Update(context.Background(), newMandate("M-0000000001"))
	assert.Error(t, err)
}

func TestMandateRepo_ListPreservesInsertionOrder(t *testing.T) {
	repo := NewMandateRepo()
	ctx := context.Background()

	ids := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("M-%010d", i)
		ids = append(ids, id)
		require.NoError(t, repo.Insert(ctx, newMandate(id)))
	}

	out, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 10)
	for i, m := range out {
		assert.Equal(t, ids[i], m.ID)
	}
}

func TestMandateRepo_ReadsReturnCopies(t *testing.T) {
	repo := NewMandateRepo()
	ctx := context.Background()

	m := newMandate("M-0000000001")
	m.Risk = &domain.RiskAssessment{Tier: domain.RiskLow, Rationale: []string{"amount_within_low_ceiling"}}
	require.NoError(t, repo.Insert(ctx, m))

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	got.State = domain.StateRevoked
	got.Risk.Tier = domain.RiskHigh
	got.Risk.Rationale[0] = "mutated"

	// Mutating the returned copy must not leak into the stored record.
	again, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateDraft, again.State)
	assert.Equal(t, domain.RiskLow, again.Risk.Tier)
	assert.Equal(t, "amount_within_low_ceiling", again.Risk.Rationale[0])
}

func TestMandateRepo_Restore(t *testing.T) {
	repo := NewMandateRepo()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newMandate("M-OLD0000001")))

	replacement := []domain.Mandate{
		*newMandate("M-NEW0000001"),
		*newMandate("M-NEW0000002"),
	}
	require.NoError(t, repo.Restore(ctx, replacement))

	out, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "M-NEW0000001", out[0].ID)
	assert.Equal(t, "M-NEW0000002", out[1].ID)

	old, err := repo.GetByID(ctx, "M-OLD0000001")
	require.NoError(t, err)
	assert.Nil(t, old)
}
