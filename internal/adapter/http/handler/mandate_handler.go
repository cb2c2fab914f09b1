package handler

import (
	"time"

	"mandate-gateway/internal/adapter/http/dto"
	"mandate-gateway/internal/core/domain"
	"mandate-gateway/internal/core/ports"
	"mandate-gateway/pkg/apperror"
	"mandate-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// MandateHandler handles mandate lifecycle endpoints.
type MandateHandler struct {
	mandateSvc  ports.MandateService
	workflowSvc ports.WorkflowService
	ledger      ports.AuditLedger
}

// NewMandateHandler creates a new MandateHandler.
func NewMandateHandler(mandateSvc ports.MandateService, workflowSvc ports.WorkflowService, ledger ports.AuditLedger) *MandateHandler {
	return &MandateHandler{mandateSvc: mandateSvc, workflowSvc: workflowSvc, ledger: ledger}
}

// Create handles POST /api/v1/mandates.
func (h *MandateHandler) Create(c *gin.Context) {
	var req dto.CreateMandateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	m, err := h.mandateSvc.Create(c.Request.Context(), ports.CreateMandateRequest{
		Kind:        domain.MandateKind(req.Kind),
		Amount:      req.Amount,
		Currency:    req.Currency,
		Payer:       req.Payer,
		Payee:       req.Payee,
		AgentID:     req.AgentID,
		Purpose:     req.Purpose,
		DerivedFrom: req.DerivedFrom,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toMandateResponse(m))
}

// RegisterConsent handles POST /api/v1/mandates/:id/consent.
func (h *MandateHandler) RegisterConsent(c *gin.Context) {
	m, err := h.mandateSvc.RegisterConsent(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toMandateResponse(m))
}

// Convert handles POST /api/v1/mandates/:id/convert.
func (h *MandateHandler) Convert(c *gin.Context) {
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	derived, err := h.mandateSvc.Convert(c.Request.Context(), c.Param("id"), domain.MandateKind(req.TargetKind))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toMandateResponse(derived))
}

// AssessRisk handles POST /api/v1/mandates/:id/assess.
func (h *MandateHandler) AssessRisk(c *gin.Context) {
	var req dto.AssessRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var history *domain.PayerHistory
	if req.PayerHistory != nil {
		history = &domain.PayerHistory{
			PriorSettlements: req.PayerHistory.PriorSettlements,
			PriorRevocations: req.PayerHistory.PriorRevocations,
		}
	}

	m, err := h.workflowSvc.AssessRisk(c.Request.Context(), c.Param("id"), history)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toMandateResponse(m))
}

// Settle handles POST /api/v1/mandates/:id/settle.
func (h *MandateHandler) Settle(c *gin.Context) {
	m, err := h.workflowSvc.Settle(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toMandateResponse(m))
}

// Revoke handles POST /api/v1/mandates/:id/revoke.
func (h *MandateHandler) Revoke(c *gin.Context) {
	m, err := h.mandateSvc.Revoke(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toMandateResponse(m))
}

// Get handles GET /api/v1/mandates/:id.
func (h *MandateHandler) Get(c *gin.Context) {
	m, err := h.mandateSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toMandateResponse(m))
}

// List handles GET /api/v1/mandates.
func (h *MandateHandler) List(c *gin.Context) {
	mandates, err := h.mandateSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.MandateResponse, 0, len(mandates))
	for i := range mandates {
		items = append(items, toMandateResponse(&mandates[i]))
	}
	response.OK(c, dto.MandateListResponse{Items: items, Total: len(items)})
}

// History handles GET /api/v1/mandates/:id/history.
func (h *MandateHandler) History(c *gin.Context) {
	events, err := h.mandateSvc.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.AuditEventResponse, 0, len(events))
	for i := range events {
		items = append(items, toAuditEventResponse(&events[i], h.ledger.Verify(&events[i])))
	}
	response.OK(c, dto.AuditListResponse{Items: items, Total: len(items)})
}

// toMandateResponse converts domain.Mandate to DTO.
func toMandateResponse(m *domain.Mandate) dto.MandateResponse {
	resp := dto.MandateResponse{
		ID:          m.ID,
		Kind:        string(m.Kind),
		Amount:      m.Amount,
		Currency:    m.Currency,
		Payer:       m.Payer,
		Payee:       m.Payee,
		AgentID:     m.AgentID,
		State:       string(m.State),
		Purpose:     m.Purpose,
		DerivedFrom: m.DerivedFrom,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt.Format(time.RFC3339),
	}
	if m.Risk != nil {
		resp.Risk = &dto.RiskResponse{
			Tier:      string(m.Risk.Tier),
			Score:     m.Risk.Score,
			Rationale: m.Risk.Rationale,
		}
	}
	return resp
}

// toAuditEventResponse converts domain.AuditEvent to DTO.
func toAuditEventResponse(e *domain.AuditEvent, verified bool) dto.AuditEventResponse {
	return dto.AuditEventResponse{
		Seq:       e.Seq,
		Kind:      string(e.Kind),
		MandateID: e.MandateID,
		AgentID:   e.AgentID,
		Details:   e.Details,
		Signature: e.Signature,
		Timestamp: e.Timestamp.Format(time.RFC3339),
		Verified:  verified,
	}
}
