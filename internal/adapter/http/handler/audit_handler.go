package handler

import (
	"mandate-gateway/internal/adapter/http/dto"
	"mandate-gateway/internal/core/ports"
	"mandate-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuditHandler handles audit trail endpoints.
type AuditHandler struct {
	ledger ports.AuditLedger
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(ledger ports.AuditLedger) *AuditHandler {
	return &AuditHandler{ledger: ledger}
}

// List handles GET /api/v1/audit. An optional mandate_id query
// parameter filters to one mandate's events.
func (h *AuditHandler) List(c *gin.Context) {
	events, err := h.ledger.History(c.Request.Context(), c.Query("mandate_id"))
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
