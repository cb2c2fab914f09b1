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

// WorkflowHandler handles the end-to-end consent workflow endpoint.
type WorkflowHandler struct {
	workflowSvc ports.WorkflowService
}

// NewWorkflowHandler creates a new WorkflowHandler.
func NewWorkflowHandler(workflowSvc ports.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{workflowSvc: workflowSvc}
}

// Run handles POST /api/v1/workflow: create Intent -> register
// consent -> convert to Payment -> risk check -> settle, in one call.
func (h *WorkflowHandler) Run(c *gin.Context) {
	var req dto.WorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
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

	result, err := h.workflowSvc.Run(c.Request.Context(), ports.WorkflowRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		Payer:    req.Payer,
		Payee:    req.Payee,
		AgentID:  req.AgentID,
		Purpose:  req.Purpose,
		History:  history,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.WorkflowResponse{
		Intent:  toMandateResponse(result.Intent),
		Payment: toMandateResponse(result.Payment),
	}
	if result.Settlement != nil {
		resp.Settlement = &dto.SettlementResponse{
			TransactionID: result.Settlement.TransactionID,
			Rail:          string(result.Settlement.Rail),
			Status:        string(result.Settlement.Status),
			SettledAt:     result.Settlement.SettledAt.Format(time.RFC3339),
		}
	}
	response.Created(c, resp)
}
