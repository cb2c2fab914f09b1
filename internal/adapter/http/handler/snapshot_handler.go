package handler

import (
	"mandate-gateway/internal/core/domain"
	"mandate-gateway/internal/core/ports"
	"mandate-gateway/pkg/apperror"
	"mandate-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// SnapshotHandler handles state export/import endpoints.
type SnapshotHandler struct {
	exportSvc ports.ExportService
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(exportSvc ports.ExportService) *SnapshotHandler {
	return &SnapshotHandler{exportSvc: exportSvc}
}

// Export handles GET /api/v1/snapshot.
func (h *SnapshotHandler) Export(c *gin.Context) {
	snap, err := h.exportSvc.Export(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snap)
}

// Import handles POST /api/v1/snapshot. The snapshot replaces all
// current state; every event token is verified before anything is
// written.
func (h *SnapshotHandler) Import(c *gin.Context) {
	var snap domain.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.exportSvc.Import(c.Request.Context(), &snap); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"mandates": len(snap.Mandates), "events": len(snap.Events)})
}
