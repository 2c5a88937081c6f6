package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/workflow"
)

// TransitionRequest carries the requested target status
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handlers) transition(c *gin.Context, kind workflow.EntityKind) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req TransitionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	outcome, err := h.services.Transitions.Transition(
		c.Request.Context(), kind, id, workflow.StatusKey(req.Status))
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, outcome)
}

// TransitionProject handles PATCH /api/projects/:id/status
func (h *Handlers) TransitionProject(c *gin.Context) {
	h.transition(c, workflow.KindProject)
}

// TransitionJob handles PATCH /api/jobs/:id/status
func (h *Handlers) TransitionJob(c *gin.Context) {
	h.transition(c, workflow.KindJob)
}

// TransitionInterview handles PATCH /api/interviews/:id/status
func (h *Handlers) TransitionInterview(c *gin.Context) {
	h.transition(c, workflow.KindInterview)
}

// TransitionAcceptance handles PATCH /api/interviews/:id/acceptance.
// The acceptance workflow rides on the interview record.
func (h *Handlers) TransitionAcceptance(c *gin.Context) {
	h.transition(c, workflow.KindAcceptance)
}

// TransitionAssignment handles PATCH /api/assignments/:id/status
func (h *Handlers) TransitionAssignment(c *gin.Context) {
	h.transition(c, workflow.KindAssignment)
}

// TransitionTask handles PATCH /api/annotation-tasks/:id/status
func (h *Handlers) TransitionTask(c *gin.Context) {
	h.transition(c, workflow.KindAnnotationTask)
}

// ExportInterviews handles GET /api/export/interviews, streaming an xlsx
// roster of interviews matching the usual list filters.
func (h *Handlers) ExportInterviews(c *gin.Context) {
	var filter port.ListFilter
	if f, ok := h.bindList(c); ok {
		filter = f
	} else {
		return
	}
	// Exports are bounded by the filter, not the page size
	if filter.Limit <= 20 {
		filter.Limit = 1000
	}

	filename := fmt.Sprintf("interviews-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := h.services.Roster.Export(c.Request.Context(), filter, c.Writer); err != nil {
		h.logger.Error("Roster export failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
}
