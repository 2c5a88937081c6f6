package http

import (
	"github.com/gin-gonic/gin"

	"github.com/talentops/hiring-ops/internal/domain/workflow"
)

// WorkflowResponse describes one entity kind's state graph for clients
type WorkflowResponse struct {
	Kind     string                `json:"kind"`
	Statuses []workflow.StatusNode `json:"statuses"`
}

// ListWorkflows handles GET /api/workflows
func (h *Handlers) ListWorkflows(c *gin.Context) {
	kinds := workflow.Default().Kinds()

	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, kind.String())
	}
	h.writeOK(c, names)
}

// GetWorkflow handles GET /api/workflows/:kind
func (h *Handlers) GetWorkflow(c *gin.Context) {
	kind := workflow.EntityKind(c.Param("kind"))

	wf, err := workflow.Default().Workflow(kind)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.writeOK(c, WorkflowResponse{
		Kind:     wf.Kind().String(),
		Statuses: wf.Nodes(),
	})
}

// NextStatuses handles GET /api/workflows/:kind/statuses/:status/next.
// The current status leads the list so clients can preselect it.
func (h *Handlers) NextStatuses(c *gin.Context) {
	kind := workflow.EntityKind(c.Param("kind"))
	status := workflow.StatusKey(c.Param("status"))

	if _, err := workflow.Default().Workflow(kind); err != nil {
		h.writeError(c, err)
		return
	}

	h.writeOK(c, workflow.NextStatuses(kind, status))
}
