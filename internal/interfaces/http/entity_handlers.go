package http

import (
	"github.com/gin-gonic/gin"

	"github.com/talentops/hiring-ops/internal/application/service"
)

// CreateCandidate handles POST /api/candidates
func (h *Handlers) CreateCandidate(c *gin.Context) {
	var req service.CreateCandidateRequest
	if !h.bindJSON(c, &req) {
		return
	}
	candidate, err := h.services.Candidates.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeCreated(c, candidate)
}

// ListCandidates handles GET /api/candidates
func (h *Handlers) ListCandidates(c *gin.Context) {
	filter, ok := h.bindList(c)
	if !ok {
		return
	}
	candidates, err := h.services.Candidates.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, candidates)
}

// GetCandidate handles GET /api/candidates/:id
func (h *Handlers) GetCandidate(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	candidate, err := h.services.Candidates.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, candidate)
}

// UpdateCandidate handles PUT /api/candidates/:id
func (h *Handlers) UpdateCandidate(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req service.UpdateCandidateRequest
	if !h.bindJSON(c, &req) {
		return
	}
	candidate, err := h.services.Candidates.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, candidate)
}

// CreateProject handles POST /api/projects
func (h *Handlers) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if !h.bindJSON(c, &req) {
		return
	}
	project, err := h.services.Projects.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeCreated(c, project)
}

// ListProjects handles GET /api/projects
func (h *Handlers) ListProjects(c *gin.Context) {
	filter, ok := h.bindList(c)
	if !ok {
		return
	}
	projects, err := h.services.Projects.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, projects)
}

// GetProject handles GET /api/projects/:id
func (h *Handlers) GetProject(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	project, err := h.services.Projects.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, project)
}

// UpdateProject handles PUT /api/projects/:id
func (h *Handlers) UpdateProject(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req service.UpdateProjectRequest
	if !h.bindJSON(c, &req) {
		return
	}
	project, err := h.services.Projects.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, project)
}

// CreateJob handles POST /api/jobs
func (h *Handlers) CreateJob(c *gin.Context) {
	var req service.CreateJobRequest
	if !h.bindJSON(c, &req) {
		return
	}
	job, err := h.services.Jobs.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeCreated(c, job)
}

// ListJobs handles GET /api/jobs
func (h *Handlers) ListJobs(c *gin.Context) {
	filter, ok := h.bindList(c)
	if !ok {
		return
	}
	jobs, err := h.services.Jobs.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, jobs)
}

// GetJob handles GET /api/jobs/:id
func (h *Handlers) GetJob(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	job, err := h.services.Jobs.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, job)
}

// UpdateJob handles PUT /api/jobs/:id
func (h *Handlers) UpdateJob(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req service.UpdateJobRequest
	if !h.bindJSON(c, &req) {
		return
	}
	job, err := h.services.Jobs.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, job)
}

// CreateInterview handles POST /api/interviews
func (h *Handlers) CreateInterview(c *gin.Context) {
	var req service.CreateInterviewRequest
	if !h.bindJSON(c, &req) {
		return
	}
	interview, err := h.services.Interviews.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeCreated(c, interview)
}

// ListInterviews handles GET /api/interviews
func (h *Handlers) ListInterviews(c *gin.Context) {
	filter, ok := h.bindList(c)
	if !ok {
		return
	}
	interviews, err := h.services.Interviews.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, interviews)
}

// GetInterview handles GET /api/interviews/:id
func (h *Handlers) GetInterview(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	interview, err := h.services.Interviews.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, interview)
}

// UpdateInterview handles PUT /api/interviews/:id
func (h *Handlers) UpdateInterview(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req service.UpdateInterviewRequest
	if !h.bindJSON(c, &req) {
		return
	}
	interview, err := h.services.Interviews.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, interview)
}

// CreateAssignment handles POST /api/assignments
func (h *Handlers) CreateAssignment(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	assignment, err := h.services.Assignments.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeCreated(c, assignment)
}

// ListAssignments handles GET /api/assignments
func (h *Handlers) ListAssignments(c *gin.Context) {
	filter, ok := h.bindList(c)
	if !ok {
		return
	}
	assignments, err := h.services.Assignments.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, assignments)
}

// GetAssignment handles GET /api/assignments/:id
func (h *Handlers) GetAssignment(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	assignment, err := h.services.Assignments.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, assignment)
}

// CreateTask handles POST /api/annotation-tasks
func (h *Handlers) CreateTask(c *gin.Context) {
	var req service.CreateAnnotationTaskRequest
	if !h.bindJSON(c, &req) {
		return
	}
	task, err := h.services.Tasks.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeCreated(c, task)
}

// ListTasks handles GET /api/annotation-tasks
func (h *Handlers) ListTasks(c *gin.Context) {
	filter, ok := h.bindList(c)
	if !ok {
		return
	}
	tasks, err := h.services.Tasks.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, tasks)
}

// GetTask handles GET /api/annotation-tasks/:id
func (h *Handlers) GetTask(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	task, err := h.services.Tasks.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, task)
}

// UpdateTask handles PUT /api/annotation-tasks/:id
func (h *Handlers) UpdateTask(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req service.UpdateAnnotationTaskRequest
	if !h.bindJSON(c, &req) {
		return
	}
	task, err := h.services.Tasks.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeOK(c, task)
}
