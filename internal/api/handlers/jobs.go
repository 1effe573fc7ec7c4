package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// CreateJob godoc
// @Summary      Create a new job posting
// @Description  Admin only. The poster is taken from the authenticated caller.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Job details"
// @Success      201 {object}  dto.JobResponse "Job created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionCreate, policy.ResourceJob, "to create job")
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	createdJob, err := h.service.CreateJob(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "to create job")
		return
	}

	c.JSON(http.StatusCreated, MapJobModelToJobResponse(createdJob))
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Description  Retrieves details for a specific job by its ID.
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobResponse "Successfully retrieved job"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id", "job")
	if !ok {
		return
	}

	job, err := h.service.GetJobByID(c.Request.Context(), middleware.ActorFromContext(c), &dto.GetJobByIDRequest{ID: jobID})
	if err != nil {
		respondError(c, err, "to retrieve job")
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Searches title and company, with optional job type and category filters.
// @Tags         jobs
// @Produce      json
// @Param        q        query string false "Search text"
// @Param        job_type query string false "Job type"
// @Param        category query string false "Category ID" Format(uuid)
// @Param        limit    query int    false "Page size" default(10)
// @Param        offset   query int    false "Offset" default(0)
// @Success      200 {array}   dto.JobResponse
// @Failure      400 {object}  map[string]string "Invalid query parameters"
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}
	req.CategoryID = optionalUUID(req.Category)

	jobs, err := h.service.ListJobs(c.Request.Context(), middleware.ActorFromContext(c), &req)
	if err != nil {
		respondError(c, err, "to retrieve jobs")
		return
	}

	c.JSON(http.StatusOK, mapSlice(jobs, MapJobModelToJobResponse))
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Description  Partial update. Admin only.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id  path string true "Job ID" Format(uuid)
// @Param        job body dto.UpdateJobRequest true "Fields to update"
// @Success      200 {object}  dto.JobResponse
// @Failure      400 {object}  map[string]string "Bad Request"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionUpdate, policy.ResourceJob, "to update job")
	if !ok {
		return
	}
	jobID, ok := parseIDParam(c, "id", "job")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ID = jobID

	job, err := h.service.UpdateJob(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "to update job")
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// DeleteJob godoc
// @Summary      Delete a job posting
// @Description  Applications to the job are deleted with it.
// @Tags         jobs
// @Param        id path string true "Job ID" Format(uuid)
// @Success      204 "No Content"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionDelete, policy.ResourceJob, "to delete job")
	if !ok {
		return
	}
	jobID, ok := parseIDParam(c, "id", "job")
	if !ok {
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), actor, &dto.DeleteJobRequest{ID: jobID}); err != nil {
		respondError(c, err, "to delete job")
		return
	}

	c.Status(http.StatusNoContent)
}
