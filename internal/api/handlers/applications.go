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

type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Regular users only. One application per job and applicant.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id          path string                        true "Job ID" Format(uuid)
// @Param        application body dto.SubmitApplicationRequest  true "Resume reference and optional cover letter"
// @Success      201 {object} dto.ApplicationResponse
// @Failure      400 {object} map[string]string "Missing resume"
// @Failure      401 {object} map[string]string "Unauthorized"
// @Failure      403 {object} map[string]string "Admins cannot apply"
// @Failure      404 {object} map[string]string "Job not found"
// @Failure      409 {object} map[string]string "Already applied"
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionCreate, policy.ResourceApplication, "to submit application")
	if !ok {
		return
	}
	jobID, ok := parseIDParam(c, "id", "job")
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.JobID = jobID

	application, err := h.service.Submit(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "to submit application")
		return
	}

	c.JSON(http.StatusCreated, MapApplicationModelToResponse(application))
}

// ListApplications godoc
// @Summary      List applications
// @Description  Admins see every application, other users only their own.
// @Tags         applications
// @Produce      json
// @Param        job_id query string false "Job ID" Format(uuid)
// @Param        status query string false "Status"
// @Param        limit  query int    false "Page size" default(20)
// @Param        offset query int    false "Offset" default(0)
// @Success      200 {array}  dto.ApplicationResponse
// @Failure      401 {object} map[string]string "Unauthorized"
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	var req dto.ListApplicationsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}
	req.JobID = optionalUUID(req.Job)

	applications, err := h.service.List(c.Request.Context(), middleware.ActorFromContext(c), &req)
	if err != nil {
		respondError(c, err, "to retrieve applications")
		return
	}

	c.JSON(http.StatusOK, mapSlice(applications, MapApplicationModelToResponse))
}

// GetApplicationByID godoc
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Param        id path string true "Application ID" Format(uuid)
// @Success      200 {object} dto.ApplicationResponse
// @Failure      403 {object} map[string]string "Not the applicant"
// @Failure      404 {object} map[string]string "Application not found"
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "application")
	if !ok {
		return
	}

	application, err := h.service.Get(c.Request.Context(), middleware.ActorFromContext(c), &dto.GetApplicationByIDRequest{ID: id})
	if err != nil {
		respondError(c, err, "to retrieve application")
		return
	}

	c.JSON(http.StatusOK, MapApplicationModelToResponse(application))
}

// UpdateApplicationStatus godoc
// @Summary      Change an application's status
// @Description  Admin only. Any status may follow any other.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id     path string                                true "Application ID" Format(uuid)
// @Param        status body dto.UpdateApplicationStatusRequest    true "New status"
// @Success      200 {object} dto.ApplicationResponse
// @Failure      400 {object} map[string]string "Invalid status"
// @Failure      403 {object} map[string]string "Forbidden"
// @Failure      404 {object} map[string]string "Application not found"
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionUpdateStatus, policy.ResourceApplication, "to update application status")
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "application")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id

	// Status membership is checked by the service, after authorization.
	application, err := h.service.UpdateStatus(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "to update application status")
		return
	}

	c.JSON(http.StatusOK, MapApplicationModelToResponse(application))
}
