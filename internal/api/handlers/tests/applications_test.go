package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/mocks"
	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func applicationRouter(actor policy.Actor, svc *mocks.MockApplicationService) *gin.Engine {
	h := handlers.NewApplicationHandler(svc, handlers.NewValidator())
	router := newRouter(actor)
	router.POST("/jobs/:id/apply", h.ApplyToJob)
	router.GET("/applications", h.ListApplications)
	router.GET("/applications/:id", h.GetApplicationByID)
	router.PATCH("/applications/:id/status", h.UpdateApplicationStatus)
	return router
}

func submittedDetail(jobID uuid.UUID, applicant policy.Actor) *models.ApplicationDetail {
	now := time.Now().UTC()
	return &models.ApplicationDetail{
		Application: models.Application{
			ID:          uuid.New(),
			JobID:       jobID,
			ApplicantID: applicant.ID,
			Resume:      "cv.pdf",
			Status:      models.ApplicationStatusSubmitted,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		Job:       models.JobSummary{ID: jobID, Title: "Backend Dev", Company: "Acme"},
		Applicant: models.UserSummary{ID: applicant.ID, Email: "user@example.com"},
	}
}

func TestApplyToJob_UserSubmits(t *testing.T) {
	jobID := uuid.New()
	svc := new(mocks.MockApplicationService)
	svc.On("Submit", mock.Anything, userActor, mock.MatchedBy(func(req *dto.SubmitApplicationRequest) bool {
		return req.JobID == jobID && req.Resume == "cv.pdf" && req.CoverLetter != nil && *req.CoverLetter == "Hello"
	})).Return(submittedDetail(jobID, userActor), nil).Once()

	w := doRequest(applicationRouter(userActor, svc), http.MethodPost, "/jobs/"+jobID.String()+"/apply",
		map[string]interface{}{"resume": "cv.pdf", "cover_letter": "Hello"})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.ApplicationResponse](t, w)
	assert.Equal(t, models.ApplicationStatusSubmitted, resp.Status)
	assert.Equal(t, "Backend Dev", resp.Job.Title)
	assert.Equal(t, "Acme", resp.Job.Company)
	assert.Equal(t, userActor.ID, resp.Applicant.ID)
	assert.Equal(t, "user@example.com", resp.Applicant.Email)
	svc.AssertExpectations(t)
}

func TestApplyToJob_AdminAndAnonymousRejected(t *testing.T) {
	jobID := uuid.New()

	svc := new(mocks.MockApplicationService)
	w := doRequest(applicationRouter(adminActor, svc), http.MethodPost, "/jobs/"+jobID.String()+"/apply",
		map[string]interface{}{"resume": "cv.pdf"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(applicationRouter(anonymous, svc), http.MethodPost, "/jobs/"+jobID.String()+"/apply",
		map[string]interface{}{"resume": "cv.pdf"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyToJob_ErrorMapping(t *testing.T) {
	jobID := uuid.New()
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"duplicate", fmt.Errorf("%w: you have already applied to this job", services.ErrConflict), http.StatusConflict},
		{"missing job", fmt.Errorf("%w: job not found", services.ErrNotFound), http.StatusNotFound},
		{"empty resume", fmt.Errorf("%w: resume is required", services.ErrInvalidArgument), http.StatusBadRequest},
		{"store failure", errors.New("internal error during submitting application: boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockApplicationService)
			svc.On("Submit", mock.Anything, userActor, mock.Anything).Return(nil, tt.err).Once()

			w := doRequest(applicationRouter(userActor, svc), http.MethodPost, "/jobs/"+jobID.String()+"/apply",
				map[string]interface{}{"resume": ""})

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "boom")
			}
		})
	}
}

func TestListApplications_PassesFilters(t *testing.T) {
	jobID := uuid.New()
	svc := new(mocks.MockApplicationService)
	svc.On("List", mock.Anything, userActor, mock.MatchedBy(func(req *dto.ListApplicationsRequest) bool {
		return req.JobID != nil && *req.JobID == jobID &&
			req.Status != nil && *req.Status == models.ApplicationStatusReviewed &&
			req.Limit == 20
	})).Return([]models.ApplicationDetail{*submittedDetail(jobID, userActor)}, nil).Once()

	w := doRequest(applicationRouter(userActor, svc), http.MethodGet,
		"/applications?job_id="+jobID.String()+"&status=reviewed", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.ApplicationResponse](t, w), 1)
	svc.AssertExpectations(t)
}

func TestListApplications_RejectsUnknownStatus(t *testing.T) {
	svc := new(mocks.MockApplicationService)
	w := doRequest(applicationRouter(userActor, svc), http.MethodGet, "/applications?status=hired", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetApplication_NotOwner(t *testing.T) {
	svc := new(mocks.MockApplicationService)
	svc.On("Get", mock.Anything, userActor, mock.Anything).Return(nil, services.ErrUnauthorized).Once()

	w := doRequest(applicationRouter(userActor, svc), http.MethodGet, "/applications/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateApplicationStatus(t *testing.T) {
	appID := uuid.New()

	t.Run("user is forbidden even with a bad status", func(t *testing.T) {
		svc := new(mocks.MockApplicationService)
		w := doRequest(applicationRouter(userActor, svc), http.MethodPatch,
			"/applications/"+appID.String()+"/status", map[string]interface{}{"status": "hired"})
		assert.Equal(t, http.StatusForbidden, w.Code)
		svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("admin with bad status", func(t *testing.T) {
		svc := new(mocks.MockApplicationService)
		svc.On("UpdateStatus", mock.Anything, adminActor, mock.MatchedBy(func(req *dto.UpdateApplicationStatusRequest) bool {
			return req.ID == appID && req.Status == "hired"
		})).Return(nil, fmt.Errorf("%w: invalid status", services.ErrInvalidArgument)).Once()

		w := doRequest(applicationRouter(adminActor, svc), http.MethodPatch,
			"/applications/"+appID.String()+"/status", map[string]interface{}{"status": "hired"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("admin accepts", func(t *testing.T) {
		detail := submittedDetail(uuid.New(), userActor)
		detail.ID = appID
		detail.Status = models.ApplicationStatusAccepted
		svc := new(mocks.MockApplicationService)
		svc.On("UpdateStatus", mock.Anything, adminActor, &dto.UpdateApplicationStatusRequest{
			ID:     appID,
			Status: models.ApplicationStatusAccepted,
		}).Return(detail, nil).Once()

		w := doRequest(applicationRouter(adminActor, svc), http.MethodPatch,
			"/applications/"+appID.String()+"/status", map[string]interface{}{"status": "accepted"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, models.ApplicationStatusAccepted, decode[dto.ApplicationResponse](t, w).Status)
	})
}
