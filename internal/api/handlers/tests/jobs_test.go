package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/mocks"
	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func jobRouter(actor policy.Actor, svc *mocks.MockJobService) *gin.Engine {
	h := handlers.NewJobHandler(svc, handlers.NewValidator())
	router := newRouter(actor)
	router.GET("/jobs", h.ListJobs)
	router.POST("/jobs", h.CreateJob)
	router.GET("/jobs/:id", h.GetJobByID)
	router.PUT("/jobs/:id", h.UpdateJob)
	router.DELETE("/jobs/:id", h.DeleteJob)
	return router
}

func validJobBody() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Backend Dev",
		"description": "Build APIs",
		"company":     "Acme",
		"location":    "Remote",
		"job_type":    "full-time",
		"salary_min":  50000,
		"salary_max":  90000,
	}
}

func TestCreateJob_AdminCreates(t *testing.T) {
	svc := new(mocks.MockJobService)
	created := &models.Job{
		ID:       uuid.New(),
		Title:    "Backend Dev",
		Company:  "Acme",
		JobType:  models.JobTypeFullTime,
		PostedBy: adminActor.ID,
		Category: &models.JobCategory{ID: uuid.New(), Name: "Tech", Slug: "tech"},
	}
	svc.On("CreateJob", mock.Anything, adminActor, mock.MatchedBy(func(req *dto.CreateJobRequest) bool {
		return req.Title == "Backend Dev" && req.JobType == models.JobTypeFullTime &&
			req.SalaryMin != nil && req.SalaryMin.Equal(decimal.NewFromInt(50000))
	})).Return(created, nil).Once()

	w := doRequest(jobRouter(adminActor, svc), http.MethodPost, "/jobs", validJobBody())

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.JobResponse](t, w)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, adminActor.ID, resp.PostedBy)
	if assert.NotNil(t, resp.Category) {
		assert.Equal(t, "tech", resp.Category.Slug)
	}
	svc.AssertExpectations(t)
}

func TestCreateJob_PermissionCheckedBeforeValidation(t *testing.T) {
	invalid := map[string]interface{}{"title": ""}

	t.Run("user gets 403", func(t *testing.T) {
		svc := new(mocks.MockJobService)
		w := doRequest(jobRouter(userActor, svc), http.MethodPost, "/jobs", invalid)
		assert.Equal(t, http.StatusForbidden, w.Code)
		svc.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("anonymous gets 401", func(t *testing.T) {
		svc := new(mocks.MockJobService)
		w := doRequest(jobRouter(anonymous, svc), http.MethodPost, "/jobs", invalid)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		svc.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("admin gets 400 with details", func(t *testing.T) {
		svc := new(mocks.MockJobService)
		w := doRequest(jobRouter(adminActor, svc), http.MethodPost, "/jobs", invalid)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decode[map[string]interface{}](t, w)
		assert.Equal(t, "Validation failed", body["error"])
		details, ok := body["details"].(map[string]interface{})
		if assert.True(t, ok) {
			assert.Contains(t, details, "title")
			assert.Contains(t, details, "job_type")
		}
	})
}

func TestCreateJob_RejectsUnknownJobType(t *testing.T) {
	svc := new(mocks.MockJobService)
	body := validJobBody()
	body["job_type"] = "gig"

	w := doRequest(jobRouter(adminActor, svc), http.MethodPost, "/jobs", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "job_type")
}

func TestCreateJob_RejectsInvalidSalary(t *testing.T) {
	for _, salary := range []interface{}{-1, "12.345", "10000000000"} {
		svc := new(mocks.MockJobService)
		body := validJobBody()
		body["salary_min"] = salary

		w := doRequest(jobRouter(adminActor, svc), http.MethodPost, "/jobs", body)

		assert.Equal(t, http.StatusBadRequest, w.Code, "salary %v", salary)
		assert.Contains(t, w.Body.String(), "salary_min")
		svc.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestGetJobByID_SalaryKeepsExactDigits(t *testing.T) {
	jobID := uuid.New()
	salary := decimal.RequireFromString("85000.50")
	svc := new(mocks.MockJobService)
	svc.On("GetJobByID", mock.Anything, anonymous, &dto.GetJobByIDRequest{ID: jobID}).
		Return(&models.Job{ID: jobID, Title: "Backend Dev", SalaryMin: &salary}, nil).Once()

	w := doRequest(jobRouter(anonymous, svc), http.MethodGet, "/jobs/"+jobID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"salary_min":"85000.5"`)
}

func TestCreateJob_ServiceInvalidArgument(t *testing.T) {
	svc := new(mocks.MockJobService)
	svc.On("CreateJob", mock.Anything, adminActor, mock.Anything).
		Return(nil, fmt.Errorf("%w: salary_min cannot exceed salary_max", services.ErrInvalidArgument)).Once()

	w := doRequest(jobRouter(adminActor, svc), http.MethodPost, "/jobs", validJobBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "salary_min cannot exceed salary_max")
}

func TestGetJobByID(t *testing.T) {
	jobID := uuid.New()

	t.Run("found for anonymous", func(t *testing.T) {
		svc := new(mocks.MockJobService)
		svc.On("GetJobByID", mock.Anything, anonymous, &dto.GetJobByIDRequest{ID: jobID}).
			Return(&models.Job{ID: jobID, Title: "Backend Dev"}, nil).Once()

		w := doRequest(jobRouter(anonymous, svc), http.MethodGet, "/jobs/"+jobID.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Backend Dev", decode[dto.JobResponse](t, w).Title)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(mocks.MockJobService)
		svc.On("GetJobByID", mock.Anything, anonymous, mock.Anything).
			Return(nil, fmt.Errorf("%w: job not found", services.ErrNotFound)).Once()

		w := doRequest(jobRouter(anonymous, svc), http.MethodGet, "/jobs/"+jobID.String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := new(mocks.MockJobService)
		w := doRequest(jobRouter(anonymous, svc), http.MethodGet, "/jobs/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListJobs_ParsesFilters(t *testing.T) {
	categoryID := uuid.New()
	svc := new(mocks.MockJobService)
	svc.On("ListJobs", mock.Anything, anonymous, mock.MatchedBy(func(req *dto.ListJobsRequest) bool {
		return req.Query == "backend" &&
			req.JobType != nil && *req.JobType == models.JobTypeRemote &&
			req.CategoryID != nil && *req.CategoryID == categoryID &&
			req.Limit == 5 && req.Offset == 0
	})).Return([]models.Job{}, nil).Once()

	path := fmt.Sprintf("/jobs?q=backend&job_type=remote&category=%s&limit=5", categoryID)
	w := doRequest(jobRouter(anonymous, svc), http.MethodGet, path, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestListJobs_RejectsBadCategory(t *testing.T) {
	svc := new(mocks.MockJobService)
	w := doRequest(jobRouter(anonymous, svc), http.MethodGet, "/jobs?category=tech", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateJob_PassesPathID(t *testing.T) {
	jobID := uuid.New()
	svc := new(mocks.MockJobService)
	svc.On("UpdateJob", mock.Anything, adminActor, mock.MatchedBy(func(req *dto.UpdateJobRequest) bool {
		return req.ID == jobID && req.Title != nil && *req.Title == "Senior Backend Dev" && req.Company == nil
	})).Return(&models.Job{ID: jobID, Title: "Senior Backend Dev"}, nil).Once()

	w := doRequest(jobRouter(adminActor, svc), http.MethodPut, "/jobs/"+jobID.String(),
		map[string]interface{}{"title": "Senior Backend Dev"})

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestUpdateJob_ClearsNullableFields(t *testing.T) {
	jobID := uuid.New()
	svc := new(mocks.MockJobService)
	svc.On("UpdateJob", mock.Anything, adminActor, mock.MatchedBy(func(req *dto.UpdateJobRequest) bool {
		return req.ID == jobID && req.Clears(dto.JobFieldCategory) && req.Clears(dto.JobFieldSalaryMax)
	})).Return(&models.Job{ID: jobID}, nil).Once()

	w := doRequest(jobRouter(adminActor, svc), http.MethodPut, "/jobs/"+jobID.String(),
		map[string]interface{}{"clear": []string{"category_id", "salary_max"}})

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)

	w = doRequest(jobRouter(adminActor, svc), http.MethodPut, "/jobs/"+jobID.String(),
		map[string]interface{}{"clear": []string{"title"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "clear[0]")
}

func TestDeleteJob(t *testing.T) {
	jobID := uuid.New()
	svc := new(mocks.MockJobService)
	svc.On("DeleteJob", mock.Anything, adminActor, &dto.DeleteJobRequest{ID: jobID}).Return(nil).Once()

	w := doRequest(jobRouter(adminActor, svc), http.MethodDelete, "/jobs/"+jobID.String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	svc.AssertExpectations(t)

	w = doRequest(jobRouter(userActor, new(mocks.MockJobService)), http.MethodDelete, "/jobs/"+jobID.String(), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
