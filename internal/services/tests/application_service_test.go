package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"jobboard-api/internal/mocks"
	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupApplicationServiceTest(t *testing.T) (context.Context, services.ApplicationService, *mocks.MockStore) {
	t.Helper()
	store := mocks.NewMockStore()
	t.Cleanup(func() { store.AssertExpectations(t) })
	return context.Background(), services.NewApplicationService(store), store
}

func userActor() policy.Actor  { return policy.NewActor(uuid.New(), models.RoleUser) }
func adminActor() policy.Actor { return policy.NewActor(uuid.New(), models.RoleAdmin) }

func applicationDetail(id, jobID, applicantID uuid.UUID, status models.ApplicationStatus) *models.ApplicationDetail {
	now := time.Now()
	return &models.ApplicationDetail{
		Application: models.Application{
			ID:          id,
			JobID:       jobID,
			ApplicantID: applicantID,
			Resume:      "resumes/cv.pdf",
			Status:      status,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		Job:       models.JobSummary{ID: jobID, Title: "Backend Dev", Company: "Acme"},
		Applicant: models.UserSummary{ID: applicantID, Email: "applicant@example.com"},
	}
}

func TestApplicationService_Submit_Success(t *testing.T) {
	ctx, svc, store := setupApplicationServiceTest(t)
	actor := userActor()
	jobID := uuid.New()
	appID := uuid.New()

	store.JobRepo.On("GetByID", ctx, &dto.GetJobByIDRequest{ID: jobID}).
		Return(&models.Job{ID: jobID, Title: "Backend Dev"}, nil).Once()
	store.ApplicationRepo.On("ExistsForApplicant", ctx, jobID, actor.ID).Return(false, nil).Once()
	store.ApplicationRepo.On("Create", ctx, &dto.CreateApplicationRequest{
		JobID:       jobID,
		ApplicantID: actor.ID,
		Resume:      "resumes/cv.pdf",
	}).Return(&models.Application{ID: appID, JobID: jobID, ApplicantID: actor.ID, Status: models.ApplicationStatusSubmitted}, nil).Once()
	store.ApplicationRepo.On("GetByID", ctx, &dto.GetApplicationByIDRequest{ID: appID}).
		Return(applicationDetail(appID, jobID, actor.ID, models.ApplicationStatusSubmitted), nil).Once()

	app, err := svc.Submit(ctx, actor, &dto.SubmitApplicationRequest{JobID: jobID, Resume: "  resumes/cv.pdf "})

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusSubmitted, app.Status)
	assert.Equal(t, actor.ID, app.ApplicantID)
	assert.Equal(t, "Backend Dev", app.Job.Title)
	assert.Equal(t, 1, store.Transactions)
}

func TestApplicationService_Submit_DuplicateIsConflict(t *testing.T) {
	ctx, svc, store := setupApplicationServiceTest(t)
	actor := userActor()
	jobID := uuid.New()

	store.JobRepo.On("GetByID", ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(&models.Job{ID: jobID}, nil).Once()
	store.ApplicationRepo.On("ExistsForApplicant", ctx, jobID, actor.ID).Return(true, nil).Once()

	_, err := svc.Submit(ctx, actor, &dto.SubmitApplicationRequest{JobID: jobID, Resume: "cv.pdf"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict))
	store.ApplicationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_Submit_UniqueViolationIsConflict(t *testing.T) {
	ctx, svc, store := setupApplicationServiceTest(t)
	actor := userActor()
	jobID := uuid.New()

	// Another request committed between the pre-check and the insert.
	store.JobRepo.On("GetByID", ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(&models.Job{ID: jobID}, nil).Once()
	store.ApplicationRepo.On("ExistsForApplicant", ctx, jobID, actor.ID).Return(false, nil).Once()
	store.ApplicationRepo.On("Create", ctx, mock.AnythingOfType("*dto.CreateApplicationRequest")).
		Return(nil, fmt.Errorf("%w: application_job_id_applicant_id", storage.ErrConflict)).Once()

	_, err := svc.Submit(ctx, actor, &dto.SubmitApplicationRequest{JobID: jobID, Resume: "cv.pdf"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict))
}

func TestApplicationService_Submit_AdminIsUnauthorized(t *testing.T) {
	ctx, svc, store := setupApplicationServiceTest(t)

	_, err := svc.Submit(ctx, adminActor(), &dto.SubmitApplicationRequest{JobID: uuid.New(), Resume: "cv.pdf"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrUnauthorized))
	assert.Equal(t, 0, store.Transactions)
}

func TestApplicationService_Submit_AnonymousIsUnauthorized(t *testing.T) {
	ctx, svc, store := setupApplicationServiceTest(t)

	_, err := svc.Submit(ctx, policy.Anonymous(), &dto.SubmitApplicationRequest{JobID: uuid.New(), Resume: "cv.pdf"})

	assert.True(t, errors.Is(err, services.ErrUnauthorized))
	assert.Equal(t, 0, store.Transactions)
}

func TestApplicationService_Submit_Precedence(t *testing.T) {
	ctx, svc, _ := setupApplicationServiceTest(t)

	// An admin with a missing resume is refused on authorization first.
	_, err := svc.Submit(ctx, adminActor(), &dto.SubmitApplicationRequest{JobID: uuid.New()})
	assert.True(t, errors.Is(err, services.ErrUnauthorized))

	// A user with a missing resume gets an argument error before any lookup.
	_, err = svc.Submit(ctx, userActor(), &dto.SubmitApplicationRequest{JobID: uuid.New(), Resume: "   "})
	assert.True(t, errors.Is(err, services.ErrInvalidArgument))
}

func TestApplicationService_Submit_JobNotFound(t *testing.T) {
	ctx, svc, store := setupApplicationServiceTest(t)
	jobID := uuid.New()

	store.JobRepo.On("GetByID", ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(nil, storage.ErrNotFound).Once()

	_, err := svc.Submit(ctx, userActor(), &dto.SubmitApplicationRequest{JobID: jobID, Resume: "cv.pdf"})

	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestApplicationService_UpdateStatus_Precedence(t *testing.T) {
	ctx, svc, store := setupApplicationServiceTest(t)
	missingID := uuid.New()

	t.Run("non-admin with bad status is unauthorized", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, userActor(), &dto.UpdateApplicationStatusRequest{ID: missingID, Status: "hired"})
		assert.True(t, errors.Is(err, services.ErrUnauthorized))
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, policy.Anonymous(), &dto.UpdateApplicationStatusRequest{ID: missingID, Status: models.ApplicationStatusAccepted})
		assert.True(t, errors.Is(err, services.ErrUnauthorized))
	})

	t.Run("admin with bad status on missing id is invalid argument", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, adminActor(), &dto.UpdateApplicationStatusRequest{ID: missingID, Status: "hired"})
		assert.True(t, errors.Is(err, services.ErrInvalidArgument))
	})

	t.Run("admin with good status on missing id is not found", func(t *testing.T) {
		req := &dto.UpdateApplicationStatusRequest{ID: missingID, Status: models.ApplicationStatusReviewed}
		store.ApplicationRepo.On("UpdateStatus", ctx, req).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.UpdateStatus(ctx, adminActor(), req)
		assert.True(t, errors.Is(err, services.ErrNotFound))
	})
}

func TestApplicationService_UpdateStatus_AnyTransition(t *testing.T) {
	ctx, svc, store := setupApplicationServiceTest(t)
	appID, jobID, applicantID := uuid.New(), uuid.New(), uuid.New()

	// rejected -> submitted is allowed; there is no state machine.
	req := &dto.UpdateApplicationStatusRequest{ID: appID, Status: models.ApplicationStatusSubmitted}
	store.ApplicationRepo.On("UpdateStatus", ctx, req).
		Return(&models.Application{ID: appID, Status: models.ApplicationStatusSubmitted}, nil).Once()
	store.ApplicationRepo.On("GetByID", ctx, &dto.GetApplicationByIDRequest{ID: appID}).
		Return(applicationDetail(appID, jobID, applicantID, models.ApplicationStatusSubmitted), nil).Once()

	app, err := svc.UpdateStatus(ctx, adminActor(), req)

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusSubmitted, app.Status)
	assert.Equal(t, applicantID, app.ApplicantID, "applicant is never changed by a status update")
}

func TestApplicationService_List_Visibility(t *testing.T) {
	ctx, svc, store := setupApplicationServiceTest(t)
	user := userActor()
	otherUser := uuid.New()

	t.Run("users only see their own applications", func(t *testing.T) {
		own := []models.ApplicationDetail{*applicationDetail(uuid.New(), uuid.New(), user.ID, models.ApplicationStatusSubmitted)}
		store.ApplicationRepo.On("List", ctx, mock.MatchedBy(func(r *dto.ListApplicationsRequest) bool {
			return r.ApplicantID != nil && *r.ApplicantID == user.ID
		})).Return(own, nil).Once()

		// Trying to widen the filter to someone else is ignored.
		apps, err := svc.List(ctx, user, &dto.ListApplicationsRequest{ApplicantID: &otherUser, Limit: 20})

		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, user.ID, apps[0].ApplicantID)
	})

	t.Run("admins see everything", func(t *testing.T) {
		all := []models.ApplicationDetail{
			*applicationDetail(uuid.New(), uuid.New(), user.ID, models.ApplicationStatusSubmitted),
			*applicationDetail(uuid.New(), uuid.New(), otherUser, models.ApplicationStatusReviewed),
		}
		store.ApplicationRepo.On("List", ctx, mock.MatchedBy(func(r *dto.ListApplicationsRequest) bool {
			return r.ApplicantID == nil
		})).Return(all, nil).Once()

		apps, err := svc.List(ctx, adminActor(), &dto.ListApplicationsRequest{Limit: 20})

		require.NoError(t, err)
		assert.Len(t, apps, 2)
	})

	t.Run("anonymous is refused", func(t *testing.T) {
		_, err := svc.List(ctx, policy.Anonymous(), &dto.ListApplicationsRequest{Limit: 20})
		assert.True(t, errors.Is(err, services.ErrUnauthorized))
	})
}

func TestApplicationService_Get_Ownership(t *testing.T) {
	ctx, svc, store := setupApplicationServiceTest(t)
	owner := userActor()
	appID := uuid.New()
	detail := applicationDetail(appID, uuid.New(), owner.ID, models.ApplicationStatusSubmitted)
	req := &dto.GetApplicationByIDRequest{ID: appID}
	store.ApplicationRepo.On("GetByID", ctx, req).Return(detail, nil)

	got, err := svc.Get(ctx, owner, req)
	require.NoError(t, err)
	assert.Equal(t, appID, got.ID)

	_, err = svc.Get(ctx, adminActor(), req)
	require.NoError(t, err)

	_, err = svc.Get(ctx, userActor(), req)
	assert.True(t, errors.Is(err, services.ErrUnauthorized))
}
