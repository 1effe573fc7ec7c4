package integration_tests

import (
	"context"
	"errors"
	"sync"
	"testing"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage/postgres"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJob(t *testing.T, ctx context.Context, store *postgres.Store, admin policy.Actor, categoryID *uuid.UUID) *models.Job {
	t.Helper()
	job, err := services.NewJobService(store).CreateJob(ctx, admin, &dto.CreateJobRequest{
		Title:       "Backend Dev",
		Description: "Build and run the API",
		Company:     "Acme",
		Location:    "Remote",
		JobType:     models.JobTypeFullTime,
		SalaryMin:   ptrDecimal("50000"),
		SalaryMax:   ptrDecimal("90000"),
		CategoryID:  categoryID,
	})
	require.NoError(t, err, "Failed to create test job")
	return job
}

func TestApplicationLifecycle(t *testing.T) {
	store, _ := getTestStore(t)
	ctx := context.Background()

	_, admin := createTestUser(t, ctx, store, "admin@example.com", models.RoleAdmin)
	applicant, user := createTestUser(t, ctx, store, "u@example.com", models.RoleUser)

	category, err := services.NewCategoryService(store).CreateCategory(ctx, admin, &dto.CreateCategoryRequest{Name: "Tech", Slug: ptrString("tech")})
	require.NoError(t, err)
	assert.Equal(t, "tech", category.Slug)

	job := createTestJob(t, ctx, store, admin, &category.ID)
	require.NotNil(t, job.Category)
	assert.Equal(t, "Tech", job.Category.Name)
	assert.Equal(t, admin.ID, job.PostedBy)

	apps := services.NewApplicationService(store)
	submitted, err := apps.Submit(ctx, user, &dto.SubmitApplicationRequest{JobID: job.ID, Resume: "cv.pdf", CoverLetter: ptrString("Hi")})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusSubmitted, submitted.Status)
	assert.Equal(t, applicant.ID, submitted.ApplicantID)
	assert.Equal(t, "Backend Dev", submitted.Job.Title)
	assert.Equal(t, "u@example.com", submitted.Applicant.Email)

	accepted, err := apps.UpdateStatus(ctx, admin, &dto.UpdateApplicationStatusRequest{ID: submitted.ID, Status: models.ApplicationStatusAccepted})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, accepted.Status)
	assert.False(t, accepted.UpdatedAt.Before(submitted.UpdatedAt))

	readBack, err := apps.Get(ctx, user, &dto.GetApplicationByIDRequest{ID: submitted.ID})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, readBack.Status)

	_, err = apps.UpdateStatus(ctx, user, &dto.UpdateApplicationStatusRequest{ID: submitted.ID, Status: models.ApplicationStatusRejected})
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	_, err = apps.Submit(ctx, user, &dto.SubmitApplicationRequest{JobID: job.ID, Resume: "cv-v2.pdf"})
	assert.ErrorIs(t, err, services.ErrConflict)

	_, err = apps.Submit(ctx, admin, &dto.SubmitApplicationRequest{JobID: job.ID, Resume: "cv.pdf"})
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestApplicationList_Visibility(t *testing.T) {
	store, _ := getTestStore(t)
	ctx := context.Background()

	_, admin := createTestUser(t, ctx, store, "admin@example.com", models.RoleAdmin)
	_, alice := createTestUser(t, ctx, store, "alice@example.com", models.RoleUser)
	_, bob := createTestUser(t, ctx, store, "bob@example.com", models.RoleUser)
	job := createTestJob(t, ctx, store, admin, nil)

	apps := services.NewApplicationService(store)
	for _, actor := range []policy.Actor{alice, bob} {
		_, err := apps.Submit(ctx, actor, &dto.SubmitApplicationRequest{JobID: job.ID, Resume: "cv.pdf"})
		require.NoError(t, err)
	}

	list := func(actor policy.Actor) []models.ApplicationDetail {
		out, err := apps.List(ctx, actor, &dto.ListApplicationsRequest{Limit: 20})
		require.NoError(t, err)
		return out
	}

	aliceSees := list(alice)
	require.Len(t, aliceSees, 1)
	assert.Equal(t, alice.ID, aliceSees[0].ApplicantID)
	assert.Len(t, list(admin), 2)

	_, err := apps.List(ctx, policy.Anonymous(), &dto.ListApplicationsRequest{Limit: 20})
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestSubmit_ConcurrentDuplicates(t *testing.T) {
	store, _ := getTestStore(t)
	ctx := context.Background()

	_, admin := createTestUser(t, ctx, store, "admin@example.com", models.RoleAdmin)
	_, user := createTestUser(t, ctx, store, "u@example.com", models.RoleUser)
	job := createTestJob(t, ctx, store, admin, nil)

	apps := services.NewApplicationService(store)
	const attempts = 5
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = apps.Submit(ctx, user, &dto.SubmitApplicationRequest{JobID: job.ID, Resume: "cv.pdf"})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, services.ErrConflict), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)

	all, err := apps.List(ctx, admin, &dto.ListApplicationsRequest{Limit: 20})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDeleteJob_CascadesToApplications(t *testing.T) {
	store, pool := getTestStore(t)
	ctx := context.Background()

	_, admin := createTestUser(t, ctx, store, "admin@example.com", models.RoleAdmin)
	_, user := createTestUser(t, ctx, store, "u@example.com", models.RoleUser)
	job := createTestJob(t, ctx, store, admin, nil)

	apps := services.NewApplicationService(store)
	submitted, err := apps.Submit(ctx, user, &dto.SubmitApplicationRequest{JobID: job.ID, Resume: "cv.pdf"})
	require.NoError(t, err)

	require.NoError(t, services.NewJobService(store).DeleteJob(ctx, admin, &dto.DeleteJobRequest{ID: job.ID}))

	_, err = apps.Get(ctx, user, &dto.GetApplicationByIDRequest{ID: submitted.ID})
	assert.ErrorIs(t, err, services.ErrNotFound)

	var remaining int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM applications WHERE job_id = $1", job.ID).Scan(&remaining))
	assert.Zero(t, remaining)
}

func TestDeleteCategory_KeepsJobs(t *testing.T) {
	store, _ := getTestStore(t)
	ctx := context.Background()

	_, admin := createTestUser(t, ctx, store, "admin@example.com", models.RoleAdmin)
	categories := services.NewCategoryService(store)
	category, err := categories.CreateCategory(ctx, admin, &dto.CreateCategoryRequest{Name: "Tech"})
	require.NoError(t, err)
	job := createTestJob(t, ctx, store, admin, &category.ID)

	require.NoError(t, categories.DeleteCategory(ctx, admin, &dto.DeleteCategoryRequest{ID: category.ID}))

	reloaded, err := services.NewJobService(store).GetJobByID(ctx, policy.Anonymous(), &dto.GetJobByIDRequest{ID: job.ID})
	require.NoError(t, err)
	assert.Nil(t, reloaded.CategoryID)
	assert.Nil(t, reloaded.Category)
}

func TestCategory_DuplicateSlug(t *testing.T) {
	store, _ := getTestStore(t)
	ctx := context.Background()

	_, admin := createTestUser(t, ctx, store, "admin@example.com", models.RoleAdmin)
	categories := services.NewCategoryService(store)
	_, err := categories.CreateCategory(ctx, admin, &dto.CreateCategoryRequest{Name: "Tech"})
	require.NoError(t, err)

	_, err = categories.CreateCategory(ctx, admin, &dto.CreateCategoryRequest{Name: "Technology", Slug: ptrString("tech")})
	assert.ErrorIs(t, err, services.ErrConflict)
}
