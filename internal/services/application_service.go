package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

type applicationService struct {
	store storage.Store
}

func NewApplicationService(store storage.Store) ApplicationService {
	return &applicationService{store: store}
}

// Submit creates an application for the acting user. Checks run in order:
// authorization, input, job existence, duplicate. The duplicate pre-check
// gives a readable error; the (job_id, applicant_id) unique index settles races.
func (s *applicationService) Submit(ctx context.Context, actor policy.Actor, req *dto.SubmitApplicationRequest) (*models.ApplicationDetail, error) {
	if err := authorize(actor, policy.ActionCreate, policy.ResourceApplication, "SubmitApplication"); err != nil {
		return nil, err
	}
	resume := strings.TrimSpace(req.Resume)
	if resume == "" {
		return nil, fmt.Errorf("%w: resume is required", ErrInvalidArgument)
	}

	var detail *models.ApplicationDetail
	// --- Transaction Start ---
	err := s.store.RunInTx(ctx, func(tx storage.Store) error {
		if _, err := tx.Jobs().GetByID(ctx, &dto.GetJobByIDRequest{ID: req.JobID}); err != nil {
			return mapRepoError(err, "fetching job for application")
		}

		exists, err := tx.Applications().ExistsForApplicant(ctx, req.JobID, actor.ID)
		if err != nil {
			return mapRepoError(err, "checking existing application")
		}
		if exists {
			log.Printf("SubmitApplication: user %s already applied to job %s", actor.ID, req.JobID)
			return fmt.Errorf("%w: you have already applied to this job", ErrConflict)
		}

		app, err := tx.Applications().Create(ctx, &dto.CreateApplicationRequest{
			JobID:       req.JobID,
			ApplicantID: actor.ID,
			Resume:      resume,
			CoverLetter: req.CoverLetter,
		})
		if err != nil {
			if errors.Is(err, storage.ErrConflict) {
				return fmt.Errorf("%w: you have already applied to this job", ErrConflict)
			}
			return mapRepoError(err, "creating application")
		}

		detail, err = tx.Applications().GetByID(ctx, &dto.GetApplicationByIDRequest{ID: app.ID})
		if err != nil {
			return mapRepoError(err, "loading created application")
		}
		return nil
	})
	// --- End Transaction ---
	if err != nil {
		return nil, err
	}
	log.Printf("SubmitApplication: application %s created for job %s by %s", detail.ID, detail.JobID, actor.ID)
	return detail, nil
}

// UpdateStatus allows any status to follow any other. Precedence is
// authorization, then status validity, then existence.
func (s *applicationService) UpdateStatus(ctx context.Context, actor policy.Actor, req *dto.UpdateApplicationStatusRequest) (*models.ApplicationDetail, error) {
	if err := authorize(actor, policy.ActionUpdateStatus, policy.ResourceApplication, "UpdateApplicationStatus"); err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, req.Status)
	}

	var detail *models.ApplicationDetail
	err := s.store.RunInTx(ctx, func(tx storage.Store) error {
		if _, err := tx.Applications().UpdateStatus(ctx, req); err != nil {
			return mapRepoError(err, "updating application status")
		}
		var err error
		detail, err = tx.Applications().GetByID(ctx, &dto.GetApplicationByIDRequest{ID: req.ID})
		if err != nil {
			return mapRepoError(err, "loading updated application")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// List returns every application to admins and only their own to everyone else.
func (s *applicationService) List(ctx context.Context, actor policy.Actor, req *dto.ListApplicationsRequest) ([]models.ApplicationDetail, error) {
	if err := authorize(actor, policy.ActionRead, policy.ResourceApplication, "ListApplications"); err != nil {
		return nil, err
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, *req.Status)
	}

	filter := *req
	filter.ApplicantID = nil
	if !actor.IsAdmin() {
		applicantID := actor.ID
		filter.ApplicantID = &applicantID
	}

	apps, err := s.store.Applications().List(ctx, &filter)
	if err != nil {
		return nil, mapRepoError(err, "listing applications")
	}
	return apps, nil
}

func (s *applicationService) Get(ctx context.Context, actor policy.Actor, req *dto.GetApplicationByIDRequest) (*models.ApplicationDetail, error) {
	if err := authorize(actor, policy.ActionRead, policy.ResourceApplication, "GetApplication"); err != nil {
		return nil, err
	}
	detail, err := s.store.Applications().GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "getting application by ID")
	}
	if err := authorizeAccess(actor, policy.ActionRead, policy.ResourceApplication, detail.ApplicantID, "GetApplication"); err != nil {
		return nil, err
	}
	return detail, nil
}
