package services

import (
	"context"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/shopspring/decimal"
)

type jobService struct {
	store storage.Store
}

// NewJobService creates a new instance of JobService.
func NewJobService(store storage.Store) JobService {
	return &jobService{store: store}
}

func checkSalaryRange(min, max *decimal.Decimal) error {
	if min != nil && max != nil && min.GreaterThan(*max) {
		return fmt.Errorf("%w: salary_min (%s) exceeds salary_max (%s)", ErrInvalidArgument, min.StringFixed(2), max.StringFixed(2))
	}
	return nil
}

// checkClears rejects an update that both sets and clears the same field.
func checkClears(req *dto.UpdateJobRequest) error {
	set := map[string]bool{
		dto.JobFieldCategory:  req.CategoryID != nil,
		dto.JobFieldSalaryMin: req.SalaryMin != nil,
		dto.JobFieldSalaryMax: req.SalaryMax != nil,
		dto.JobFieldLatitude:  req.Latitude != nil,
		dto.JobFieldLongitude: req.Longitude != nil,
	}
	for _, field := range req.Clear {
		given, known := set[field]
		if !known {
			return fmt.Errorf("%w: %q cannot be cleared", ErrInvalidArgument, field)
		}
		if given {
			return fmt.Errorf("%w: %q is both set and cleared", ErrInvalidArgument, field)
		}
	}
	return nil
}

func (s *jobService) CreateJob(ctx context.Context, actor policy.Actor, req *dto.CreateJobRequest) (*models.Job, error) {
	if err := authorize(actor, policy.ActionCreate, policy.ResourceJob, "CreateJob"); err != nil {
		return nil, err
	}
	if !req.JobType.IsValid() {
		return nil, fmt.Errorf("%w: unknown job type %q", ErrInvalidArgument, req.JobType)
	}
	if err := checkSalaryRange(req.SalaryMin, req.SalaryMax); err != nil {
		return nil, err
	}

	create := *req
	create.PostedBy = actor.ID

	var job *models.Job
	err := s.store.RunInTx(ctx, func(tx storage.Store) error {
		created, err := tx.Jobs().Create(ctx, &create)
		if err != nil {
			log.Printf("JobService: Error creating job: %v", err)
			return mapRepoError(err, "creating job")
		}
		job = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) GetJobByID(ctx context.Context, actor policy.Actor, req *dto.GetJobByIDRequest) (*models.Job, error) {
	if err := authorize(actor, policy.ActionRead, policy.ResourceJob, "GetJobByID"); err != nil {
		return nil, err
	}
	job, err := s.store.Jobs().GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "getting job by ID")
	}
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, actor policy.Actor, req *dto.ListJobsRequest) ([]models.Job, error) {
	if err := authorize(actor, policy.ActionRead, policy.ResourceJob, "ListJobs"); err != nil {
		return nil, err
	}
	if req.JobType != nil && !req.JobType.IsValid() {
		return nil, fmt.Errorf("%w: unknown job type %q", ErrInvalidArgument, *req.JobType)
	}
	jobs, err := s.store.Jobs().List(ctx, req)
	if err != nil {
		log.Printf("JobService: Error listing jobs: %v", err)
		return nil, mapRepoError(err, "listing jobs")
	}
	return jobs, nil
}

func (s *jobService) UpdateJob(ctx context.Context, actor policy.Actor, req *dto.UpdateJobRequest) (*models.Job, error) {
	if err := authorize(actor, policy.ActionUpdate, policy.ResourceJob, "UpdateJob"); err != nil {
		return nil, err
	}
	if req.JobType != nil && !req.JobType.IsValid() {
		return nil, fmt.Errorf("%w: unknown job type %q", ErrInvalidArgument, *req.JobType)
	}
	if err := checkSalaryRange(req.SalaryMin, req.SalaryMax); err != nil {
		return nil, err
	}
	if err := checkClears(req); err != nil {
		return nil, err
	}

	// A one-sided salary change still has to respect the stored other side,
	// unless that side is being cleared.
	oneSided := (req.SalaryMin != nil && req.SalaryMax == nil && !req.Clears(dto.JobFieldSalaryMax)) ||
		(req.SalaryMax != nil && req.SalaryMin == nil && !req.Clears(dto.JobFieldSalaryMin))

	var job *models.Job
	// --- Transaction Start ---
	err := s.store.RunInTx(ctx, func(tx storage.Store) error {
		if oneSided {
			existing, err := tx.Jobs().GetByID(ctx, &dto.GetJobByIDRequest{ID: req.ID})
			if err != nil {
				return mapRepoError(err, "fetching job for update")
			}
			min, max := existing.SalaryMin, existing.SalaryMax
			if req.SalaryMin != nil {
				min = req.SalaryMin
			}
			if req.SalaryMax != nil {
				max = req.SalaryMax
			}
			if err := checkSalaryRange(min, max); err != nil {
				return err
			}
		}
		updated, err := tx.Jobs().Update(ctx, req)
		if err != nil {
			log.Printf("UpdateJob: Error updating job %s in repo: %v", req.ID, err)
			return mapRepoError(err, "updating job")
		}
		job = updated
		return nil
	})
	// --- End Transaction ---
	if err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes the job and, through the foreign key, its applications.
func (s *jobService) DeleteJob(ctx context.Context, actor policy.Actor, req *dto.DeleteJobRequest) error {
	if err := authorize(actor, policy.ActionDelete, policy.ResourceJob, "DeleteJob"); err != nil {
		return err
	}
	return s.store.RunInTx(ctx, func(tx storage.Store) error {
		if err := tx.Jobs().Delete(ctx, req); err != nil {
			log.Printf("DeleteJob: Error deleting job %s: %v", req.ID, err)
			return mapRepoError(err, "deleting job")
		}
		return nil
	})
}
