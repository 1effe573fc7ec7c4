package services

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
)

type profileService struct {
	store storage.Store
}

func NewProfileService(store storage.Store) ProfileService {
	return &profileService{store: store}
}

func (s *profileService) Get(ctx context.Context, actor policy.Actor, userID uuid.UUID) (*models.Profile, error) {
	if err := authorizeAccess(actor, policy.ActionRead, policy.ResourceProfile, userID, "GetProfile"); err != nil {
		return nil, err
	}
	profile, err := s.store.Profiles().GetByUserID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "getting profile")
	}
	return profile, nil
}

func (s *profileService) Update(ctx context.Context, actor policy.Actor, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	if err := authorizeAccess(actor, policy.ActionUpdate, policy.ResourceProfile, req.UserID, "UpdateProfile"); err != nil {
		return nil, err
	}
	var updated *models.Profile
	err := s.store.RunInTx(ctx, func(tx storage.Store) error {
		p, err := tx.Profiles().Update(ctx, req)
		if err != nil {
			return mapRepoError(err, "updating profile")
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
