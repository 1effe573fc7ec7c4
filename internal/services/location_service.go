package services

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

// locationService manages the country > state > city hierarchy. Names are
// unique within their parent; deleting a parent removes its children.
type locationService struct {
	store storage.Store
}

func NewLocationService(store storage.Store) LocationService {
	return &locationService{store: store}
}

// write runs fn in a transaction after the admin check shared by every mutation.
func (s *locationService) write(ctx context.Context, actor policy.Actor, action policy.Action, op string, fn func(repo storage.LocationRepository) error) error {
	if err := authorize(actor, action, policy.ResourceLocation, op); err != nil {
		return err
	}
	return s.store.RunInTx(ctx, func(tx storage.Store) error {
		if err := fn(tx.Locations()); err != nil {
			return mapRepoError(err, op)
		}
		return nil
	})
}

func (s *locationService) read(actor policy.Actor, op string) (storage.LocationRepository, error) {
	if err := authorize(actor, policy.ActionRead, policy.ResourceLocation, op); err != nil {
		return nil, err
	}
	return s.store.Locations(), nil
}

// --- Countries ---

func (s *locationService) CreateCountry(ctx context.Context, actor policy.Actor, req *dto.CreateCountryRequest) (*models.Country, error) {
	var out *models.Country
	err := s.write(ctx, actor, policy.ActionCreate, "creating country", func(repo storage.LocationRepository) (err error) {
		out, err = repo.CreateCountry(ctx, req)
		return err
	})
	return out, err
}

func (s *locationService) GetCountry(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) (*models.Country, error) {
	repo, err := s.read(actor, "GetCountry")
	if err != nil {
		return nil, err
	}
	country, err := repo.GetCountry(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "getting country")
	}
	return country, nil
}

func (s *locationService) ListCountries(ctx context.Context, actor policy.Actor, req *dto.ListCountriesRequest) ([]models.Country, error) {
	repo, err := s.read(actor, "ListCountries")
	if err != nil {
		return nil, err
	}
	countries, err := repo.ListCountries(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing countries")
	}
	return countries, nil
}

func (s *locationService) UpdateCountry(ctx context.Context, actor policy.Actor, req *dto.UpdateCountryRequest) (*models.Country, error) {
	var out *models.Country
	err := s.write(ctx, actor, policy.ActionUpdate, "updating country", func(repo storage.LocationRepository) (err error) {
		out, err = repo.UpdateCountry(ctx, req)
		return err
	})
	return out, err
}

func (s *locationService) DeleteCountry(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) error {
	return s.write(ctx, actor, policy.ActionDelete, "deleting country", func(repo storage.LocationRepository) error {
		return repo.DeleteCountry(ctx, req)
	})
}

// --- States ---

// CreateState reports a missing country as ErrInvalidArgument.
func (s *locationService) CreateState(ctx context.Context, actor policy.Actor, req *dto.CreateStateRequest) (*models.State, error) {
	var out *models.State
	err := s.write(ctx, actor, policy.ActionCreate, "creating state", func(repo storage.LocationRepository) (err error) {
		out, err = repo.CreateState(ctx, req)
		return err
	})
	return out, err
}

func (s *locationService) GetState(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) (*models.State, error) {
	repo, err := s.read(actor, "GetState")
	if err != nil {
		return nil, err
	}
	state, err := repo.GetState(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "getting state")
	}
	return state, nil
}

func (s *locationService) ListStates(ctx context.Context, actor policy.Actor, req *dto.ListStatesRequest) ([]models.State, error) {
	repo, err := s.read(actor, "ListStates")
	if err != nil {
		return nil, err
	}
	states, err := repo.ListStates(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing states")
	}
	return states, nil
}

func (s *locationService) UpdateState(ctx context.Context, actor policy.Actor, req *dto.UpdateStateRequest) (*models.State, error) {
	var out *models.State
	err := s.write(ctx, actor, policy.ActionUpdate, "updating state", func(repo storage.LocationRepository) (err error) {
		out, err = repo.UpdateState(ctx, req)
		return err
	})
	return out, err
}

func (s *locationService) DeleteState(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) error {
	return s.write(ctx, actor, policy.ActionDelete, "deleting state", func(repo storage.LocationRepository) error {
		return repo.DeleteState(ctx, req)
	})
}

// --- Cities ---

func (s *locationService) CreateCity(ctx context.Context, actor policy.Actor, req *dto.CreateCityRequest) (*models.City, error) {
	var out *models.City
	err := s.write(ctx, actor, policy.ActionCreate, "creating city", func(repo storage.LocationRepository) (err error) {
		out, err = repo.CreateCity(ctx, req)
		return err
	})
	return out, err
}

func (s *locationService) GetCity(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) (*models.City, error) {
	repo, err := s.read(actor, "GetCity")
	if err != nil {
		return nil, err
	}
	city, err := repo.GetCity(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "getting city")
	}
	return city, nil
}

func (s *locationService) ListCities(ctx context.Context, actor policy.Actor, req *dto.ListCitiesRequest) ([]models.City, error) {
	repo, err := s.read(actor, "ListCities")
	if err != nil {
		return nil, err
	}
	cities, err := repo.ListCities(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing cities")
	}
	return cities, nil
}

func (s *locationService) UpdateCity(ctx context.Context, actor policy.Actor, req *dto.UpdateCityRequest) (*models.City, error) {
	var out *models.City
	err := s.write(ctx, actor, policy.ActionUpdate, "updating city", func(repo storage.LocationRepository) (err error) {
		out, err = repo.UpdateCity(ctx, req)
		return err
	})
	return out, err
}

func (s *locationService) DeleteCity(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) error {
	return s.write(ctx, actor, policy.ActionDelete, "deleting city", func(repo storage.LocationRepository) error {
		return repo.DeleteCity(ctx, req)
	})
}
