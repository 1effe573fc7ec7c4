package postgres

import (
	"context"
	"fmt"
	"log"
	"strings"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LocationRepo implements the storage.LocationRepository interface for the
// country > state > city hierarchy. Deleting a parent cascades to its children.
type LocationRepo struct {
	db Querier
}

func NewLocationRepo(db Querier) *LocationRepo {
	return &LocationRepo{db: db}
}

func (r *LocationRepo) WithTx(tx pgx.Tx) *LocationRepo {
	return &LocationRepo{db: tx}
}

var _ storage.LocationRepository = (*LocationRepo)(nil)

func (r *LocationRepo) deleteByID(ctx context.Context, table string, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		log.Printf("Error deleting from %s %s: %v\n", table, id, err)
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	log.Printf("Deleted %s row %s", table, id)
	return nil
}

// --- Countries ---

const countryColumns = "id, name, iso_code"

func normalizeISO(code *string) *string {
	if code == nil {
		return nil
	}
	upper := strings.ToUpper(strings.TrimSpace(*code))
	return &upper
}

func (r *LocationRepo) CreateCountry(ctx context.Context, req *dto.CreateCountryRequest) (*models.Country, error) {
	return queryOne[models.Country](ctx, r.db, "creating country",
		`INSERT INTO countries (id, name, iso_code) VALUES ($1, $2, $3) RETURNING `+countryColumns,
		uuid.New(), strings.TrimSpace(req.Name), normalizeISO(req.ISOCode))
}

func (r *LocationRepo) GetCountry(ctx context.Context, req *dto.LocationIDRequest) (*models.Country, error) {
	return queryOne[models.Country](ctx, r.db, "getting country",
		`SELECT `+countryColumns+` FROM countries WHERE id = $1`, req.ID)
}

func (r *LocationRepo) ListCountries(ctx context.Context, req *dto.ListCountriesRequest) ([]models.Country, error) {
	var q listQuery
	query := q.build(`SELECT `+countryColumns+` FROM countries`, "name ASC", req.Limit, req.Offset)
	return queryMany[models.Country](ctx, r.db, "listing countries", query, q.args...)
}

func (r *LocationRepo) UpdateCountry(ctx context.Context, req *dto.UpdateCountryRequest) (*models.Country, error) {
	var u updateSet
	if req.Name != nil {
		u.set("name", strings.TrimSpace(*req.Name))
	}
	if req.ISOCode != nil {
		u.set("iso_code", normalizeISO(req.ISOCode))
	}
	if u.empty() {
		return r.GetCountry(ctx, &dto.LocationIDRequest{ID: req.ID})
	}
	query, args := u.build("countries", req.ID, false, countryColumns)
	return queryOne[models.Country](ctx, r.db, "updating country", query, args...)
}

func (r *LocationRepo) DeleteCountry(ctx context.Context, req *dto.LocationIDRequest) error {
	return r.deleteByID(ctx, "countries", req.ID)
}

// --- States ---

const stateColumns = "id, country_id, name"

func (r *LocationRepo) CreateState(ctx context.Context, req *dto.CreateStateRequest) (*models.State, error) {
	return queryOne[models.State](ctx, r.db, "creating state",
		`INSERT INTO states (id, country_id, name) VALUES ($1, $2, $3) RETURNING `+stateColumns,
		uuid.New(), req.CountryID, strings.TrimSpace(req.Name))
}

func (r *LocationRepo) GetState(ctx context.Context, req *dto.LocationIDRequest) (*models.State, error) {
	return queryOne[models.State](ctx, r.db, "getting state",
		`SELECT `+stateColumns+` FROM states WHERE id = $1`, req.ID)
}

func (r *LocationRepo) ListStates(ctx context.Context, req *dto.ListStatesRequest) ([]models.State, error) {
	var q listQuery
	if req.CountryID != nil {
		q.where("country_id = $%d", *req.CountryID)
	}
	query := q.build(`SELECT `+stateColumns+` FROM states`, "name ASC", req.Limit, req.Offset)
	return queryMany[models.State](ctx, r.db, "listing states", query, q.args...)
}

func (r *LocationRepo) UpdateState(ctx context.Context, req *dto.UpdateStateRequest) (*models.State, error) {
	if req.Name == nil {
		return r.GetState(ctx, &dto.LocationIDRequest{ID: req.ID})
	}
	var u updateSet
	u.set("name", strings.TrimSpace(*req.Name))
	query, args := u.build("states", req.ID, false, stateColumns)
	return queryOne[models.State](ctx, r.db, "updating state", query, args...)
}

func (r *LocationRepo) DeleteState(ctx context.Context, req *dto.LocationIDRequest) error {
	return r.deleteByID(ctx, "states", req.ID)
}

// --- Cities ---

const cityColumns = "id, state_id, name"

func (r *LocationRepo) CreateCity(ctx context.Context, req *dto.CreateCityRequest) (*models.City, error) {
	return queryOne[models.City](ctx, r.db, "creating city",
		`INSERT INTO cities (id, state_id, name) VALUES ($1, $2, $3) RETURNING `+cityColumns,
		uuid.New(), req.StateID, strings.TrimSpace(req.Name))
}

func (r *LocationRepo) GetCity(ctx context.Context, req *dto.LocationIDRequest) (*models.City, error) {
	return queryOne[models.City](ctx, r.db, "getting city",
		`SELECT `+cityColumns+` FROM cities WHERE id = $1`, req.ID)
}

func (r *LocationRepo) ListCities(ctx context.Context, req *dto.ListCitiesRequest) ([]models.City, error) {
	var q listQuery
	if req.StateID != nil {
		q.where("state_id = $%d", *req.StateID)
	}
	query := q.build(`SELECT `+cityColumns+` FROM cities`, "name ASC", req.Limit, req.Offset)
	return queryMany[models.City](ctx, r.db, "listing cities", query, q.args...)
}

func (r *LocationRepo) UpdateCity(ctx context.Context, req *dto.UpdateCityRequest) (*models.City, error) {
	if req.Name == nil {
		return r.GetCity(ctx, &dto.LocationIDRequest{ID: req.ID})
	}
	var u updateSet
	u.set("name", strings.TrimSpace(*req.Name))
	query, args := u.build("cities", req.ID, false, cityColumns)
	return queryOne[models.City](ctx, r.db, "updating city", query, args...)
}

func (r *LocationRepo) DeleteCity(ctx context.Context, req *dto.LocationIDRequest) error {
	return r.deleteByID(ctx, "cities", req.ID)
}
