package postgres

import (
	"context"
	"fmt"
	"log"

	"jobboard-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store implements storage.Store on a pgx pool. A Store produced by RunInTx
// routes every repository through the same transaction.
type Store struct {
	pool *pgxpool.Pool
	tx   pgx.Tx

	users        *UserRepo
	profiles     *ProfileRepo
	categories   *CategoryRepo
	jobs         *JobRepo
	applications *ApplicationRepo
	companies    *CompanyRepo
	locations    *LocationRepo
}

var _ storage.Store = (*Store)(nil)

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:         pool,
		users:        NewUserRepo(pool),
		profiles:     NewProfileRepo(pool),
		categories:   NewCategoryRepo(pool),
		jobs:         NewJobRepo(pool),
		applications: NewApplicationRepo(pool),
		companies:    NewCompanyRepo(pool),
		locations:    NewLocationRepo(pool),
	}
}

// withTx returns a copy of the store whose repositories all run on tx.
func (s *Store) withTx(tx pgx.Tx) *Store {
	return &Store{
		pool:         s.pool,
		tx:           tx,
		users:        s.users.WithTx(tx),
		profiles:     s.profiles.WithTx(tx),
		categories:   s.categories.WithTx(tx),
		jobs:         s.jobs.WithTx(tx),
		applications: s.applications.WithTx(tx),
		companies:    s.companies.WithTx(tx),
		locations:    s.locations.WithTx(tx),
	}
}

func (s *Store) Users() storage.UserRepository               { return s.users }
func (s *Store) Profiles() storage.ProfileRepository         { return s.profiles }
func (s *Store) Categories() storage.CategoryRepository      { return s.categories }
func (s *Store) Jobs() storage.JobRepository                 { return s.jobs }
func (s *Store) Applications() storage.ApplicationRepository { return s.applications }
func (s *Store) Companies() storage.CompanyRepository        { return s.companies }
func (s *Store) Locations() storage.LocationRepository       { return s.locations }

// RunInTx begins a transaction, hands fn a transaction-bound Store and
// commits if fn succeeds. Nested calls join the outer transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(tx storage.Store) error) error {
	if s.tx != nil {
		return fn(s)
	}

	// --- Transaction Start ---
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		log.Printf("RunInTx: Error beginning transaction: %v", err)
		return fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // no-op after a successful commit

	if err := fn(s.withTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("RunInTx: Error committing transaction: %v", err)
		return fmt.Errorf("internal error committing changes: %w", mapPgError(err))
	}
	// --- End Transaction ---
	return nil
}
