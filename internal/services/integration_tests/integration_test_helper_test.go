package integration_tests

import (
	"context"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"jobboard-api/internal/database"
	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/security"
	"jobboard-api/internal/storage/postgres"
	"jobboard-api/internal/transport/dto"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func ptrDecimal(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func ptrString(s string) *string { return &s }

var allTables = []string{"applications", "jobs", "job_categories", "companies", "cities", "states", "countries", "profiles", "users"}

// getTestStore connects to TEST_DATABASE_URL, applies the schema and
// empties every table. Tests are skipped when the variable is unset.
func getTestStore(t *testing.T) (*postgres.Store, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable not set")
	}

	ctx := context.Background()
	require.NoError(t, database.Migrate(ctx, dsn), "Failed to migrate test database")

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(pool.Close)

	cleanupTables(ctx, t, pool, allTables...)
	return postgres.NewStore(pool), pool
}

// getTestRedis returns a flushed Redis client or skips the test.
func getTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_URL")
	if addr == "" {
		t.Skip("TEST_REDIS_URL environment variable not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, rdb.Ping(ctx).Err(), "Failed to connect to test Redis at %s", addr)

	cleanupRedis(t, rdb)
	t.Cleanup(func() {
		cleanupRedis(t, rdb)
		_ = rdb.Close()
	})
	return rdb
}

// cleanupTables truncates specified tables for test isolation.
func cleanupTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool, tables ...string) {
	t.Helper()
	if len(tables) == 0 {
		return
	}
	_, err := pool.Exec(ctx, "TRUNCATE TABLE "+strings.Join(tables, ", ")+" CASCADE")
	require.NoError(t, err, "Failed to truncate tables")
	log.Printf("Cleaned tables: %s", strings.Join(tables, ", "))
}

// cleanupRedis flushes the test Redis database. Use with caution!
func cleanupRedis(t *testing.T, client *redis.Client) {
	t.Helper()
	err := client.FlushDB(context.Background()).Err()
	require.NoError(t, err, "Failed to flush test Redis database")
}

// createTestUser inserts a user with a profile and returns the matching actor.
func createTestUser(t *testing.T, ctx context.Context, store *postgres.Store, email string, role models.Role) (*models.User, policy.Actor) {
	t.Helper()
	hash, err := security.HashPassword("password123")
	require.NoError(t, err)

	user, err := store.Users().Create(ctx, &dto.CreateUserRequest{Email: email, PasswordHash: hash, Role: role})
	require.NoError(t, err, "Failed to create test user %s", email)
	_, err = store.Profiles().Create(ctx, &dto.CreateProfileRequest{UserID: user.ID})
	require.NoError(t, err, "Failed to create profile for %s", email)

	return user, policy.NewActor(user.ID, user.Role)
}
