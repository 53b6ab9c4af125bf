// Package testutil starts throwaway Postgres instances for integration tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/teamboard/backend/internal/database"
	"github.com/teamboard/backend/internal/models"
)

const postgresImage = "postgres:16-alpine"

// NewPostgres starts a Postgres container, migrates the schema and returns a
// gorm handle on it. The test is skipped when no container runtime is
// available. The container is removed when the test ends.
func NewPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("teamboard"),
		postgres.WithUsername("teamboard"),
		postgres.WithPassword("teamboard"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(dsn, time.Second, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Truncate empties the given tables and resets their id sequences.
func Truncate(t *testing.T, db *gorm.DB, tables ...string) {
	t.Helper()
	quoted := make([]string, len(tables))
	for i, name := range tables {
		quoted[i] = pq.QuoteIdentifier(name)
	}
	stmt := fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE", strings.Join(quoted, ", "))
	require.NoError(t, db.Exec(stmt).Error)
}

// AllTables lists every table created by database.Migrate.
var AllTables = []string{
	"users", "projects", "project_members", "posts",
	"votes", "vote_options", "vote_records",
	"time_polls", "time_responses",
}

// SeedUser inserts a user with a placeholder password hash.
func SeedUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	u := models.User{Name: name, Email: strings.ToLower(name) + "@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	return u
}

// SeedProject inserts a project owned by owner with owner and members joined.
func SeedProject(t *testing.T, db *gorm.DB, owner models.User, members ...models.User) models.Project {
	t.Helper()
	p := models.Project{Name: "project", Code: fmt.Sprintf("code-%d-%d", owner.ID, time.Now().UnixNano()), OwnerID: owner.ID}
	require.NoError(t, db.Omit("Members").Create(&p).Error)

	join := func(u models.User, role models.ProjectRole) {
		m := models.ProjectMember{ProjectID: p.ID, UserID: u.ID, Role: role}
		require.NoError(t, db.Omit("User").Create(&m).Error)
	}
	join(owner, models.ProjectRoleOwner)
	for _, u := range members {
		join(u, models.ProjectRoleMember)
	}
	return p
}
