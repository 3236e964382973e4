package database

import (
	"fmt"
	"testing"
	"time"

	"group-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// cleanupTables is ordered children first.
var cleanupTables = []string{
	"transactions",
	"recurring_obligations",
	"clients",
	"group_members",
	"groups",
	"audit_logs",
	"blacklisted_tokens",
	"refresh_tokens",
	"users",
}

// SetupTestDB opens a private in-memory SQLite database with the full schema.
// The pool is pinned to one connection because each new connection to
// ":memory:" would see an empty database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), gormConfig(logger.Silent))
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	pool, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrapping sql.DB: %v", err)
	}
	pool.SetMaxOpenConns(1)

	db := &DB{DB: gdb}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("migrating sqlite: %v", err)
	}
	return db
}

// CleanupTestDB empties every table.
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()
	for _, table := range cleanupTables {
		if err := db.Exec(fmt.Sprintf(`DELETE FROM %q`, table)).Error; err != nil {
			t.Errorf("emptying %s: %v", table, err)
		}
	}
}

// CreateTestUser persists a platform user with a fake name. An empty email
// is replaced by a fake one.
func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()
	return createTestUser(t, db, email, models.RoleUser)
}

// CreateTestAdminUser is CreateTestUser for a platform administrator.
func CreateTestAdminUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()
	return createTestUser(t, db, email, models.RoleAdmin)
}

func createTestUser(t *testing.T, db *DB, email, role string) *models.User {
	if email == "" {
		email = gofakeit.Email()
	}
	user := &models.User{
		Email:        email,
		PasswordHash: "not-a-real-hash",
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("creating %s %s: %v", role, email, err)
	}
	return user
}

// CreateTestGroup persists a group owned by owner with the given extra members.
func CreateTestGroup(t *testing.T, db *DB, owner *models.User, members map[uuid.UUID]models.GroupRole) *models.Group {
	t.Helper()

	now := time.Now()
	group := models.NewGroup(gofakeit.Company(), "USD", decimal.Zero, owner.ID, now)
	group.InviteKey = randomInviteKey()
	for userID, role := range members {
		if _, err := group.AddMember(userID, role, now); err != nil {
			t.Fatalf("failed to add test member: %v", err)
		}
	}

	if err := db.Create(group).Error; err != nil {
		t.Fatalf("failed to create test group: %v", err)
	}

	return group
}

func randomInviteKey() string {
	return gofakeit.Regex(`[0-9A-Z]{8}`)
}
