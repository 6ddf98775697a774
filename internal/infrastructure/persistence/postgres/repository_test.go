package postgres_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rafabene/healthcamp-backend/internal/domain/entities"
	"github.com/rafabene/healthcamp-backend/internal/domain/valueobjects"
	"github.com/rafabene/healthcamp-backend/internal/infrastructure/persistence/postgres"
)

// newTestDB abre um banco SQLite descartável com o mesmo schema dos
// repositórios de produção. O driver é puro Go, então os testes exercitam a
// camada GORM real sem precisar de um PostgreSQL de verdade.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func newTestUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	t.Helper()

	email, err := valueobjects.NewEmail(username + "@clinic.org")
	if err != nil {
		t.Fatalf("new email: %v", err)
	}

	user := &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
	}

	repo := postgres.NewUserRepository(db)
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	return user
}

func newTestUserEntity(username string, email valueobjects.Email) *entities.User {
	return &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
	}
}

func newTestPatient(owner uint, name string, visitDate time.Time) *entities.PatientRecord {
	return &entities.PatientRecord{
		OwnerUserID: owner,
		Name:        name,
		Age:         30,
		Gender:      entities.GenderFemale,
		Phone:       "555-0101",
		Symptoms:    "fever",
		Diagnosis:   "flu",
		Treatment:   "rest",
		VisitDate:   visitDate,
	}
}
