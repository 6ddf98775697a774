package services_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rafabene/healthcamp-backend/internal/domain/entities"
	"github.com/rafabene/healthcamp-backend/internal/domain/errors"
	"github.com/rafabene/healthcamp-backend/internal/domain/ports"
)

// nopLogger descarta tudo; os specs não inspecionam logs
type nopLogger struct{}

func (nopLogger) Info(string, ...any)         {}
func (nopLogger) Error(string, ...any)        {}
func (nopLogger) Debug(string, ...any)        {}
func (nopLogger) Warn(string, ...any)         {}
func (l nopLogger) With(...any) ports.Logger  { return l }

// fakeUnitOfWork executa a função diretamente, sem transação real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (fakeUnitOfWork) Rollback(context.Context) error                     { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// fakeUserRepo guarda usuários em memória com as mesmas regras de unicidade
// do schema
type fakeUserRepo struct {
	users  []*entities.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return errors.ErrUsernameAlreadyExists
		}
		if u.Email.String() == user.Email.String() {
			return errors.ErrEmailAlreadyExists
		}
	}

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByUsernameOrEmail(_ context.Context, identifier string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == identifier || u.Email.String() == identifier {
			return u, nil
		}
	}
	return nil, errors.ErrUserNotFound
}

func (r *fakeUserRepo) IsUsernameTaken(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) IsEmailTaken(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email.String() == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) List(context.Context) ([]*entities.User, error) {
	result := make([]*entities.User, len(r.users))
	copy(result, r.users)
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// fakePatientRepo guarda prontuários em memória
type fakePatientRepo struct {
	records []*entities.PatientRecord
	nextID  uint
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{nextID: 1}
}

func (r *fakePatientRepo) Create(_ context.Context, record *entities.PatientRecord) error {
	stored := *record
	stored.ID = r.nextID
	r.nextID++
	stored.CreatedAt = time.Now()
	r.records = append(r.records, &stored)

	record.ID = stored.ID
	record.CreatedAt = stored.CreatedAt
	return nil
}

func (r *fakePatientRepo) FindByID(_ context.Context, id uint) (*entities.PatientRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			found := *rec
			return &found, nil
		}
	}
	return nil, errors.ErrPatientNotFound
}

func (r *fakePatientRepo) ListByOwner(_ context.Context, ownerUserID uint) ([]*entities.PatientRecord, error) {
	var result []*entities.PatientRecord
	for _, rec := range r.records {
		if rec.OwnerUserID == ownerUserID {
			found := *rec
			result = append(result, &found)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].VisitDate.Equal(result[j].VisitDate) {
			return result[i].VisitDate.After(result[j].VisitDate)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *fakePatientRepo) Search(ctx context.Context, ownerUserID uint, keyword string) ([]*entities.PatientRecord, error) {
	all, err := r.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	var result []*entities.PatientRecord
	for _, rec := range all {
		if strings.Contains(rec.Name, keyword) ||
			strings.Contains(rec.Phone, keyword) ||
			strings.Contains(rec.Symptoms, keyword) ||
			strings.Contains(rec.Diagnosis, keyword) {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *fakePatientRepo) Update(_ context.Context, record *entities.PatientRecord) error {
	for _, rec := range r.records {
		if rec.ID == record.ID {
			owner := rec.OwnerUserID
			createdAt := rec.CreatedAt
			*rec = *record
			rec.OwnerUserID = owner
			rec.CreatedAt = createdAt
			return nil
		}
	}
	return nil
}

func (r *fakePatientRepo) Delete(_ context.Context, id uint) error {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	// Zero linhas afetadas ainda é sucesso
	return nil
}

func (r *fakePatientRepo) CountToday(_ context.Context, ownerUserID uint) (int64, error) {
	today := time.Now().Format("2006-01-02")

	var count int64
	for _, rec := range r.records {
		if rec.OwnerUserID == ownerUserID && rec.VisitDate.Format("2006-01-02") == today {
			count++
		}
	}
	return count, nil
}
