package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/healthcamp-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/healthcamp-backend/internal/domain/errors"
	"github.com/rafabene/healthcamp-backend/internal/domain/repositories"
)

// visitDateLayout é o formato de data usado na coluna visit_date
const visitDateLayout = "2006-01-02"

// PatientRepository implementa repositories.PatientRepository
type PatientRepository struct {
	db *gorm.DB
}

// NewPatientRepository cria um novo PatientRepository
func NewPatientRepository(db *gorm.DB) repositories.PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, record *entities.PatientRecord) error {
	model := r.toModel(record)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return storageError(err)
	}

	record.ID = model.ID
	record.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id uint) (*entities.PatientRecord, error) {
	var model PatientModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPatientNotFound
		}
		return nil, storageError(err)
	}

	return r.toEntity(&model)
}

func (r *PatientRepository) ListByOwner(ctx context.Context, ownerUserID uint) ([]*entities.PatientRecord, error) {
	var models []*PatientModel

	db := r.getDB(ctx)
	err := db.Where("user_id = ?", ownerUserID).
		Order("visit_date DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, storageError(err)
	}

	return r.toEntities(models)
}

func (r *PatientRepository) Search(ctx context.Context, ownerUserID uint, keyword string) ([]*entities.PatientRecord, error) {
	var models []*PatientModel

	pattern := "%" + keyword + "%"

	db := r.getDB(ctx)
	err := db.Where("user_id = ?", ownerUserID).
		Where("name LIKE ? OR phone LIKE ? OR symptoms LIKE ? OR diagnosis LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("visit_date DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, storageError(err)
	}

	return r.toEntities(models)
}

func (r *PatientRepository) Update(ctx context.Context, record *entities.PatientRecord) error {
	db := r.getDB(ctx)

	// Sobrescrita completa dos campos mutáveis; user_id fica de fora do
	// conjunto de atualização (vínculo de dono é imutável).
	err := db.Model(&PatientModel{}).
		Where("id = ?", record.ID).
		Updates(map[string]interface{}{
			"name":       record.Name,
			"age":        record.Age,
			"gender":     string(record.Gender),
			"phone":      record.Phone,
			"symptoms":   record.Symptoms,
			"diagnosis":  record.Diagnosis,
			"treatment":  record.Treatment,
			"visit_date": record.VisitDate.Format(visitDateLayout),
		}).Error
	if err != nil {
		return storageError(err)
	}

	return nil
}

func (r *PatientRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)

	// Zero linhas afetadas ainda é sucesso: remover um id já removido é
	// idempotente em efeito.
	if err := db.Delete(&PatientModel{}, id).Error; err != nil {
		return storageError(err)
	}

	return nil
}

func (r *PatientRepository) CountToday(ctx context.Context, ownerUserID uint) (int64, error) {
	var count int64

	db := r.getDB(ctx)
	err := db.Model(&PatientModel{}).
		Where("user_id = ? AND visit_date = CURRENT_DATE", ownerUserID).
		Count(&count).Error
	if err != nil {
		return 0, storageError(err)
	}

	return count, nil
}

func (r *PatientRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Conversores
func (r *PatientRepository) toModel(record *entities.PatientRecord) *PatientModel {
	return &PatientModel{
		ID:        record.ID,
		UserID:    record.OwnerUserID,
		Name:      record.Name,
		Age:       record.Age,
		Gender:    string(record.Gender),
		Phone:     record.Phone,
		Symptoms:  record.Symptoms,
		Diagnosis: record.Diagnosis,
		Treatment: record.Treatment,
		VisitDate: record.VisitDate.Format(visitDateLayout),
	}
}

func (r *PatientRepository) toEntity(model *PatientModel) (*entities.PatientRecord, error) {
	visitDate, err := parseVisitDate(model.VisitDate)
	if err != nil {
		return nil, storageError(err)
	}

	return &entities.PatientRecord{
		ID:          model.ID,
		OwnerUserID: model.UserID,
		Name:        model.Name,
		Age:         model.Age,
		Gender:      entities.Gender(model.Gender),
		Phone:       model.Phone,
		Symptoms:    model.Symptoms,
		Diagnosis:   model.Diagnosis,
		Treatment:   model.Treatment,
		VisitDate:   visitDate,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
	}, nil
}

// parseVisitDate aceita tanto o formato de data puro quanto o formato de
// timestamp que o driver devolve ao escanear colunas date para string.
func parseVisitDate(value string) (time.Time, error) {
	if t, err := time.Parse(visitDateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func (r *PatientRepository) toEntities(models []*PatientModel) ([]*entities.PatientRecord, error) {
	records := make([]*entities.PatientRecord, 0, len(models))

	for _, model := range models {
		record, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
