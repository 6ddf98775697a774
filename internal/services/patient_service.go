package services

import (
	"context"
	"strings"
	"time"

	"github.com/rafabene/healthcamp-backend/internal/domain/entities"
	"github.com/rafabene/healthcamp-backend/internal/domain/errors"
	"github.com/rafabene/healthcamp-backend/internal/domain/ports"
	"github.com/rafabene/healthcamp-backend/internal/domain/repositories"
)

// visitDateLayout é o formato aceito para datas de visita na entrada
const visitDateLayout = "2006-01-02"

// PatientService contém a lógica de negócio para prontuários.
// Toda entrada passa pelo gate de validação antes de chegar ao storage;
// nenhuma escrita parcial ocorre.
type PatientService struct {
	patientRepo repositories.PatientRepository
	logger      ports.Logger
}

// NewPatientService cria um novo PatientService
func NewPatientService(patientRepo repositories.PatientRepository, logger ports.Logger) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		logger:      logger,
	}
}

// PatientInput representa os dados de entrada de um prontuário.
// VisitDate usa o formato YYYY-MM-DD; vazio significa "hoje" na criação.
type PatientInput struct {
	Name      string
	Age       int
	Gender    string
	Phone     string
	Symptoms  string
	Diagnosis string
	Treatment string
	VisitDate string
}

// AddPatient valida e cria um prontuário pertencente ao usuário dono
func (s *PatientService) AddPatient(ctx context.Context, ownerUserID uint, input PatientInput) (*entities.PatientRecord, error) {
	record, err := s.buildRecord(ownerUserID, input)
	if err != nil {
		return nil, err
	}

	if err := s.patientRepo.Create(ctx, record); err != nil {
		s.logger.Error("failed to create patient record", "owner_user_id", ownerUserID, "error", err)
		return nil, err
	}

	s.logger.Info("patient record created", "patient_id", record.ID, "owner_user_id", ownerUserID)
	return record, nil
}

// GetPatient busca um prontuário por id, verificando que pertence ao chamador
func (s *PatientService) GetPatient(ctx context.Context, ownerUserID, id uint) (*entities.PatientRecord, error) {
	record, err := s.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if record.OwnerUserID != ownerUserID {
		// Não revelar que o registro existe para outro dono
		return nil, errors.ErrPatientNotFound
	}

	return record, nil
}

// ListPatients retorna os prontuários do dono, visita mais recente primeiro
func (s *PatientService) ListPatients(ctx context.Context, ownerUserID uint) ([]*entities.PatientRecord, error) {
	return s.patientRepo.ListByOwner(ctx, ownerUserID)
}

// SearchPatients busca por substring em nome, telefone, sintomas e
// diagnóstico. Palavra-chave vazia é rejeitada antes de chegar ao storage
// (evita o padrão que casa com tudo).
func (s *PatientService) SearchPatients(ctx context.Context, ownerUserID uint, keyword string) ([]*entities.PatientRecord, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, errors.NewValidationError("q", "validation.keyword_required")
	}

	return s.patientRepo.Search(ctx, ownerUserID, keyword)
}

// UpdatePatient valida e sobrescreve os campos mutáveis de um prontuário.
// id e dono permanecem estáveis; last writer wins (sem checagem otimista).
func (s *PatientService) UpdatePatient(ctx context.Context, ownerUserID, id uint, input PatientInput) (*entities.PatientRecord, error) {
	existing, err := s.GetPatient(ctx, ownerUserID, id)
	if err != nil {
		return nil, err
	}

	record, err := s.buildRecord(ownerUserID, input)
	if err != nil {
		return nil, err
	}
	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt

	if err := s.patientRepo.Update(ctx, record); err != nil {
		s.logger.Error("failed to update patient record", "patient_id", id, "error", err)
		return nil, err
	}

	return record, nil
}

// DeletePatient remove um prontuário do chamador. Hard delete, sem lixeira.
func (s *PatientService) DeletePatient(ctx context.Context, ownerUserID, id uint) error {
	if _, err := s.GetPatient(ctx, ownerUserID, id); err != nil {
		return err
	}

	if err := s.patientRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete patient record", "patient_id", id, "error", err)
		return err
	}

	s.logger.Info("patient record deleted", "patient_id", id, "owner_user_id", ownerUserID)
	return nil
}

// CountToday retorna quantos prontuários do dono têm visita na data corrente
// do storage
func (s *PatientService) CountToday(ctx context.Context, ownerUserID uint) (int64, error) {
	return s.patientRepo.CountToday(ctx, ownerUserID)
}

// buildRecord aplica o gate de validação e monta a entidade
func (s *PatientService) buildRecord(ownerUserID uint, input PatientInput) (*entities.PatientRecord, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.NewValidationError("name", "validation.name_required")
	}

	if input.Age < entities.MinPatientAge || input.Age > entities.MaxPatientAge {
		return nil, errors.NewValidationError("age", "validation.age_range")
	}

	gender := entities.Gender(input.Gender)
	if !gender.IsValid() {
		return nil, errors.NewValidationError("gender", "validation.gender_invalid")
	}

	visitDate := time.Now()
	if input.VisitDate != "" {
		parsed, err := time.Parse(visitDateLayout, input.VisitDate)
		if err != nil {
			return nil, errors.NewValidationError("visit_date", "validation.visit_date_invalid")
		}
		visitDate = parsed
	}

	record := entities.NewPatientRecord(ownerUserID)
	record.Name = name
	record.Age = input.Age
	record.Gender = gender
	record.Phone = strings.TrimSpace(input.Phone)
	record.Symptoms = input.Symptoms
	record.Diagnosis = input.Diagnosis
	record.Treatment = input.Treatment
	record.VisitDate = visitDate

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}
