package entities

import (
	"errors"
	"strings"
	"time"
)

const (
	// MinPatientAge e MaxPatientAge delimitam a faixa aceita de idade
	MinPatientAge = 0
	MaxPatientAge = 150
)

// PatientRecord representa um registro de atendimento de paciente.
// Cada registro pertence a exatamente um usuário (owner); o vínculo é
// imutável após a criação.
type PatientRecord struct {
	ID          uint
	OwnerUserID uint
	Name        string
	Age         int
	Gender      Gender
	Phone       string
	Symptoms    string
	Diagnosis   string
	Treatment   string
	VisitDate   time.Time
	CreatedAt   time.Time
}

// NewPatientRecord cria um registro com a data de visita padrão (hoje)
func NewPatientRecord(ownerUserID uint) *PatientRecord {
	return &PatientRecord{
		OwnerUserID: ownerUserID,
		VisitDate:   time.Now(),
	}
}

// Validate valida regras de negócio do registro de paciente
func (p *PatientRecord) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}

	if p.Age < MinPatientAge || p.Age > MaxPatientAge {
		return errors.New("age must be between 0 and 150")
	}

	if !p.Gender.IsValid() {
		return errors.New("gender must be Male, Female or Other")
	}

	if p.VisitDate.IsZero() {
		return errors.New("visit date is required")
	}

	return nil
}
