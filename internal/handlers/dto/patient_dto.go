package dto

import (
	"time"

	"github.com/rafabene/healthcamp-backend/internal/domain/entities"
	"github.com/rafabene/healthcamp-backend/internal/services"
)

// PatientRequest representa a entrada de criação/atualização de prontuário.
// Age é ponteiro porque 0 é uma idade válida e precisa ser distinguível de
// campo ausente. VisitDate vazio significa "hoje" na criação.
type PatientRequest struct {
	Name      string `json:"name" binding:"required"`
	Age       *int   `json:"age" binding:"required,min=0,max=150"`
	Gender    string `json:"gender" binding:"required,oneof=Male Female Other"`
	Phone     string `json:"phone" binding:"omitempty,max=15"`
	Symptoms  string `json:"symptoms"`
	Diagnosis string `json:"diagnosis" binding:"omitempty,max=200"`
	Treatment string `json:"treatment"`
	VisitDate string `json:"visit_date" binding:"omitempty,datetime=2006-01-02"`
}

// ToInput converte a requisição para a entrada do serviço
func (r *PatientRequest) ToInput() services.PatientInput {
	age := 0
	if r.Age != nil {
		age = *r.Age
	}

	return services.PatientInput{
		Name:      r.Name,
		Age:       age,
		Gender:    r.Gender,
		Phone:     r.Phone,
		Symptoms:  r.Symptoms,
		Diagnosis: r.Diagnosis,
		Treatment: r.Treatment,
		VisitDate: r.VisitDate,
	}
}

// PatientResponse representa a resposta de um prontuário
type PatientResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Phone     string    `json:"phone,omitempty"`
	Symptoms  string    `json:"symptoms,omitempty"`
	Diagnosis string    `json:"diagnosis,omitempty"`
	Treatment string    `json:"treatment,omitempty"`
	VisitDate string    `json:"visit_date"`
	CreatedAt time.Time `json:"created_at"`
}

// ToPatientResponse converte uma entidade PatientRecord para PatientResponse
func ToPatientResponse(record *entities.PatientRecord) PatientResponse {
	return PatientResponse{
		ID:        record.ID,
		Name:      record.Name,
		Age:       record.Age,
		Gender:    string(record.Gender),
		Phone:     record.Phone,
		Symptoms:  record.Symptoms,
		Diagnosis: record.Diagnosis,
		Treatment: record.Treatment,
		VisitDate: record.VisitDate.Format("2006-01-02"),
		CreatedAt: record.CreatedAt,
	}
}

// ToPatientResponses converte uma lista de prontuários
func ToPatientResponses(records []*entities.PatientRecord) []PatientResponse {
	responses := make([]PatientResponse, len(records))
	for i, record := range records {
		responses[i] = ToPatientResponse(record)
	}
	return responses
}

// TodayCountResponse representa o relatório de atendimentos do dia
type TodayCountResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
