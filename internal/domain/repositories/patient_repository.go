package repositories

import (
	"context"

	"github.com/rafabene/healthcamp-backend/internal/domain/entities"
)

// PatientRepository define a interface para persistência de prontuários.
// Todas as consultas de leitura são escopadas pelo usuário dono; Update e
// Delete operam por id (o vínculo de dono é imutável e não faz parte do
// conjunto de atualização).
type PatientRepository interface {
	Create(ctx context.Context, record *entities.PatientRecord) error
	FindByID(ctx context.Context, id uint) (*entities.PatientRecord, error)
	ListByOwner(ctx context.Context, ownerUserID uint) ([]*entities.PatientRecord, error)
	Search(ctx context.Context, ownerUserID uint, keyword string) ([]*entities.PatientRecord, error)
	Update(ctx context.Context, record *entities.PatientRecord) error
	// Delete remove o registro por id. Remover um id inexistente não é erro:
	// o statement executa afetando zero linhas.
	Delete(ctx context.Context, id uint) error
	// CountToday conta registros cuja visit_date é o dia corrente segundo o
	// relógio do storage (CURRENT_DATE), escopado pelo dono.
	CountToday(ctx context.Context, ownerUserID uint) (int64, error)
}
