package postgres

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate garante que as tabelas users e patients existam.
// Idempotente: seguro para chamar a cada start do processo. Em caso de
// falha, o estado parcial do DDL é mantido (sem rollback nem retry).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserModel{}, &PatientModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
