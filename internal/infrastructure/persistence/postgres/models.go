package postgres

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    int64  `gorm:"autoCreateTime;index"`
}

func (UserModel) TableName() string {
	return "users"
}

// PatientModel é o model GORM para prontuários.
// VisitDate é armazenado como texto de data (YYYY-MM-DD) em coluna date,
// permitindo a comparação com CURRENT_DATE no lado do storage.
type PatientModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	UserID      uint   `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(100);not null"`
	Age         int    `gorm:"not null"`
	Gender      string `gorm:"type:varchar(10)"`
	Phone       string `gorm:"type:varchar(15)"`
	Symptoms    string `gorm:"type:text"`
	Diagnosis   string `gorm:"type:varchar(200)"`
	Treatment   string `gorm:"type:text"`
	VisitDate   string `gorm:"type:date;not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime"`

	// Cascade delete: remover o usuário remove seus prontuários
	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (PatientModel) TableName() string {
	return "patients"
}
