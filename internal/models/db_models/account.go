package db_models

type Role string

const (
	RoleTrainer Role = "trainer"
	RoleUser    Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleTrainer || r == RoleUser
}

// Account role is fixed at creation; there is no update path for it.
type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         Role `gorm:"type:varchar(16);index"`
	Bio          *string
	AvatarURL    *string

	Plans []Plan `gorm:"foreignKey:TrainerID"`
}
