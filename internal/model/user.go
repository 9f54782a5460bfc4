package model

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Username     string   `gorm:"size:25;uniqueIndex;not null" json:"username"`
	FirstName    string   `gorm:"size:25;not null" json:"firstName"`
	LastName     string   `gorm:"size:25;not null" json:"lastName"`
	Email        string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Birthday     string   `gorm:"type:date;not null" json:"birthday"`
	PasswordHash string   `gorm:"size:100;not null" json:"-"`
	Role         UserRole `gorm:"size:10;default:'user'" json:"role"`
}

func (User) TableName() string {
	return "users"
}
