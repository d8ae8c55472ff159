package models

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User is a login account. PasswordHash holds a bcrypt hash and is never
// rendered to clients.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"-" bson:"-"`
	Username     string `gorm:"uniqueIndex;not null" json:"username" bson:"username"`
	PasswordHash string `gorm:"column:password;not null" json:"-" bson:"password"`
	Role         Role   `json:"role" bson:"role"`
	Email        string `json:"email,omitempty" bson:"email,omitempty"` // customers only
}
