package model

import (
	"time"
)

// UserModel represents the users table. The email doubles as the username for
// basic auth; the password column always holds a bcrypt hash, never plaintext.
type UserModel struct {
	ID        uint      `gorm:"column:user_id;primaryKey" json:"id"`
	Email     string    `gorm:"column:user_email;size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:user_password;size:255;not null" json:"-"`
	Role      string    `gorm:"column:user_role;type:varchar(20);not null;default:'user'" json:"-"`
	CreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}
