package domain

import (
	"time"
)

type User struct {
	UserID    uint      `gorm:"column:user_id;primaryKey"`
	FullName  string    `gorm:"column:full_name"`
	Email     string    `gorm:"column:email;unique"`
	Role      string    `gorm:"column:role;default:player"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
