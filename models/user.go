package models

import (
	"time"
)

type Users struct {
	ID           int64     `gorm:"column:id;primary_key" json:"id"`
	Name         string    `gorm:"column:name;type:varchar(64);not null" json:"name"`
	Email        string    `gorm:"column:email;type:varchar(128);not null;uniqueIndex:uk_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(128);not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (u Users) TableName() string {
	return "users"
}
