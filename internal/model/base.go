package model

import (
	"time"
)

// GORM fills CreatedAt and UpdatedAt.
// CreatedBy, UpdatedBy hold the acting admin ID and are set explicitly by services.
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
	CreatedBy *int64    `gorm:"column:created_by"`
	UpdatedBy *int64    `gorm:"column:updated_by"`
}
