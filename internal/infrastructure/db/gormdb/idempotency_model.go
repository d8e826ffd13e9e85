package gormdb

import (
	"time"

	"github.com/google/uuid"
)

type IdempotencyModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key        string    `gorm:"column:idempotency_key;size:255;uniqueIndex;not null"`
	Request    string
	Response   string
	StatusCode int
	CreatedAt  time.Time
}

func (IdempotencyModel) TableName() string {
	return "idempotency_records"
}
