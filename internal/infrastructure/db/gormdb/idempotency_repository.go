package gormdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"user-management-service/internal/domain/entities"
	"user-management-service/internal/domain/repositories"
)

type IdempotencyRepository struct {
	db *gorm.DB
}

func NewIdempotencyRepository(db *gorm.DB) repositories.IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

func (r *IdempotencyRepository) FindByKey(ctx context.Context, key string) (*entities.IdempotencyRecord, error) {
	var model IdempotencyModel
	if err := r.db.WithContext(ctx).Where("idempotency_key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find idempotency record: %w", err)
	}

	return &entities.IdempotencyRecord{
		ID:         model.ID,
		Key:        model.Key,
		Request:    model.Request,
		Response:   model.Response,
		StatusCode: model.StatusCode,
		CreatedAt:  model.CreatedAt,
	}, nil
}

func (r *IdempotencyRepository) Create(ctx context.Context, record *entities.IdempotencyRecord) (*entities.IdempotencyRecord, error) {
	model := IdempotencyModel{
		ID:         record.ID,
		Key:        record.Key,
		Request:    record.Request,
		Response:   record.Response,
		StatusCode: record.StatusCode,
		CreatedAt:  record.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, fmt.Errorf("create idempotency record: %w", err)
	}
	return record, nil
}
