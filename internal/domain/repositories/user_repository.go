package repositories

import (
	"context"

	"user-management-service/internal/domain/entities"
)

// UserRepository is the storage port for users. Lookups return nil, nil when
// the record does not exist. FindAll gives no ordering guarantee.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*entities.User, error)
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Save inserts the user when its ID is unassigned and updates it otherwise.
	// Updating a row that no longer exists returns nil, nil.
	// A unique-constraint violation on email is reported as domain.ErrDuplicateEmail.
	Save(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	DeleteByID(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type IdempotencyRepository interface {
	FindByKey(ctx context.Context, key string) (*entities.IdempotencyRecord, error)
	Create(ctx context.Context, record *entities.IdempotencyRecord) (*entities.IdempotencyRecord, error)
}
