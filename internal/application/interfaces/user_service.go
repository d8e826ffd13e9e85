package interfaces

import (
	"context"

	"user-management-service/internal/application/command"
	"user-management-service/internal/application/query"
)

// UserService is the application boundary used by the delivery layer.
// Lookups, updates and deletes report a missing user with a nil result
// (or false), never with an error.
type UserService interface {
	GetAllUsers(ctx context.Context) (*query.UserQueryListResult, error)
	GetUserByID(ctx context.Context, id uint) (*query.UserQueryResult, error)
	GetUserByEmail(ctx context.Context, email string) (*query.UserQueryResult, error)
	CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error)
	UpdateUser(ctx context.Context, updateCommand *command.UpdateUserCommand) (*command.UpdateUserCommandResult, error)
	DeleteUser(ctx context.Context, id uint) (bool, error)
	GetUserCount(ctx context.Context) (int64, error)
}
