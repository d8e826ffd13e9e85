package command

import "user-management-service/internal/application/common"

type CreateUserCommand struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

type CreateUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
