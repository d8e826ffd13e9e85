package command

import "user-management-service/internal/application/common"

// UpdateUserCommand replaces both name and email; there are no partial updates.
type UpdateUserCommand struct {
	ID    uint   `json:"-"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
