package mapper

import (
	"user-management-service/internal/application/common"
	"user-management-service/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func NewUserResultsFromEntities(users []*entities.User) []*common.UserResult {
	results := make([]*common.UserResult, 0, len(users))
	for _, u := range users {
		results = append(results, NewUserResultFromEntity(u))
	}
	return results
}
