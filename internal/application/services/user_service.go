package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"user-management-service/internal/application/command"
	"user-management-service/internal/application/interfaces"
	"user-management-service/internal/application/mapper"
	"user-management-service/internal/application/query"
	"user-management-service/internal/domain"
	"user-management-service/internal/domain/entities"
	"user-management-service/internal/domain/events"
	"user-management-service/internal/domain/repositories"
)

type UserService struct {
	userRepo        repositories.UserRepository
	idempotencyRepo repositories.IdempotencyRepository
	publisher       interfaces.EventPublisher
}

// NewUserService wires the service to its collaborators. idempotencyRepo and
// publisher may be nil, which disables idempotent replays and events.
func NewUserService(
	userRepo repositories.UserRepository,
	idempotencyRepo repositories.IdempotencyRepository,
	publisher interfaces.EventPublisher,
) interfaces.UserService {
	return &UserService{
		userRepo:        userRepo,
		idempotencyRepo: idempotencyRepo,
		publisher:       publisher,
	}
}

func (s *UserService) GetAllUsers(ctx context.Context) (*query.UserQueryListResult, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &query.UserQueryListResult{
		Result: mapper.NewUserResultsFromEntities(users),
	}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, err
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	// Check idempotency key
	if createCommand.IdempotencyKey != "" && s.idempotencyRepo != nil {
		existingRecord, err := s.idempotencyRepo.FindByKey(ctx, createCommand.IdempotencyKey)
		if err != nil {
			return nil, err
		}

		if existingRecord != nil {
			var result command.CreateUserCommandResult
			if err := json.Unmarshal([]byte(existingRecord.Response), &result); err != nil {
				return nil, err
			}
			return &result, nil
		}
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, createCommand.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domain.DuplicateEmailError{Email: createCommand.Email}
	}

	newUser := entities.NewUser(createCommand.Name, createCommand.Email)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	// A concurrent create can pass the check above; the storage unique index
	// rejects the loser with a DuplicateEmailError.
	createdUser, err := s.userRepo.Save(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	result := command.CreateUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}

	if createCommand.IdempotencyKey != "" && s.idempotencyRepo != nil {
		s.storeIdempotencyRecord(ctx, createCommand, &result)
	}

	s.publish(ctx, events.NewUserEvent(events.UserCreated, createdUser.ID, createdUser.Name, createdUser.Email))

	return &result, nil
}

// UpdateUser does not pre-check email uniqueness the way CreateUser does; a
// collision is still refused by the storage unique index.
func (s *UserService) UpdateUser(ctx context.Context, updateCommand *command.UpdateUserCommand) (*command.UpdateUserCommandResult, error) {
	user, err := s.userRepo.FindByID(ctx, updateCommand.ID)
	if err != nil || user == nil {
		return nil, err
	}

	if err := user.UpdateProfile(updateCommand.Name, updateCommand.Email); err != nil {
		return nil, err
	}
	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}

	updatedUser, err := s.userRepo.Save(ctx, validatedUser)
	if err != nil || updatedUser == nil {
		return nil, err
	}

	s.publish(ctx, events.NewUserEvent(events.UserUpdated, updatedUser.ID, updatedUser.Name, updatedUser.Email))

	return &command.UpdateUserCommandResult{
		Result: mapper.NewUserResultFromEntity(updatedUser),
	}, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) (bool, error) {
	exists, err := s.userRepo.ExistsByID(ctx, id)
	if err != nil || !exists {
		return false, err
	}

	if err := s.userRepo.DeleteByID(ctx, id); err != nil {
		return false, err
	}

	s.publish(ctx, events.NewUserEvent(events.UserDeleted, id, "", ""))
	return true, nil
}

func (s *UserService) GetUserCount(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}

func (s *UserService) storeIdempotencyRecord(ctx context.Context, createCommand *command.CreateUserCommand, result *command.CreateUserCommandResult) {
	requestJSON, _ := json.Marshal(createCommand)
	responseJSON, _ := json.Marshal(result)

	record := entities.NewIdempotencyRecord(createCommand.IdempotencyKey, string(requestJSON))
	record.SetResponse(string(responseJSON), http.StatusCreated)
	if _, err := s.idempotencyRepo.Create(ctx, record); err != nil {
		log.Printf("Failed to store idempotency record: %v", err)
	}
}

func (s *UserService) publish(ctx context.Context, event *events.UserEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("Failed to publish %s for user %d: %v", event.Type, event.User.ID, err)
	}
}

// IsClientError reports whether err was caused by the caller's input rather
// than by storage.
func IsClientError(err error) bool {
	return errors.Is(err, domain.ErrDuplicateEmail) || errors.Is(err, domain.ErrInvalidUser)
}
