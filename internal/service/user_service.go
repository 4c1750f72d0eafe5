package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/lab-booking-service/internal/auth"
	"github.com/spec-kit/lab-booking-service/internal/domain"
	"github.com/spec-kit/lab-booking-service/internal/events"
	"github.com/spec-kit/lab-booking-service/internal/repository"
	"github.com/spec-kit/lab-booking-service/internal/search"
)

// UserService exposes CRUD and paginated search over users.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher, bcryptCost int) *UserService {
	return &UserService{users: users, dispatcher: dispatcher, bcryptCost: bcryptCost}
}

// Register creates a user, generating the business identifier when absent and
// hashing the supplied password. Uniqueness is enforced by the store.
func (s *UserService) Register(ctx context.Context, user *domain.User, password string) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventUserRegistered,
		ResourceID: user.ID,
		Timestamp:  time.Now(),
		Payload:    events.UserRegisteredPayload{Username: user.Username, Role: user.Role},
	})
	return nil
}

// FindPage returns the windowed records and the unwindowed total.
func (s *UserService) FindPage(ctx context.Context, keyword, pageNum, pageSize string) ([]domain.PublicProfile, int64, error) {
	query := search.Build(keyword, pageNum, pageSize)
	users, total, err := s.users.FindPage(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return publicProfiles(users), total, nil
}

// FindList returns all matching records without windowing.
func (s *UserService) FindList(ctx context.Context, keyword string) ([]domain.PublicProfile, error) {
	users, err := s.users.FindList(ctx, search.BuildFilter(keyword))
	if err != nil {
		return nil, err
	}
	return publicProfiles(users), nil
}

// FindByID looks up a user by business identifier.
func (s *UserService) FindByID(ctx context.Context, id string) (domain.PublicProfile, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.PublicProfile{}, err
	}
	return user.Public(), nil
}

// UpdateOne full-replaces the record matched by business identifier and
// reports how many records were modified. A blank password keeps the stored
// credential; otherwise the new one is hashed in.
func (s *UserService) UpdateOne(ctx context.Context, id string, user *domain.User, password string) (int64, error) {
	if password != "" {
		hash, err := auth.HashPassword(password, s.bcryptCost)
		if err != nil {
			return 0, err
		}
		user.PasswordHash = hash
	} else {
		current, err := s.users.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return 0, nil
			}
			return 0, err
		}
		user.PasswordHash = current.PasswordHash
	}

	modified, err := s.users.UpdateOne(ctx, id, user)
	if err != nil {
		return 0, err
	}
	if modified > 0 {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventUserUpdated,
			ResourceID: id,
			Timestamp:  time.Now(),
		})
	}
	return modified, nil
}

// DeleteOne removes the record and returns its credential-free projection.
func (s *UserService) DeleteOne(ctx context.Context, id string) (domain.PublicProfile, error) {
	user, err := s.users.DeleteOne(ctx, id)
	if err != nil {
		return domain.PublicProfile{}, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventUserDeleted,
		ResourceID: id,
		Timestamp:  time.Now(),
	})
	return user.Public(), nil
}

func publicProfiles(users []domain.User) []domain.PublicProfile {
	profiles := make([]domain.PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Public())
	}
	return profiles
}
