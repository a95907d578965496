package repository

import (
	"context"

	"goveggie/internal/domain/repository"
)

// StubTransactionManager runs the callback directly against the supplied
// repositories without opening a real transaction. It doubles as the
// RepositoryFactory handed to the callback, so tests can assert on the same
// mocks they injected.
type StubTransactionManager struct {
	Users         repository.UserRepository
	Favorites     repository.FavoriteRepository
	Notifications repository.NotificationRepository
	Restaurants   repository.RestaurantRepository

	// Err short-circuits Execute when set, simulating a failed transaction.
	Err error
}

func (s *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if s.Err != nil {
		return s.Err
	}

	return fn(s)
}

func (s *StubTransactionManager) NewUserRepository() repository.UserRepository {
	return s.Users
}

func (s *StubTransactionManager) NewFavoriteRepository() repository.FavoriteRepository {
	return s.Favorites
}

func (s *StubTransactionManager) NewNotificationRepository() repository.NotificationRepository {
	return s.Notifications
}

func (s *StubTransactionManager) NewRestaurantRepository() repository.RestaurantRepository {
	return s.Restaurants
}
