package user

import (
	"context"

	"clarityflow/internal/domain"
	"clarityflow/internal/shared/storage"
)

const StorageKey = "clarityflow-users"

type Repository interface {
	FindAllByCompany(ctx context.Context, companyID string) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Insert(ctx context.Context, u domain.User) error
	Update(ctx context.Context, u domain.User) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) all(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if _, err := r.store.Get(ctx, StorageKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]domain.User, error) {
	users, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.User, 0)
	for _, u := range users {
		if u.CompanyID == companyID {
			result = append(result, u)
		}
	}
	return result, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *repository) Insert(ctx context.Context, u domain.User) error {
	users, err := r.all(ctx)
	if err != nil {
		return err
	}
	users = append(users, u)
	return r.store.Set(ctx, StorageKey, users)
}

func (r *repository) Update(ctx context.Context, u domain.User) error {
	users, err := r.all(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == u.ID {
			users[i] = u
			return r.store.Set(ctx, StorageKey, users)
		}
	}
	return nil
}
