package company

import (
	"context"

	"clarityflow/internal/shared/storage"
)

type Repository interface {
	FindAll(ctx context.Context) ([]Company, error)
	FindByID(ctx context.Context, id string) (*Company, error)
	Insert(ctx context.Context, c Company) error
	Update(ctx context.Context, c Company) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	var companies []Company
	if _, err := r.store.Get(ctx, StorageKey, &companies); err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []Company{}
	}
	return companies, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Company, error) {
	companies, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range companies {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *repository) Insert(ctx context.Context, c Company) error {
	companies, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	companies = append(companies, c)
	return r.store.Set(ctx, StorageKey, companies)
}

func (r *repository) Update(ctx context.Context, c Company) error {
	companies, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	for i := range companies {
		if companies[i].ID == c.ID {
			companies[i] = c
			return r.store.Set(ctx, StorageKey, companies)
		}
	}
	return nil
}
