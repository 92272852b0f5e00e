package sale

import (
	"context"

	"clarityflow/internal/shared/storage"
)

type Repository interface {
	FindAllByCompany(ctx context.Context, companyID string) ([]Sale, error)
	FindByID(ctx context.Context, id string) (*Sale, error)
	Insert(ctx context.Context, s Sale) error
	Update(ctx context.Context, s Sale) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) all(ctx context.Context) ([]Sale, error) {
	var sales []Sale
	if _, err := r.store.Get(ctx, StorageKey, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Sale, error) {
	sales, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]Sale, 0)
	for _, s := range sales {
		if s.CompanyID == companyID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Sale, error) {
	sales, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range sales {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *repository) Insert(ctx context.Context, s Sale) error {
	sales, err := r.all(ctx)
	if err != nil {
		return err
	}
	sales = append(sales, s)
	return r.store.Set(ctx, StorageKey, sales)
}

func (r *repository) Update(ctx context.Context, s Sale) error {
	sales, err := r.all(ctx)
	if err != nil {
		return err
	}
	for i := range sales {
		if sales[i].ID == s.ID {
			sales[i] = s
			return r.store.Set(ctx, StorageKey, sales)
		}
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	sales, err := r.all(ctx)
	if err != nil {
		return err
	}
	filtered := make([]Sale, 0, len(sales))
	for _, s := range sales {
		if s.ID != id {
			filtered = append(filtered, s)
		}
	}
	return r.store.Set(ctx, StorageKey, filtered)
}
