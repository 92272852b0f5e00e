package task

import (
	"context"

	"clarityflow/internal/shared/storage"
)

// Repository membungkus storage.Store untuk koleksi task. Semua mutasi
// adalah read-modify-write koleksi penuh; tidak ada locking yang lebih
// halus dari itu (single-process, single-writer).
type Repository interface {
	FindAllByCompany(ctx context.Context, companyID string) ([]Task, error)
	FindByID(ctx context.Context, id string) (*Task, error)
	Insert(ctx context.Context, t Task) error
	Update(ctx context.Context, t Task) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) all(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if _, err := r.store.Get(ctx, StorageKey, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Task, error) {
	tasks, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]Task, 0)
	for _, t := range tasks {
		if t.CompanyID == companyID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Task, error) {
	tasks, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, nil
}

func (r *repository) Insert(ctx context.Context, t Task) error {
	tasks, err := r.all(ctx)
	if err != nil {
		return err
	}
	tasks = append(tasks, t)
	return r.store.Set(ctx, StorageKey, tasks)
}

func (r *repository) Update(ctx context.Context, t Task) error {
	tasks, err := r.all(ctx)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == t.ID {
			tasks[i] = t
			return r.store.Set(ctx, StorageKey, tasks)
		}
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tasks, err := r.all(ctx)
	if err != nil {
		return err
	}
	filtered := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	return r.store.Set(ctx, StorageKey, filtered)
}
