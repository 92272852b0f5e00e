package appointment

import (
	"context"

	"clarityflow/internal/shared/storage"
)

type Repository interface {
	FindAllByCompany(ctx context.Context, companyID string) ([]Appointment, error)
	FindByID(ctx context.Context, id string) (*Appointment, error)
	Insert(ctx context.Context, a Appointment) error
	Update(ctx context.Context, a Appointment) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) all(ctx context.Context) ([]Appointment, error) {
	var appointments []Appointment
	if _, err := r.store.Get(ctx, StorageKey, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Appointment, error) {
	appointments, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]Appointment, 0)
	for _, a := range appointments {
		if a.CompanyID == companyID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Appointment, error) {
	appointments, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range appointments {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *repository) Insert(ctx context.Context, a Appointment) error {
	appointments, err := r.all(ctx)
	if err != nil {
		return err
	}
	appointments = append(appointments, a)
	return r.store.Set(ctx, StorageKey, appointments)
}

func (r *repository) Update(ctx context.Context, a Appointment) error {
	appointments, err := r.all(ctx)
	if err != nil {
		return err
	}
	for i := range appointments {
		if appointments[i].ID == a.ID {
			appointments[i] = a
			return r.store.Set(ctx, StorageKey, appointments)
		}
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	appointments, err := r.all(ctx)
	if err != nil {
		return err
	}
	filtered := make([]Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	return r.store.Set(ctx, StorageKey, filtered)
}
