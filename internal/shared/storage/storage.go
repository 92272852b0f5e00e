package storage

import "context"

// Store adalah kontrak key/value yang dipakai semua repo: nilai disimpan
// sebagai JSON di bawah key opaque per resource-type (dan per-user untuk
// transcript chat). Get menulis hasil decode ke dest dan mengembalikan false
// kalau key tidak ada.
type Store interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
}

// Initialize menulis defaultValue hanya kalau key belum ada. Dipakai untuk
// seed data saat boot pertama.
func Initialize(ctx context.Context, s Store, key string, defaultValue any) error {
	var probe any
	found, err := s.Get(ctx, key, &probe)
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	return s.Set(ctx, key, defaultValue)
}
