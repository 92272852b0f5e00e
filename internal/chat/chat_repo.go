package chat

import (
	"context"

	"clarityflow/internal/shared/storage"
)

const transcriptKeyPrefix = "aiChatMessages"

func transcriptKey(userID string) string {
	if userID == "" {
		return transcriptKeyPrefix
	}
	return transcriptKeyPrefix + "_" + userID
}

// Repository menyimpan transcript per user sebagai satu blob. Save menulis
// ulang seluruh transcript: last write wins kalau ada dua reconciliation
// yang balapan (lihat catatan concurrency di service).
type Repository interface {
	Messages(ctx context.Context, userID string) ([]Message, error)
	Save(ctx context.Context, userID string, messages []Message) error
	Clear(ctx context.Context, userID string) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Messages(ctx context.Context, userID string) ([]Message, error) {
	var messages []Message
	if _, err := r.store.Get(ctx, transcriptKey(userID), &messages); err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []Message{}
	}
	return messages, nil
}

func (r *repository) Save(ctx context.Context, userID string, messages []Message) error {
	return r.store.Set(ctx, transcriptKey(userID), messages)
}

func (r *repository) Clear(ctx context.Context, userID string) error {
	return r.store.Remove(ctx, transcriptKey(userID))
}
