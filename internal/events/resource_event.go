package events

import (
	"context"
	"time"
)

const ResourceLifecycleTopic = "biz.resource.lifecycle.v1"

const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// ResourceEvent diterbitkan setelah mutasi resource berhasil, supaya
// observer eksternal (dashboard, audit) bisa membaca ulang koleksi.
type ResourceEvent struct {
	EventType    string    `json:"event_type"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id"`
	CompanyID    string    `json:"company_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func NewResourceEvent(eventType, resourceType, resourceID, companyID string) ResourceEvent {
	return ResourceEvent{
		EventType:    eventType,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		CompanyID:    companyID,
		OccurredAt:   time.Now(),
	}
}

type Publisher interface {
	PublishResourceEvent(ctx context.Context, event ResourceEvent) error
}

type NopPublisher struct{}

func (NopPublisher) PublishResourceEvent(context.Context, ResourceEvent) error {
	return nil
}
