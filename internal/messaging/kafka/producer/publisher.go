package producer

import (
	"context"
	"encoding/json"

	"clarityflow/internal/events"

	kafkago "github.com/segmentio/kafka-go"
)

type kafkaPublisher struct {
	writer *kafkago.Writer
}

func NewKafkaPublisher(writer *kafkago.Writer) events.Publisher {
	return &kafkaPublisher{writer: writer}
}

func NewWriter(brokers []string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:     kafkago.TCP(brokers...),
		Balancer: &kafkago.LeastBytes{},
	}
}

func (p *kafkaPublisher) PublishResourceEvent(ctx context.Context, event events.ResourceEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: events.ResourceLifecycleTopic,
		Key:   []byte(event.ResourceID),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "resource_type", Value: []byte(event.ResourceType)},
		},
	})
}
