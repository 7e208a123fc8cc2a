package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

type Topics struct {
	PermitChanged  string
	PermitExpiring string
	CompanyCreated string
}

type Producer struct {
	l      *slog.Logger
	w      *kafka.Writer
	topics Topics
}

func NewProducer(l *slog.Logger, brokers []string, topics Topics) *Producer {
	l = l.WithGroup("kafka")

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		BatchTimeout:           50 * time.Millisecond,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:      l,
		w:      w,
		topics: topics,
	}
}

func (p *Producer) PermitChanged(ctx context.Context, event entity.PermitEvent) {
	p.send(ctx, p.topics.PermitChanged, event.PermitID.String(), event)
}

func (p *Producer) PermitExpiring(ctx context.Context, event entity.PermitEvent) {
	p.send(ctx, p.topics.PermitExpiring, event.PermitID.String(), event)
}

func (p *Producer) CompanyCreated(ctx context.Context, event entity.CompanyCreatedEvent) {
	p.send(ctx, p.topics.CompanyCreated, event.CompanyID.String(), event)
}

func (p *Producer) send(ctx context.Context, topic, key string, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err), "topic", topic)
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
		Topic: topic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err), "topic", topic)
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// Nop drops every event. Used when no brokers are configured.
type Nop struct{}

func (Nop) PermitChanged(context.Context, entity.PermitEvent)          {}
func (Nop) PermitExpiring(context.Context, entity.PermitEvent)         {}
func (Nop) CompanyCreated(context.Context, entity.CompanyCreatedEvent) {}
