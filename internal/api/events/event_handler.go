package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

type Service interface {
	SyncSecondaryActivities(ctx context.Context, companyID uuid.UUID) error
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

func (h *EventHandler) OnCompanyCreated(ctx context.Context, msg kafka.Message) error {
	var event entity.CompanyCreatedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.CompanyID.IsNil() {
		return nil
	}

	err = h.s.SyncSecondaryActivities(ctx, event.CompanyID)
	if err != nil {
		return fmt.Errorf("sync secondary activities: %w", err)
	}

	return nil
}
