package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/alvaras/internal/api/events"
)

type syncRecorder struct {
	ids []uuid.UUID
	err error
}

func (s *syncRecorder) SyncSecondaryActivities(_ context.Context, companyID uuid.UUID) error {
	s.ids = append(s.ids, companyID)
	return s.err
}

func TestEventHandler_OnCompanyCreated(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())
	syncErr := errors.New("registry down")

	tests := []struct {
		name    string
		value   string
		syncErr error
		wantIDs int
		wantErr bool
	}{
		{name: "syncs company", value: `{"company_id":"` + id.String() + `","cnpj":"11222333000181"}`, wantIDs: 1},
		{name: "bad payload", value: `{`, wantErr: true},
		{name: "empty id ignored", value: `{"cnpj":"11222333000181"}`},
		{name: "sync error", value: `{"company_id":"` + id.String() + `"}`, syncErr: syncErr, wantIDs: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			rec := &syncRecorder{err: tt.syncErr}
			h := events.NewEventHandler(rec)

			err := h.OnCompanyCreated(context.Background(), kafka.Message{Value: []byte(tt.value)})
			if tt.wantErr {
				r.Error(err)
			} else {
				r.NoError(err)
			}

			r.Len(rec.ids, tt.wantIDs)
		})
	}
}
