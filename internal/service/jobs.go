package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/lifecycle"
)

// placeholder ReceitaWS returns when a company has no secondary activities
const noActivityCode = "00.00-0-00"

// NotifyExpiringPermits publishes an event for every issued permit that is
// expiring or already expired.
func (s *Service) NotifyExpiringPermits(ctx context.Context) error {
	now := s.now()
	y, m, d := now.Date()
	limit := time.Date(y, m, d+lifecycle.ExpiringWindowDays+1, 0, 0, 0, 0, now.Location())

	permits, err := s.repo.Permits(ctx, entity.PermitsFilter{ExpiresBefore: &limit})
	if err != nil {
		return fmt.Errorf("get expiring permits: %w", err)
	}

	var sent int

	for _, p := range lifecycle.RefreshAll(permits, now) {
		if p.Status != entity.PermitStatusExpiring && p.Status != entity.PermitStatusExpired {
			continue
		}

		s.events.PermitExpiring(ctx, permitEvent(entity.PermitEventExpiring, p, now))
		sent++
	}

	slog.InfoContext(ctx, "expiring permits notified", "count", sent)

	return nil
}

// PruneLoginAttempts drops attempts that fell out of the login window.
func (s *Service) PruneLoginAttempts(ctx context.Context) error {
	removed, err := s.repo.DeleteAttemptsBefore(ctx, s.now().Add(-s.login.Window))
	if err != nil {
		return fmt.Errorf("delete attempts: %w", err)
	}

	slog.DebugContext(ctx, "login attempts pruned", "count", removed)

	return nil
}

// SyncSecondaryActivities imports secondary activities for a company that has
// none yet. It only reads the cached registry entry left by the CNPJ lookup
// that seeded the company form, so it never spends a registry request.
func (s *Service) SyncSecondaryActivities(ctx context.Context, companyID uuid.UUID) error {
	company, err := s.repo.CompanyByID(ctx, companyID)
	if err != nil {
		return fmt.Errorf("get company %s: %w", companyID, err)
	}

	existing, err := s.repo.ActivitiesByCompany(ctx, companyID)
	if err != nil {
		return fmt.Errorf("get activities: %w", err)
	}

	if len(existing) > 0 {
		return nil
	}

	var reg entity.RegistryCompany

	ok, err := s.cache.Get(ctx, registryCachePrefix+company.CNPJ, &reg)
	if err != nil {
		return fmt.Errorf("get cached registry company: %w", err)
	}

	if !ok {
		slog.DebugContext(ctx, "registry company not cached, activities sync skipped", "company_id", companyID)
		return nil
	}

	now := s.now()
	activities := make([]entity.Activity, 0, len(reg.SecondaryActivities))

	for _, a := range reg.SecondaryActivities {
		if a.Code == "" || a.Code == noActivityCode {
			continue
		}

		activities = append(activities, entity.Activity{
			ID:          uuid.Must(uuid.NewV4()),
			CompanyID:   companyID,
			Code:        a.Code,
			Description: a.Text,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if len(activities) == 0 {
		return nil
	}

	err = s.repo.CreateActivities(ctx, activities...)
	if err != nil {
		return fmt.Errorf("create activities: %w", err)
	}

	slog.InfoContext(ctx, "secondary activities imported", "company_id", companyID, "count", len(activities))

	return nil
}
