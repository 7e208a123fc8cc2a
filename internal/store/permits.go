package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/lifecycle"
)

// Tab splits the permit page into permits still being opened and issued ones.
type Tab uint8

const (
	TabAll Tab = iota
	TabOpening
	TabOperating
)

type Permits struct {
	gw  PermitGateway
	now clock

	mu      sync.RWMutex
	permits []entity.Permit
}

func NewPermits(gw PermitGateway, now func() time.Time) *Permits {
	if now == nil {
		now = time.Now
	}

	return &Permits{gw: gw, now: now}
}

func (s *Permits) Load(ctx context.Context) ([]entity.Permit, error) {
	permits, err := s.gw.List(ctx, entity.PermitsFilter{})
	if err != nil {
		return nil, err
	}

	permits = lifecycle.RefreshAll(permits, s.now())

	s.mu.Lock()
	s.permits = slices.Clone(permits)
	s.mu.Unlock()

	return permits, nil
}

// LoadByCompany replaces the cached permits of one company.
func (s *Permits) LoadByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Permit, error) {
	permits, err := s.gw.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	permits = lifecycle.RefreshAll(permits, s.now())

	s.mu.Lock()
	s.permits = slices.DeleteFunc(s.permits, func(p entity.Permit) bool { return p.CompanyID == companyID })
	s.permits = append(s.permits, permits...)
	s.mu.Unlock()

	return permits, nil
}

func (s *Permits) Add(ctx context.Context, in entity.PermitInput) (entity.Permit, error) {
	permit, err := s.gw.Create(ctx, in)
	if err != nil {
		return entity.Permit{}, err
	}

	permit = lifecycle.Refresh(permit, s.now())

	s.mu.Lock()
	s.permits = append([]entity.Permit{permit}, s.permits...)
	s.mu.Unlock()

	return permit, nil
}

func (s *Permits) Update(ctx context.Context, id uuid.UUID, in entity.PermitInput) (entity.Permit, error) {
	permit, err := s.gw.Update(ctx, id, in)
	if err != nil {
		return entity.Permit{}, err
	}

	permit = lifecycle.Refresh(permit, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.permits, func(p entity.Permit) bool { return p.ID == id })
	if i < 0 {
		s.permits = append([]entity.Permit{permit}, s.permits...)
	} else {
		s.permits[i] = permit
	}

	return permit, nil
}

func (s *Permits) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.gw.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.permits = slices.DeleteFunc(s.permits, func(p entity.Permit) bool { return p.ID == id })
	s.mu.Unlock()

	return nil
}

// All returns a copy with statuses recomputed for the current day.
func (s *Permits) All() []entity.Permit {
	s.mu.RLock()
	permits := slices.Clone(s.permits)
	s.mu.RUnlock()

	return lifecycle.RefreshAll(permits, s.now())
}

func (s *Permits) ByID(id uuid.UUID) (entity.Permit, bool) {
	for _, p := range s.All() {
		if p.ID == id {
			return p, true
		}
	}

	return entity.Permit{}, false
}

func (s *Permits) Stats() entity.PermitStats {
	return stats(s.All())
}

func stats(permits []entity.Permit) entity.PermitStats {
	var st entity.PermitStats

	for _, p := range permits {
		st.Add(p.Status)
	}

	return st
}

func (t Tab) includes(p entity.Permit) bool {
	switch t {
	case TabOpening:
		return p.IssueDate == nil
	case TabOperating:
		return p.IssueDate != nil
	default:
		return true
	}
}

// Tab returns the permits of one tab with that tab's stats.
func (s *Permits) Tab(tab Tab) ([]entity.Permit, entity.PermitStats) {
	permits := slices.DeleteFunc(s.All(), func(p entity.Permit) bool { return !tab.includes(p) })
	return permits, stats(permits)
}

func (s *Permits) Opening() ([]entity.Permit, entity.PermitStats) {
	return s.Tab(TabOpening)
}

func (s *Permits) Operating() ([]entity.Permit, entity.PermitStats) {
	return s.Tab(TabOperating)
}

// Filter matches search against company name, CNPJ and permit type. An empty
// status keeps every status.
func (s *Permits) Filter(tab Tab, search string, status entity.PermitStatus) []entity.Permit {
	q := fold(strings.TrimSpace(search))
	d := digits(search)

	return slices.DeleteFunc(s.All(), func(p entity.Permit) bool {
		if !tab.includes(p) {
			return true
		}

		if status != "" && p.Status != status {
			return true
		}

		if q == "" {
			return false
		}

		matched := containsFold(p.CompanyName, q) ||
			containsFold(string(p.Type), q) ||
			(d != "" && containsDigits(p.CompanyCNPJ, d))

		return !matched
	})
}

type Upcoming struct {
	Permit         entity.Permit
	DaysLeft       *int
	ExpirationText string
}

// Upcoming lists issued permits that are expiring or already expired,
// soonest first.
func (s *Permits) Upcoming(limit int) []Upcoming {
	now := s.now()

	permits := slices.DeleteFunc(s.All(), func(p entity.Permit) bool {
		return p.ExpirationDate == nil ||
			(p.Status != entity.PermitStatusExpiring && p.Status != entity.PermitStatusExpired)
	})

	slices.SortStableFunc(permits, func(a, b entity.Permit) int {
		return cmp.Compare(a.ExpirationDate.Unix(), b.ExpirationDate.Unix())
	})

	if limit > 0 && len(permits) > limit {
		permits = permits[:limit]
	}

	out := make([]Upcoming, 0, len(permits))

	for _, p := range permits {
		days := lifecycle.DaysUntilExpiration(p.ExpirationDate, now)
		out = append(out, Upcoming{
			Permit:         p,
			DaysLeft:       days,
			ExpirationText: lifecycle.ExpirationText(days),
		})
	}

	return out
}

func containsFold(s, foldedQuery string) bool {
	return strings.Contains(fold(s), foldedQuery)
}

func containsDigits(s, d string) bool {
	return strings.Contains(digits(s), d)
}
