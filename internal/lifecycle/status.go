// Package lifecycle derives permit status from dates and drives the
// opening and renewal workflow of a permit.
package lifecycle

import (
	"fmt"
	"math"
	"time"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

// ExpiringWindowDays is how many days ahead a permit is flagged as expiring.
const ExpiringWindowDays = 30

// day returns the calendar date of t as midnight in loc.
// The date is read in t's own location so that dates stored at UTC midnight
// keep their calendar day.
func day(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func today(now time.Time) time.Time {
	return day(now, now.Location())
}

// CalculateStatus evaluates, in order: no issue date, no expiration date,
// already expired, expiring within the window, valid.
func CalculateStatus(issueDate, expirationDate *time.Time, now time.Time) entity.PermitStatus {
	if issueDate == nil {
		return entity.PermitStatusPending
	}

	if expirationDate == nil {
		return entity.PermitStatusValid
	}

	t := today(now)
	exp := day(*expirationDate, now.Location())

	if exp.Before(t) {
		return entity.PermitStatusExpired
	}

	if !exp.After(t.AddDate(0, 0, ExpiringWindowDays)) {
		return entity.PermitStatusExpiring
	}

	return entity.PermitStatusValid
}

func StatusOf(p entity.Permit, now time.Time) entity.PermitStatus {
	return CalculateStatus(p.IssueDate, p.ExpirationDate, now)
}

// Refresh overwrites the derived status, discarding whatever was there.
func Refresh(p entity.Permit, now time.Time) entity.Permit {
	p.Status = StatusOf(p, now)
	return p
}

func RefreshAll(permits []entity.Permit, now time.Time) []entity.Permit {
	for i := range permits {
		permits[i] = Refresh(permits[i], now)
	}

	return permits
}

// DaysUntilExpiration is the calendar-day difference between the expiration
// date and now. Nil when there is no expiration date.
func DaysUntilExpiration(expirationDate *time.Time, now time.Time) *int {
	if expirationDate == nil {
		return nil
	}

	diff := day(*expirationDate, now.Location()).Sub(today(now)).Hours() / 24
	days := int(math.Round(diff))

	return &days
}

func ExpirationText(days *int) string {
	switch {
	case days == nil:
		return ""
	case *days < 0:
		return fmt.Sprintf("%d dias vencido", -*days)
	case *days == 0:
		return "Vence hoje"
	default:
		return fmt.Sprintf("%d dias", *days)
	}
}

func StatusLabel(status entity.PermitStatus) string {
	switch status {
	case entity.PermitStatusPending:
		return "Pendente"
	case entity.PermitStatusValid:
		return "Válido"
	case entity.PermitStatusExpiring:
		return "Vencendo"
	case entity.PermitStatusExpired:
		return "Vencido"
	default:
		return string(status)
	}
}
