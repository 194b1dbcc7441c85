// Package deal holds the Deal entity, its closed enums, and the pure rules that
// operate on deals without touching storage: validation, field patches,
// filtering, board ordering, and pipeline summaries.
package deal

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
)

// DateLayout is the wire and storage format of a calendar date.
const DateLayout = "2006-01-02"

// Deal is a single pipeline opportunity.
type Deal struct {
	ID         string
	Title      string
	Company    string
	Contact    string
	Notes      string
	Value      decimal.Decimal
	Priority   Priority
	Stage      Stage
	OrderIndex int
	DueDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks business rules for the Deal entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (d *Deal) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(d.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if d.Value.IsNegative() {
		fields["value"] = fmt.Sprintf("must not be negative, got %s", d.Value)
	}
	if !d.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", d.Priority)
	}
	if !d.Stage.IsValid() {
		fields["stage"] = fmt.Sprintf("invalid: %q", d.Stage)
	}
	if d.OrderIndex < 0 {
		fields["orderIndex"] = fmt.Sprintf("must not be negative, got %d", d.OrderIndex)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Draft is the caller-supplied shape of a deal that does not exist yet.
// Zero values select the defaults applied by ToDeal.
type Draft struct {
	// ID is optional. When set it becomes the deal's id; the store rejects it
	// if already taken.
	ID       string
	Title    string
	Company  string
	Contact  string
	Notes    string
	Value    *decimal.Decimal
	Priority Priority
	Stage    Stage
	DueDate  *time.Time
}

// ToDeal converts the draft to a Deal with defaults applied: stage LEAD,
// priority MEDIUM, value 0. Position and timestamps are left for the store.
func (d *Draft) ToDeal() Deal {
	out := Deal{
		ID:       strings.TrimSpace(d.ID),
		Title:    d.Title,
		Company:  d.Company,
		Contact:  d.Contact,
		Notes:    d.Notes,
		Value:    decimal.Zero,
		Priority: PriorityMedium,
		Stage:    StageLead,
	}
	if d.Value != nil {
		out.Value = *d.Value
	}
	if d.Priority != "" {
		out.Priority = d.Priority
	}
	if d.Stage != "" {
		out.Stage = d.Stage
	}
	if d.DueDate != nil {
		due := NormalizeDate(*d.DueDate)
		out.DueDate = &due
	}
	return out
}

// NormalizeDate truncates t to its calendar date at UTC midnight.
func NormalizeDate(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a calendar date. Both "2006-01-02" and RFC 3339 timestamps
// are accepted; the time of day is discarded.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return NormalizeDate(t), nil
}
