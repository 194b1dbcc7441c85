package deal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
)

// Filter holds optional filter criteria for listing deals.
// Nil/empty fields mean "no filter" for that dimension; all set criteria
// must match.
type Filter struct {
	Stage    *Stage
	Priority *Priority
	// Q is a free-text needle matched case-insensitively as a substring of
	// title, company, contact, or notes. It is used verbatim, surrounding
	// spaces included; only the empty string disables it.
	Q string
}

// Validate rejects unknown enum values.
func (f *Filter) Validate() error {
	fields := make(map[string]string)
	if f.Stage != nil && !f.Stage.IsValid() {
		fields["stage"] = fmt.Sprintf("invalid: %q", *f.Stage)
	}
	if f.Priority != nil && !f.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", *f.Priority)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Matches reports whether d satisfies every criterion of the filter.
func (f *Filter) Matches(d *Deal) bool {
	if f.Stage != nil && d.Stage != *f.Stage {
		return false
	}
	if f.Priority != nil && d.Priority != *f.Priority {
		return false
	}
	return f.matchesText(d)
}

func (f *Filter) matchesText(d *Deal) bool {
	if f.Q == "" {
		return true
	}
	needle := strings.ToLower(f.Q)
	for _, field := range []string{d.Title, d.Company, d.Contact, d.Notes} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Apply returns the deals matching the filter in board order. The input slice
// is not modified.
func (f *Filter) Apply(deals []Deal) []Deal {
	out := make([]Deal, 0, len(deals))
	for i := range deals {
		if f.Matches(&deals[i]) {
			out = append(out, deals[i])
		}
	}
	SortBoard(out)
	return out
}

// BoardLess orders deals by stage rank, then orderIndex, then createdAt.
func BoardLess(a, b *Deal) bool {
	if ra, rb := a.Stage.Rank(), b.Stage.Rank(); ra != rb {
		return ra < rb
	}
	if a.OrderIndex != b.OrderIndex {
		return a.OrderIndex < b.OrderIndex
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

// SortBoard sorts deals in place into board order.
func SortBoard(deals []Deal) {
	sort.SliceStable(deals, func(i, j int) bool {
		return BoardLess(&deals[i], &deals[j])
	})
}
