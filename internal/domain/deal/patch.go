package deal

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patch is a partial field update. Nil pointers leave the field unchanged.
// Id, createdAt and orderIndex are not patchable; positions only change
// through the ordering engine.
type Patch struct {
	Title    *string
	Company  *string
	Contact  *string
	Notes    *string
	Value    *decimal.Decimal
	Priority *Priority
	Stage    *Stage
	DueDate  *time.Time
	// ClearDueDate removes the due date. Ignored when DueDate is set.
	ClearDueDate bool
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.Title == nil && p.Company == nil && p.Contact == nil && p.Notes == nil &&
		p.Value == nil && p.Priority == nil && p.Stage == nil && p.DueDate == nil && !p.ClearDueDate
}

// MovesStage reports whether applying the patch to d changes its stage.
func (p *Patch) MovesStage(d *Deal) bool {
	return p.Stage != nil && *p.Stage != d.Stage
}

// Apply writes the patch's non-nil fields onto d. Stage is applied as well;
// callers that need positional bookkeeping check MovesStage first.
func (p *Patch) Apply(d *Deal) {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Company != nil {
		d.Company = *p.Company
	}
	if p.Contact != nil {
		d.Contact = *p.Contact
	}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}
	if p.Value != nil {
		d.Value = *p.Value
	}
	if p.Priority != nil {
		d.Priority = *p.Priority
	}
	if p.Stage != nil {
		d.Stage = *p.Stage
	}
	switch {
	case p.DueDate != nil:
		due := NormalizeDate(*p.DueDate)
		d.DueDate = &due
	case p.ClearDueDate:
		d.DueDate = nil
	}
}
