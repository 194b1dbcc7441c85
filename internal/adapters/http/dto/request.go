package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
	"github.com/jsamuelsen11/deal-pipeline/internal/ports"
)

// DealRequest represents the JSON body for creating a deal and each entry of
// a bulk import. Value accepts a JSON number or a numeric string.
type DealRequest struct {
	ID       string           `json:"id,omitempty"`
	Title    string           `json:"title"`
	Company  string           `json:"company,omitempty"`
	Contact  string           `json:"contact,omitempty"`
	Notes    string           `json:"notes,omitempty"`
	Value    *decimal.Decimal `json:"value,omitempty"`
	Priority string           `json:"priority,omitempty"`
	Stage    string           `json:"stage,omitempty"`
	DueDate  string           `json:"dueDate,omitempty"`
}

// Validate checks required fields and enum values.
// Returns a *domain.ValidationError if any checks fail.
func (r *DealRequest) Validate() error {
	fields := make(map[string]string)
	r.validate("", fields)
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (r *DealRequest) validate(prefix string, fields map[string]string) {
	if strings.TrimSpace(r.Title) == "" {
		fields[prefix+"title"] = domain.MsgRequired
	}
	if r.Value != nil && r.Value.IsNegative() {
		fields[prefix+"value"] = fmt.Sprintf("must not be negative, got %s", r.Value)
	}
	if r.Priority != "" && !deal.Priority(r.Priority).IsValid() {
		fields[prefix+"priority"] = fmt.Sprintf("invalid: %q", r.Priority)
	}
	if r.Stage != "" && !deal.Stage(r.Stage).IsValid() {
		fields[prefix+"stage"] = fmt.Sprintf("invalid: %q", r.Stage)
	}
	if r.DueDate != "" {
		if _, err := deal.ParseDate(r.DueDate); err != nil {
			fields[prefix+"dueDate"] = fmt.Sprintf("not a date: %q", r.DueDate)
		}
	}
}

// ToDraft converts a validated request to a domain draft.
func (r *DealRequest) ToDraft() deal.Draft {
	d := deal.Draft{
		ID:       r.ID,
		Title:    strings.TrimSpace(r.Title),
		Company:  r.Company,
		Contact:  r.Contact,
		Notes:    r.Notes,
		Value:    r.Value,
		Priority: deal.Priority(r.Priority),
		Stage:    deal.Stage(r.Stage),
	}
	if r.DueDate != "" {
		if due, err := deal.ParseDate(r.DueDate); err == nil {
			d.DueDate = &due
		}
	}
	return d
}

// UpdateDealRequest represents the JSON body for updating an existing deal.
// All fields are optional; nil means "do not change this field". An empty
// dueDate string removes the due date.
type UpdateDealRequest struct {
	Title    *string          `json:"title,omitempty"`
	Company  *string          `json:"company,omitempty"`
	Contact  *string          `json:"contact,omitempty"`
	Notes    *string          `json:"notes,omitempty"`
	Value    *decimal.Decimal `json:"value,omitempty"`
	Priority *string          `json:"priority,omitempty"`
	Stage    *string          `json:"stage,omitempty"`
	DueDate  *string          `json:"dueDate,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateDealRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = domain.MsgMustNotEmpty
	}
	if r.Value != nil && r.Value.IsNegative() {
		fields["value"] = fmt.Sprintf("must not be negative, got %s", r.Value)
	}
	if r.Priority != nil && !deal.Priority(*r.Priority).IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", *r.Priority)
	}
	if r.Stage != nil && !deal.Stage(*r.Stage).IsValid() {
		fields["stage"] = fmt.Sprintf("invalid: %q", *r.Stage)
	}
	if r.DueDate != nil && *r.DueDate != "" {
		if _, err := deal.ParseDate(*r.DueDate); err != nil {
			fields["dueDate"] = fmt.Sprintf("not a date: %q", *r.DueDate)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts a validated request to a domain patch.
func (r *UpdateDealRequest) ToPatch() *deal.Patch {
	p := &deal.Patch{
		Company: r.Company,
		Contact: r.Contact,
		Notes:   r.Notes,
		Value:   r.Value,
	}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		p.Title = &title
	}
	if r.Priority != nil {
		pr := deal.Priority(*r.Priority)
		p.Priority = &pr
	}
	if r.Stage != nil {
		st := deal.Stage(*r.Stage)
		p.Stage = &st
	}
	if r.DueDate != nil {
		if *r.DueDate == "" {
			p.ClearDueDate = true
		} else if due, err := deal.ParseDate(*r.DueDate); err == nil {
			p.DueDate = &due
		}
	}
	return p
}

// ReorderRequest represents the JSON body of a drag-and-drop move: the full
// ordered content of the destination stage.
type ReorderRequest struct {
	DestinationStage string `json:"destinationStage"`
	// OrderedIDs is a pointer so a missing array can be told apart from an
	// empty one.
	OrderedIDs *[]string `json:"orderedIds"`
}

// Validate checks that the destination is a known stage and the id list is
// present. Returns a *domain.ValidationError if any checks fail.
func (r *ReorderRequest) Validate() error {
	fields := make(map[string]string)

	switch {
	case r.DestinationStage == "":
		fields["destinationStage"] = domain.MsgRequired
	case !deal.Stage(r.DestinationStage).IsValid():
		fields["destinationStage"] = fmt.Sprintf("invalid: %q", r.DestinationStage)
	}
	if r.OrderedIDs == nil {
		fields["orderedIds"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPort converts a validated request to the service port shape.
func (r *ReorderRequest) ToPort() ports.ReorderRequest {
	req := ports.ReorderRequest{DestinationStage: deal.Stage(r.DestinationStage)}
	if r.OrderedIDs != nil {
		req.OrderedIDs = *r.OrderedIDs
	}
	return req
}

// BulkImportRequest represents the JSON body of a bulk import.
type BulkImportRequest struct {
	Deals *[]DealRequest `json:"deals"`
}

// Validate checks every draft. Field keys carry the entry index, e.g.
// "deals[2].title". Returns a *domain.ValidationError if any checks fail.
func (r *BulkImportRequest) Validate() error {
	if r.Deals == nil {
		return domain.NewValidationError("deals", domain.MsgRequired)
	}

	fields := make(map[string]string)
	for i := range *r.Deals {
		(*r.Deals)[i].validate(fmt.Sprintf("deals[%d].", i), fields)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDrafts converts a validated request to domain drafts.
func (r *BulkImportRequest) ToDrafts() []deal.Draft {
	if r.Deals == nil {
		return nil
	}
	drafts := make([]deal.Draft, len(*r.Deals))
	for i := range *r.Deals {
		drafts[i] = (*r.Deals)[i].ToDraft()
	}
	return drafts
}
