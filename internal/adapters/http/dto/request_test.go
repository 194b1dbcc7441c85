package dto_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/deal-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
)

func stringPtr(s string) *string { return &s }

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestDealRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.DealRequest
		wantField string
	}{
		{name: "title only passes", req: dto.DealRequest{Title: "Website"}},
		{
			name: "all fields pass",
			req: dto.DealRequest{
				Title: "Website", Company: "Acme", Value: decimalPtr("18000"),
				Priority: "HIGH", Stage: "PROPOSAL", DueDate: "2026-11-30",
			},
		},
		{name: "whitespace title fails", req: dto.DealRequest{Title: "  "}, wantField: "title"},
		{name: "negative value fails", req: dto.DealRequest{Title: "x", Value: decimalPtr("-0.01")}, wantField: "value"},
		{name: "lowercase priority fails", req: dto.DealRequest{Title: "x", Priority: "high"}, wantField: "priority"},
		{name: "unknown stage fails", req: dto.DealRequest{Title: "x", Stage: "CLOSED"}, wantField: "stage"},
		{name: "bad due date fails", req: dto.DealRequest{Title: "x", DueDate: "30/11/2026"}, wantField: "dueDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestDealRequest_DecodeValue(t *testing.T) {
	t.Parallel()

	for _, body := range []string{
		`{"title":"x","value":18000.5}`,
		`{"title":"x","value":"18000.5"}`,
	} {
		var req dto.DealRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", body, err)
		}
		if req.Value == nil || !req.Value.Equal(decimal.RequireFromString("18000.5")) {
			t.Errorf("Unmarshal(%s) Value = %v, want 18000.5", body, req.Value)
		}
	}
}

func TestDealRequest_ToDraft(t *testing.T) {
	t.Parallel()

	req := dto.DealRequest{
		ID:       "ext-7",
		Title:    "  App Mobile ",
		Priority: "LOW",
		Stage:    "NEGOTIATION",
		DueDate:  "2026-03-04",
	}

	d := req.ToDraft()

	if d.ID != "ext-7" || d.Title != "App Mobile" {
		t.Errorf("ID/Title = %q/%q, want ext-7/App Mobile", d.ID, d.Title)
	}
	if d.Priority != deal.PriorityLow || d.Stage != deal.StageNegotiation {
		t.Errorf("Priority/Stage = %s/%s, want LOW/NEGOTIATION", d.Priority, d.Stage)
	}
	if want := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC); d.DueDate == nil || !d.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", d.DueDate, want)
	}
	if d.Value != nil {
		t.Errorf("Value = %v, want nil so the default applies", d.Value)
	}
}

func TestUpdateDealRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateDealRequest
		wantField string
	}{
		{name: "empty request passes", req: dto.UpdateDealRequest{}},
		{name: "clearing due date passes", req: dto.UpdateDealRequest{DueDate: stringPtr("")}},
		{name: "empty title fails", req: dto.UpdateDealRequest{Title: stringPtr(" ")}, wantField: "title"},
		{name: "negative value fails", req: dto.UpdateDealRequest{Value: decimalPtr("-3")}, wantField: "value"},
		{name: "unknown priority fails", req: dto.UpdateDealRequest{Priority: stringPtr("URGENT")}, wantField: "priority"},
		{name: "unknown stage fails", req: dto.UpdateDealRequest{Stage: stringPtr("")}, wantField: "stage"},
		{name: "bad due date fails", req: dto.UpdateDealRequest{DueDate: stringPtr("tomorrow")}, wantField: "dueDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateDealRequest_ToPatch(t *testing.T) {
	t.Parallel()

	t.Run("maps set fields only", func(t *testing.T) {
		t.Parallel()
		req := dto.UpdateDealRequest{Title: stringPtr(" Renamed "), Stage: stringPtr("WON"), DueDate: stringPtr("2026-12-01")}
		p := req.ToPatch()

		if p.Title == nil || *p.Title != "Renamed" {
			t.Errorf("Title = %v, want Renamed", p.Title)
		}
		if p.Stage == nil || *p.Stage != deal.StageWon {
			t.Errorf("Stage = %v, want WON", p.Stage)
		}
		if p.DueDate == nil || p.ClearDueDate {
			t.Errorf("DueDate = %v ClearDueDate = %v, want set date", p.DueDate, p.ClearDueDate)
		}
		if p.Company != nil || p.Priority != nil || p.Value != nil {
			t.Errorf("unset fields leaked into patch: %+v", p)
		}
	})

	t.Run("empty due date clears", func(t *testing.T) {
		t.Parallel()
		p := (&dto.UpdateDealRequest{DueDate: stringPtr("")}).ToPatch()
		if !p.ClearDueDate || p.DueDate != nil {
			t.Errorf("ClearDueDate = %v DueDate = %v, want clear", p.ClearDueDate, p.DueDate)
		}
	})
}

func TestReorderRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "valid", body: `{"destinationStage":"WON","orderedIds":["a","b"]}`},
		{name: "empty array is allowed", body: `{"destinationStage":"LEAD","orderedIds":[]}`},
		{name: "missing ids", body: `{"destinationStage":"LEAD"}`, wantField: "orderedIds"},
		{name: "null ids", body: `{"destinationStage":"LEAD","orderedIds":null}`, wantField: "orderedIds"},
		{name: "missing stage", body: `{"orderedIds":[]}`, wantField: "destinationStage"},
		{name: "unknown stage", body: `{"destinationStage":"ARCHIVED","orderedIds":[]}`, wantField: "destinationStage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var req dto.ReorderRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			err := req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}

	t.Run("non-array ids fail to decode", func(t *testing.T) {
		t.Parallel()
		var req dto.ReorderRequest
		if err := json.Unmarshal([]byte(`{"destinationStage":"LEAD","orderedIds":"a,b"}`), &req); err == nil {
			t.Error("Unmarshal() = nil, want type error")
		}
	})
}

func TestReorderRequest_ToPort(t *testing.T) {
	t.Parallel()

	ids := []string{"c", "a", "b"}
	got := (&dto.ReorderRequest{DestinationStage: "PROPOSAL", OrderedIDs: &ids}).ToPort()

	if got.DestinationStage != deal.StageProposal {
		t.Errorf("DestinationStage = %s, want PROPOSAL", got.DestinationStage)
	}
	if len(got.OrderedIDs) != 3 || got.OrderedIDs[0] != "c" {
		t.Errorf("OrderedIDs = %v, want [c a b]", got.OrderedIDs)
	}
}

func TestBulkImportRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("missing deals", func(t *testing.T) {
		t.Parallel()
		requireValidationField(t, (&dto.BulkImportRequest{}).Validate(), "deals")
	})

	t.Run("indexes field errors", func(t *testing.T) {
		t.Parallel()
		deals := []dto.DealRequest{{Title: "ok"}, {Title: ""}, {Title: "x", Priority: "URGENT"}}
		err := (&dto.BulkImportRequest{Deals: &deals}).Validate()
		requireValidationField(t, err, "deals[1].title")
		requireValidationField(t, err, "deals[2].priority")
	})

	t.Run("valid batch converts in order", func(t *testing.T) {
		t.Parallel()
		deals := []dto.DealRequest{{Title: "one"}, {Title: "two"}}
		req := dto.BulkImportRequest{Deals: &deals}
		if err := req.Validate(); err != nil {
			t.Fatalf("Validate() = %v, want nil", err)
		}
		drafts := req.ToDrafts()
		if len(drafts) != 2 || drafts[0].Title != "one" || drafts[1].Title != "two" {
			t.Errorf("ToDrafts() = %+v", drafts)
		}
	})
}
