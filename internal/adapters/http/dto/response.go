// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
	"github.com/jsamuelsen11/deal-pipeline/internal/ports"
)

// DealResponse represents a single deal in HTTP responses.
type DealResponse struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Company    string      `json:"company"`
	Contact    string      `json:"contact"`
	Notes      string      `json:"notes"`
	Value      json.Number `json:"value"`
	Priority   string      `json:"priority"`
	Stage      string      `json:"stage"`
	OrderIndex int         `json:"orderIndex"`
	DueDate    *string     `json:"dueDate"`
	CreatedAt  string      `json:"createdAt"`
	UpdatedAt  string      `json:"updatedAt"`
}

// ToDealResponse converts a domain Deal entity to an HTTP response DTO.
func ToDealResponse(d *deal.Deal) DealResponse {
	resp := DealResponse{
		ID:         d.ID,
		Title:      d.Title,
		Company:    d.Company,
		Contact:    d.Contact,
		Notes:      d.Notes,
		Value:      number(d.Value),
		Priority:   string(d.Priority),
		Stage:      string(d.Stage),
		OrderIndex: d.OrderIndex,
		CreatedAt:  d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if d.DueDate != nil {
		due := d.DueDate.Format(deal.DateLayout)
		resp.DueDate = &due
	}
	return resp
}

// ToDealListResponse converts deals to the bare JSON array the board reads.
func ToDealListResponse(deals []deal.Deal) []DealResponse {
	items := make([]DealResponse, len(deals))
	for i := range deals {
		items[i] = ToDealResponse(&deals[i])
	}
	return items
}

// OKResponse is the acknowledgement body of writes that return no entity.
type OKResponse struct {
	OK bool `json:"ok"`
}

// BulkImportResponse represents the result of a bulk import.
type BulkImportResponse struct {
	Count   int               `json:"count"`
	Skipped []SkippedResponse `json:"skipped"`
}

// SkippedResponse describes an import entry dropped as a duplicate.
type SkippedResponse struct {
	Index  int    `json:"index"`
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// ToBulkImportResponse converts a ports.ImportResult to an HTTP response DTO.
func ToBulkImportResponse(result *ports.ImportResult) BulkImportResponse {
	skipped := make([]SkippedResponse, len(result.Skipped))
	for i, s := range result.Skipped {
		skipped[i] = SkippedResponse{Index: s.Index, ID: s.ID, Reason: s.Reason}
	}
	return BulkImportResponse{
		Count:   len(result.Imported),
		Skipped: skipped,
	}
}

// StageTotalResponse is one stage's share of the pipeline.
type StageTotalResponse struct {
	Stage string      `json:"stage"`
	Count int         `json:"count"`
	Value json.Number `json:"value"`
}

// SummaryResponse represents the pipeline overview.
type SummaryResponse struct {
	Stages    []StageTotalResponse `json:"stages"`
	Count     int                  `json:"count"`
	OpenValue json.Number          `json:"openValue"`
	WonValue  json.Number          `json:"wonValue"`
	LostValue json.Number          `json:"lostValue"`
}

// ToSummaryResponse converts a domain Summary to an HTTP response DTO.
func ToSummaryResponse(s *deal.Summary) SummaryResponse {
	stages := make([]StageTotalResponse, len(s.Stages))
	for i, st := range s.Stages {
		stages[i] = StageTotalResponse{
			Stage: string(st.Stage),
			Count: st.Count,
			Value: number(st.Value),
		}
	}
	return SummaryResponse{
		Stages:    stages,
		Count:     s.Count,
		OpenValue: number(s.OpenValue),
		WonValue:  number(s.WonValue),
		LostValue: number(s.LostValue),
	}
}

// number renders a decimal as an unquoted JSON number without losing digits.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
