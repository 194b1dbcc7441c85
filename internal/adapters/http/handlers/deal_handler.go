// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/deal-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
	"github.com/jsamuelsen11/deal-pipeline/internal/ports"
)

// DealHandler handles HTTP requests for deal CRUD, column reorders, bulk
// import and the pipeline summary.
type DealHandler struct {
	svc ports.DealService
}

// NewDealHandler creates a new DealHandler with the given service port.
func NewDealHandler(svc ports.DealService) *DealHandler {
	return &DealHandler{svc: svc}
}

// ListDeals handles GET /deals?stage=&priority=&q=.
func (h *DealHandler) ListDeals(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := deal.Filter{Q: query.Get("q")}
	if v := query.Get("stage"); v != "" {
		st := deal.Stage(v)
		filter.Stage = &st
	}
	if v := query.Get("priority"); v != "" {
		p := deal.Priority(v)
		filter.Priority = &p
	}

	deals, err := h.svc.ListDeals(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDealListResponse(deals))
}

// CreateDeal handles POST /deals.
func (h *DealHandler) CreateDeal(w http.ResponseWriter, r *http.Request) {
	var req dto.DealRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	draft := req.ToDraft()
	created, err := h.svc.CreateDeal(r.Context(), &draft)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToDealResponse(created))
}

// GetDeal handles GET /deals/{id}.
func (h *DealHandler) GetDeal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	d, err := h.svc.GetDeal(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDealResponse(d))
}

// UpdateDeal handles PUT /deals/{id}.
func (h *DealHandler) UpdateDeal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateDealRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateDeal(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDealResponse(updated))
}

// DeleteDeal handles DELETE /deals/{id}.
func (h *DealHandler) DeleteDeal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteDeal(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReorderDeals handles POST /deals/reorder.
func (h *DealHandler) ReorderDeals(w http.ResponseWriter, r *http.Request) {
	var req dto.ReorderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.ReorderColumn(r.Context(), req.ToPort()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.OKResponse{OK: true})
}

// BulkImport handles POST /deals/bulk.
func (h *DealHandler) BulkImport(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkImportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.ImportDeals(r.Context(), req.ToDrafts())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToBulkImportResponse(result))
}

// Summary handles GET /deals/summary.
func (h *DealHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSummaryResponse(s))
}
