package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
	"github.com/jsamuelsen11/deal-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/deal-pipeline/internal/ports"
)

// Skip reasons reported for dropped import records.
const (
	ReasonDuplicateInBatch = "duplicate id in batch"
	ReasonAlreadyExists    = "id already exists"
)

// RawRecord is one untyped input row keyed by column name.
type RawRecord map[string]string

// Mapper turns a raw record into a draft. Mapping policy (column names,
// how several source fields fold into notes) belongs to the caller.
type Mapper interface {
	Map(rec RawRecord) (deal.Draft, error)
}

// MapperFunc adapts a function to the Mapper interface.
type MapperFunc func(rec RawRecord) (deal.Draft, error)

// Map implements Mapper.
func (f MapperFunc) Map(rec RawRecord) (deal.Draft, error) {
	return f(rec)
}

// ColumnMapper maps records whose columns carry the draft field names
// (id, title, company, contact, notes, value, priority, dueDate).
// Column lookups are case-insensitive.
type ColumnMapper struct{}

// Map implements Mapper.
func (ColumnMapper) Map(rec RawRecord) (deal.Draft, error) {
	cols := make(map[string]string, len(rec))
	for k, v := range rec {
		cols[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}

	d := deal.Draft{
		ID:       cols["id"],
		Title:    cols["title"],
		Company:  cols["company"],
		Contact:  cols["contact"],
		Notes:    cols["notes"],
		Priority: deal.Priority(strings.ToUpper(cols["priority"])),
	}

	if raw := cols["value"]; raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return deal.Draft{}, domain.NewValidationError("value", fmt.Sprintf("not a number: %q", raw))
		}
		d.Value = &v
	}
	if raw := cols["duedate"]; raw != "" {
		due, err := deal.ParseDate(raw)
		if err != nil {
			return deal.Draft{}, domain.NewValidationError("dueDate", fmt.Sprintf("not a date: %q", raw))
		}
		d.DueDate = &due
	}
	return d, nil
}

// Importer places batches of drafts at the end of LEAD, in input order, as
// one transaction.
type Importer struct {
	engine   *OrderingEngine
	policy   string
	maxBatch int
}

// NewImporter creates an Importer that handles duplicate ids according to
// cfg.DuplicatePolicy.
func NewImporter(engine *OrderingEngine, cfg config.ImportConfig) *Importer {
	return &Importer{
		engine:   engine,
		policy:   cfg.DuplicatePolicy,
		maxBatch: cfg.MaxBatch,
	}
}

// ImportRecords maps every record with m and imports the result. A record
// that fails to map rejects the whole batch.
//
// It is the entry point for callers holding raw column records, such as a CSV
// reader. POST /deals/bulk decodes drafts directly and goes through Import.
func (im *Importer) ImportRecords(ctx context.Context, records []RawRecord, m Mapper) (*ports.ImportResult, error) {
	drafts := make([]deal.Draft, len(records))
	for i, rec := range records {
		d, err := m.Map(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		drafts[i] = d
	}
	return im.Import(ctx, drafts)
}

// Import stores the drafts at the end of LEAD in input order. Priority and
// value default to MEDIUM and zero; any stage on a draft is replaced by LEAD.
func (im *Importer) Import(ctx context.Context, drafts []deal.Draft) (*ports.ImportResult, error) {
	result := &ports.ImportResult{Imported: []deal.Deal{}, Skipped: []ports.SkippedRecord{}}
	if len(drafts) == 0 {
		return result, nil
	}
	if im.maxBatch > 0 && len(drafts) > im.maxBatch {
		return nil, domain.NewValidationError("deals",
			fmt.Sprintf("batch of %d exceeds the limit of %d", len(drafts), im.maxBatch))
	}

	deals, err := prepareBatch(drafts)
	if err != nil {
		return nil, err
	}

	err = im.engine.withStages(ctx, []deal.Stage{deal.StageLead}, func(tx ports.DealTx) error {
		keep, skipped, err := im.resolveDuplicates(ctx, tx, deals)
		if err != nil {
			return err
		}

		next, err := nextIndex(ctx, tx, deal.StageLead)
		if err != nil {
			return err
		}

		imported := make([]deal.Deal, 0, len(keep))
		for _, i := range keep {
			d := deals[i]
			d.OrderIndex = next
			next++

			if err := tx.Insert(ctx, &d); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			imported = append(imported, d)
		}

		result.Imported = imported
		result.Skipped = skipped
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// prepareBatch applies defaults and validates every draft. Field keys are
// prefixed with the record index, e.g. "deals[2].title".
func prepareBatch(drafts []deal.Draft) ([]deal.Deal, error) {
	deals := make([]deal.Deal, len(drafts))
	fields := make(map[string]string)

	for i := range drafts {
		deals[i] = drafts[i].ToDeal()
		deals[i].Stage = deal.StageLead
		if err := deals[i].Validate(); err != nil {
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				return nil, err
			}
			for field, msg := range verr.Fields {
				fields[fmt.Sprintf("deals[%d].%s", i, field)] = msg
			}
		}
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return deals, nil
}

// resolveDuplicates returns the indexes of deals to insert and the records
// dropped under the skip policy. Under the reject policy any duplicate fails
// the batch.
func (im *Importer) resolveDuplicates(ctx context.Context, tx ports.DealTx, deals []deal.Deal) ([]int, []ports.SkippedRecord, error) {
	var ids []string
	for i := range deals {
		if deals[i].ID != "" {
			ids = append(ids, deals[i].ID)
		}
	}

	existing := map[string]bool{}
	if len(ids) > 0 {
		var err error
		if existing, err = tx.Exists(ctx, ids); err != nil {
			return nil, nil, err
		}
	}

	keep := make([]int, 0, len(deals))
	skipped := []ports.SkippedRecord{}
	fields := make(map[string]string)
	seen := make(map[string]bool, len(ids))

	for i := range deals {
		id := deals[i].ID
		reason := ""
		switch {
		case id == "":
		case existing[id]:
			reason = ReasonAlreadyExists
		case seen[id]:
			reason = ReasonDuplicateInBatch
		}
		if id != "" {
			seen[id] = true
		}

		if reason == "" {
			keep = append(keep, i)
			continue
		}
		if im.policy == config.DuplicateSkip {
			skipped = append(skipped, ports.SkippedRecord{Index: i, ID: id, Reason: reason})
			continue
		}
		fields[fmt.Sprintf("deals[%d].id", i)] = reason
	}

	if len(fields) > 0 {
		return nil, nil, &domain.ValidationError{Fields: fields}
	}
	return keep, skipped, nil
}
