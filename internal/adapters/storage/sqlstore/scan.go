package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
)

const dealColumns = `id, title, company, contact, notes, value, priority, stage, order_index, due_date, created_at, updated_at`

// timestampLayouts are the text forms the SQLite driver may hand back for a
// TIMESTAMP column.
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeal(row rowScanner) (*deal.Deal, error) {
	var (
		d        deal.Deal
		priority string
		stage    string
		due      dateValue
		created  timeValue
		updated  timeValue
	)
	err := row.Scan(
		&d.ID, &d.Title, &d.Company, &d.Contact, &d.Notes,
		&d.Value, &priority, &stage, &d.OrderIndex,
		&due, &created, &updated,
	)
	if err != nil {
		return nil, err
	}

	d.Priority = deal.Priority(priority)
	d.Stage = deal.Stage(stage)
	d.DueDate = due.t
	d.CreatedAt = created.t
	d.UpdatedAt = updated.t
	return &d, nil
}

func scanDeals(rows *sql.Rows) ([]deal.Deal, error) {
	defer rows.Close()

	var out []deal.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// dateValue scans a nullable calendar date stored as DATE or as
// "2006-01-02" text.
type dateValue struct {
	t *time.Time
}

func (v *dateValue) Scan(src any) error {
	switch s := src.(type) {
	case nil:
		v.t = nil
		return nil
	case time.Time:
		d := deal.NormalizeDate(s)
		v.t = &d
		return nil
	case string:
		return v.parse(s)
	case []byte:
		return v.parse(string(s))
	default:
		return fmt.Errorf("unsupported due_date type %T", src)
	}
}

func (v *dateValue) parse(s string) error {
	if s == "" {
		v.t = nil
		return nil
	}
	d, err := deal.ParseDate(s)
	if err != nil {
		return err
	}
	v.t = &d
	return nil
}

// timeValue scans a TIMESTAMP column that may arrive as time.Time or text.
type timeValue struct {
	t time.Time
}

func (v *timeValue) Scan(src any) error {
	switch s := src.(type) {
	case time.Time:
		v.t = s.UTC()
		return nil
	case string:
		return v.parse(s)
	case []byte:
		return v.parse(string(s))
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (v *timeValue) parse(s string) error {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			v.t = t.UTC()
			return nil
		}
	}
	return errors.New("unrecognized timestamp " + s)
}

// dueDateArg renders a due date for storage.
func dueDateArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(deal.DateLayout)
}
