package repositories

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Table describes how a model maps onto its table.
// Fields must return scan targets in the order id, Columns, Managed.
// Values must return one value per entry in Columns.
type Table[T any] struct {
	Name    string
	Entity  string
	Columns []string
	Managed []string
	Unique  []string
	Touch   string
	OrderBy []string
	Fields  func(*T) []any
	Values  func(*T) []any
}

func (t Table[T]) selectColumns() []string {
	cols := make([]string, 0, 1+len(t.Columns)+len(t.Managed))
	cols = append(cols, "id")
	cols = append(cols, t.Columns...)
	return append(cols, t.Managed...)
}

func (t Table[T]) returning() string {
	return "RETURNING " + strings.Join(t.selectColumns(), ", ")
}

func (t Table[T]) order() []string {
	if len(t.OrderBy) == 0 {
		return []string{"id ASC"}
	}
	return t.OrderBy
}

func (t Table[T]) scan(row pgx.Row) (*T, error) {
	var rec T
	if err := row.Scan(t.Fields(&rec)...); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (t Table[T]) scanAll(rows pgx.Rows) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var rec T
		if err := rows.Scan(t.Fields(&rec)...); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Patch is an ordered set of column assignments for a partial update.
// Absent values never become assignments, and neither do empty strings.
type Patch struct {
	columns []string
	values  []any
}

func (p *Patch) set(col string, v any) *Patch {
	p.columns = append(p.columns, col)
	p.values = append(p.values, v)
	return p
}

func (p *Patch) SetString(col string, v *string) *Patch {
	if v == nil || *v == "" {
		return p
	}
	return p.set(col, *v)
}

func (p *Patch) SetInt(col string, v *int64) *Patch {
	if v == nil {
		return p
	}
	return p.set(col, *v)
}

func (p *Patch) SetBool(col string, v *bool) *Patch {
	if v == nil {
		return p
	}
	return p.set(col, *v)
}

func (p *Patch) SetDate(col string, v *time.Time) *Patch {
	if v == nil {
		return p
	}
	return p.set(col, *v)
}

func (p Patch) Empty() bool {
	return len(p.columns) == 0
}

func (p Patch) Columns() []string {
	return append([]string(nil), p.columns...)
}
