package repositories

import (
	"context"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/party-model/backend/internal/db"
)

// Repo is the CRUD store for one table. Every statement runs on the
// transaction carried by ctx when there is one.
type Repo[T any] struct {
	pool  db.Querier
	table Table[T]
}

func NewRepo[T any](pool db.Querier, table Table[T]) *Repo[T] {
	return &Repo[T]{pool: pool, table: table}
}

func (r *Repo[T]) q(ctx context.Context) db.Querier {
	return db.QuerierFromCtx(ctx, r.pool)
}

// FindConflict reports the first business-unique column of rec whose value
// is already stored. Blank values are not compared.
func (r *Repo[T]) FindConflict(ctx context.Context, rec *T) (string, bool, error) {
	values := r.table.Values(rec)
	for _, col := range r.table.Unique {
		i := slices.Index(r.table.Columns, col)
		if i < 0 {
			return "", false, fmt.Errorf("%s: unique column %q is not writable", r.table.Entity, col)
		}
		v, ok := lookupValue(values[i])
		if !ok {
			continue
		}

		query, args, err := psql.Select("1").
			Prefix("SELECT EXISTS (").
			From(r.table.Name).
			Where(sq.Eq{col: v}).
			Suffix(")").
			ToSql()
		if err != nil {
			return "", false, err
		}

		var exists bool
		if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
			return "", false, db.MapError(err, r.table.Entity)
		}
		if exists {
			return col, true, nil
		}
	}
	return "", false, nil
}

func (r *Repo[T]) Create(ctx context.Context, rec *T) (*T, error) {
	query, args, err := psql.Insert(r.table.Name).
		Columns(r.table.Columns...).
		Values(r.table.Values(rec)...).
		Suffix(r.table.returning()).
		ToSql()
	if err != nil {
		return nil, err
	}

	out, err := r.table.scan(r.q(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, db.MapError(err, r.table.Entity)
	}
	return out, nil
}

func (r *Repo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	query, args, err := psql.Select(r.table.selectColumns()...).
		From(r.table.Name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	out, err := r.table.scan(r.q(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, db.MapError(err, r.table.Entity)
	}
	return out, nil
}

func (r *Repo[T]) List(ctx context.Context) ([]T, error) {
	return r.listWhere(ctx, nil, r.table.order()...)
}

func (r *Repo[T]) listWhere(ctx context.Context, where sq.Sqlizer, orderBy ...string) ([]T, error) {
	b := psql.Select(r.table.selectColumns()...).From(r.table.Name)
	if where != nil {
		b = b.Where(where)
	}
	query, args, err := b.OrderBy(orderBy...).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, db.MapError(err, r.table.Entity)
	}
	out, err := r.table.scanAll(rows)
	if err != nil {
		return nil, db.MapError(err, r.table.Entity)
	}
	return out, nil
}

// Update applies patch to the row and returns the stored post-state.
// The caller handles an empty patch.
func (r *Repo[T]) Update(ctx context.Context, id int64, patch Patch) (*T, error) {
	b := psql.Update(r.table.Name).Where(sq.Eq{"id": id})
	for i, col := range patch.columns {
		b = b.Set(col, patch.values[i])
	}
	if r.table.Touch != "" {
		b = b.Set(r.table.Touch, sq.Expr("now()"))
	}

	query, args, err := b.Suffix(r.table.returning()).ToSql()
	if err != nil {
		return nil, err
	}

	out, err := r.table.scan(r.q(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, db.MapError(err, r.table.Entity)
	}
	return out, nil
}

func (r *Repo[T]) Delete(ctx context.Context, id int64) (int64, error) {
	query, args, err := psql.Delete(r.table.Name).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var deleted int64
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&deleted); err != nil {
		return 0, db.MapError(err, r.table.Entity)
	}
	return deleted, nil
}

// lookupValue dereferences v for an equality lookup. It reports false for
// nil pointers and empty strings.
func lookupValue(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case string:
		return x, x != ""
	case *string:
		if x == nil || *x == "" {
			return nil, false
		}
		return *x, true
	case *int64:
		if x == nil {
			return nil, false
		}
		return *x, true
	}
	return v, true
}
