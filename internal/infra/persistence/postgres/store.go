// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"shopapi/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errMultipleRows signals that a lookup expected to match at most one row
// matched several. This is an integrity problem in the data, not a user error.
var errMultipleRows = errors.New("multiple rows match unique query")

// relationJoin augments a query so that one named relation is eagerly loaded.
type relationJoin func(tx *gorm.DB) *gorm.DB

// store is the generic entity store shared by all repositories. It owns the
// mechanical CRUD plumbing; entity-specific rules live in the repositories and
// usecases built on top of it. M is the persistence model type.
//
// Every mutation only stages changes on the session it runs on; durability is
// decided by the surrounding transaction (see transaction.go).
type store[M any] struct {
	db        *gorm.DB
	relations map[string]relationJoin
}

// newStore builds a store with its relation registry. Registering a nil join
// is a wiring bug, so it fails immediately at construction instead of at
// request time.
func newStore[M any](db *gorm.DB, relations map[string]relationJoin) *store[M] {
	for name, join := range relations {
		if join == nil {
			panic("postgres: nil join registered for relation " + name)
		}
	}

	return &store[M]{db: db, relations: relations}
}

// applyRelations folds the requested relation names into the query.
// All registered joins are single-hop eager loads, so the order in which they
// are applied cannot change the result set. An unknown name is a configuration
// error; correct wiring never lets request input reach this point unchecked.
func (s *store[M]) applyRelations(tx *gorm.DB, relations []string) (*gorm.DB, error) {
	for _, name := range relations {
		join, ok := s.relations[name]
		if !ok {
			return nil, errors.Errorf("unknown relation %q", name)
		}
		tx = join(tx)
	}

	return tx, nil
}

// create stages a new row. The model's id is assigned before the INSERT is
// flushed (BeforeCreate hooks), so callers observe it immediately.
func (s *store[M]) create(ctx context.Context, m *M) error {
	return s.db.WithContext(ctx).Create(m).Error
}

// save writes the full current state of an already-merged model, including
// owned associations.
func (s *store[M]) save(ctx context.Context, m *M) error {
	return s.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(m).Error
}

// listQuery describes one findAll invocation. conds holds equality filters
// keyed by column name; column names always come from code, never from
// request input.
type listQuery struct {
	offset    int
	limit     int
	relations []string
	conds     map[string]any
}

// findAll returns rows in creation order. Primary keys are UUIDv7, so ordering
// by id yields a stable insertion-order slice and pagination stays
// deterministic across requests. Eager loads use Preload, which issues a
// second query per relation instead of a join, so one-to-many fan-out can
// never duplicate rows in the result.
func (s *store[M]) findAll(ctx context.Context, q listQuery) ([]*M, error) {
	tx, err := s.applyRelations(s.db.WithContext(ctx), q.relations)
	if err != nil {
		return nil, err
	}

	for column, value := range q.conds {
		tx = tx.Where(column+" = ?", value)
	}

	var rows []*M
	if err := tx.Order("id").Offset(q.offset).Limit(q.limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// findOptions tunes a findBy lookup.
type findOptions struct {
	relations []string
	forUpdate bool
}

// findBy returns the single row whose column equals value.
// Zero matches yield gorm.ErrRecordNotFound, which repositories translate to
// their domain sentinel; more than one match yields errMultipleRows.
// With forUpdate set, the row is read under SELECT ... FOR UPDATE and stays
// locked until the enclosing transaction commits or rolls back, serializing
// competing writers on that row.
func (s *store[M]) findBy(ctx context.Context, column string, value any, opts findOptions) (*M, error) {
	tx, err := s.applyRelations(s.db.WithContext(ctx), opts.relations)
	if err != nil {
		return nil, err
	}

	if opts.forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var rows []*M
	if err := tx.Where(column+" = ?", value).Limit(2).Find(&rows).Error; err != nil {
		return nil, err
	}

	switch len(rows) {
	case 0:
		return nil, gorm.ErrRecordNotFound
	case 1:
		return rows[0], nil
	default:
		return nil, errors.Wrapf(errMultipleRows, "column %s", column)
	}
}

// delete stages a hard delete of the row.
func (s *store[M]) delete(ctx context.Context, m *M) error {
	return s.db.WithContext(ctx).Delete(m).Error
}
