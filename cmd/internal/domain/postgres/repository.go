package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"psicoagenda/cmd/internal/domain"
)

type action int

const (
	actionCreate action = iota
	actionUpdate
	actionDelete
)

type stagedOp struct {
	action action
	entity any
}

// session is the single storage session shared by all repositories of one
// unit of work. Reads go through the open explicit transaction when there is
// one, writes accumulate in staged until Save flushes them.
type session struct {
	db     *gorm.DB
	tx     *gorm.DB
	staged []stagedOp
}

func (s *session) conn() *gorm.DB {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s *session) stage(a action, e any) {
	s.staged = append(s.staged, stagedOp{action: a, entity: e})
}

type repository[T any] struct {
	s *session
}

func newRepository[T any](s *session) domain.Repository[T] {
	return &repository[T]{s: s}
}

func (r *repository[T]) Create(e *T) {
	r.s.stage(actionCreate, e)
}

func (r *repository[T]) Update(e *T) {
	r.s.stage(actionUpdate, e)
}

func (r *repository[T]) Delete(e *T) {
	r.s.stage(actionDelete, e)
}

func (r *repository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var e T
	err := r.s.conn().WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository[T]) FindAll(ctx context.Context) ([]*T, error) {
	var out []*T
	err := r.s.conn().WithContext(ctx).Find(&out).Error
	return out, err
}

func (r *repository[T]) FindOne(ctx context.Context, q domain.Query) (*T, error) {
	var e T
	err := r.scope(ctx, q).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository[T]) FindAllBy(ctx context.Context, q domain.Query) ([]*T, error) {
	var out []*T
	err := r.scope(ctx, q).Find(&out).Error
	return out, err
}

func (r *repository[T]) scope(ctx context.Context, q domain.Query) *gorm.DB {
	db := r.s.conn().WithContext(ctx)
	for _, rel := range q.Preload {
		db = db.Preload(rel)
	}
	if q.Where != "" {
		db = db.Where(q.Where, q.Args...)
	}
	if q.OrderBy != "" {
		db = db.Order(q.OrderBy)
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	return db
}
