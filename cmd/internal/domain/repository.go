package domain

import (
	"context"

	"github.com/google/uuid"

	"psicoagenda/cmd/internal/domain/entity"
)

// Query narrows a repository read. Where/Args form the predicate, Preload
// names the related-entity fields to hydrate, OrderBy and Limit bound the
// result set. The zero value matches everything.
type Query struct {
	Where   string
	Args    []any
	Preload []string
	OrderBy string
	Limit   int
}

// Repository gives storage access for exactly one entity type. Create, Update
// and Delete only stage work: nothing reaches the store until the owning unit
// of work saves. Point and predicate lookups return nil, nil when no row
// matches, never an error.
type Repository[T any] interface {
	Create(e *T)
	Update(e *T)
	Delete(e *T)
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context) ([]*T, error)
	FindOne(ctx context.Context, q Query) (*T, error)
	FindAllBy(ctx context.Context, q Query) ([]*T, error)
}

// UnitOfWorkFactory builds a fresh unit of work. Services call it once per
// operation so every request flow owns its session exclusively.
type UnitOfWorkFactory func() UnitOfWork

// UnitOfWork binds one repository per entity type to a single storage session
// and owns the save boundary. One instance serves one request flow; it is not
// safe for concurrent use.
type UnitOfWork interface {
	Patients() Repository[entity.Patient]
	Appointments() Repository[entity.Appointment]
	Sessions() Repository[entity.Session]
	SessionNotes() Repository[entity.SessionNote]
	Questionnaires() Repository[entity.Questionnaire]
	QuestionnaireResponses() Repository[entity.QuestionnaireResponse]

	// Save flushes every staged write across all repositories as one atomic
	// operation and reports the number of affected rows. When an explicit
	// transaction is open the writes apply inside it and become durable at
	// Commit; otherwise Save runs its own transaction.
	Save(ctx context.Context) (int64, error)

	// Begin opens an explicit transaction. Calling it again while one is open
	// reuses the existing transaction.
	Begin(ctx context.Context) error
	// Commit and Rollback close the open transaction and always release it,
	// success or failure. Both fail when no transaction is open.
	Commit() error
	Rollback() error

	// Close releases the underlying session and any open transaction. Safe to
	// call more than once.
	Close() error
}
