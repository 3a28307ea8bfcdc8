package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"psicoagenda/cmd/internal/domain"
	"psicoagenda/cmd/internal/domain/entity"
)

// ErrNoTransaction is returned by Commit and Rollback when no explicit
// transaction is open.
var ErrNoTransaction = errors.New("unit of work: no open transaction")

// UnitOfWork binds one repository per entity type to a shared session and
// flushes all staged writes atomically on Save. Construct one per request
// flow and Close it when the flow ends.
type UnitOfWork struct {
	s      *session
	closed bool

	patients               domain.Repository[entity.Patient]
	appointments           domain.Repository[entity.Appointment]
	sessions               domain.Repository[entity.Session]
	sessionNotes           domain.Repository[entity.SessionNote]
	questionnaires         domain.Repository[entity.Questionnaire]
	questionnaireResponses domain.Repository[entity.QuestionnaireResponse]
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	s := &session{db: db}
	return &UnitOfWork{
		s:                      s,
		patients:               newRepository[entity.Patient](s),
		appointments:           newRepository[entity.Appointment](s),
		sessions:               newRepository[entity.Session](s),
		sessionNotes:           newRepository[entity.SessionNote](s),
		questionnaires:         newRepository[entity.Questionnaire](s),
		questionnaireResponses: newRepository[entity.QuestionnaireResponse](s),
	}
}

func (u *UnitOfWork) Patients() domain.Repository[entity.Patient] { return u.patients }

func (u *UnitOfWork) Appointments() domain.Repository[entity.Appointment] { return u.appointments }

func (u *UnitOfWork) Sessions() domain.Repository[entity.Session] { return u.sessions }

func (u *UnitOfWork) SessionNotes() domain.Repository[entity.SessionNote] { return u.sessionNotes }

func (u *UnitOfWork) Questionnaires() domain.Repository[entity.Questionnaire] {
	return u.questionnaires
}

func (u *UnitOfWork) QuestionnaireResponses() domain.Repository[entity.QuestionnaireResponse] {
	return u.questionnaireResponses
}

// Save applies every staged create, update and delete in staging order. With
// an explicit transaction open the writes run inside it; otherwise Save wraps
// them in its own transaction. On failure nothing is applied and the staged
// set is kept so the caller can retry or roll back.
func (u *UnitOfWork) Save(ctx context.Context) (int64, error) {
	if len(u.s.staged) == 0 {
		return 0, nil
	}

	var affected int64
	flush := func(tx *gorm.DB) error {
		for _, op := range u.s.staged {
			res := op.apply(tx)
			if res.Error != nil {
				return res.Error
			}
			if op.action == actionUpdate && res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			affected += res.RowsAffected
		}
		return nil
	}

	// Transaction on an already-open transaction nests via savepoint, so a
	// mid-batch failure rolls the explicit transaction back to the state
	// before this flush.
	if err := u.s.conn().WithContext(ctx).Transaction(flush); err != nil {
		return 0, err
	}

	u.s.staged = nil
	return affected, nil
}

func (op stagedOp) apply(tx *gorm.DB) *gorm.DB {
	switch op.action {
	case actionCreate:
		return tx.Create(op.entity)
	case actionUpdate:
		// Full-row replace keyed by identity. Select("*") writes every
		// column so cleared optional fields persist as NULL.
		return tx.Model(op.entity).Select("*").Updates(op.entity)
	default:
		return tx.Delete(op.entity)
	}
}

// Begin opens an explicit transaction. Repeated calls reuse the open one.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.s.tx != nil {
		return nil
	}
	tx := u.s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.s.tx = tx
	return nil
}

// Commit commits the open transaction and releases it, success or failure.
func (u *UnitOfWork) Commit() error {
	if u.s.tx == nil {
		return ErrNoTransaction
	}
	err := u.s.tx.Commit().Error
	u.s.tx = nil
	return err
}

// Rollback reverts everything since Begin and releases the transaction.
func (u *UnitOfWork) Rollback() error {
	if u.s.tx == nil {
		return ErrNoTransaction
	}
	err := u.s.tx.Rollback().Error
	u.s.tx = nil
	return err
}

// Close rolls back any open transaction and discards staged writes. The
// pooled connection itself stays with the shared pool. Safe to call twice.
func (u *UnitOfWork) Close() error {
	if u.closed {
		return nil
	}
	u.closed = true
	u.s.staged = nil
	if u.s.tx != nil {
		err := u.s.tx.Rollback().Error
		u.s.tx = nil
		return err
	}
	return nil
}
