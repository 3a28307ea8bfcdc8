package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveInsideTransactionVisibleBeforeCommit(t *testing.T) {
	uow := NewUnitOfWork(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, uow.Begin(ctx))

	patient := newTestPatient()
	uow.Patients().Create(patient)
	affected, err := uow.Save(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	// Reads on the same unit of work see the uncommitted row.
	found, err := uow.Patients().FindByID(ctx, patient.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)

	require.NoError(t, uow.Commit())

	found, err = uow.Patients().FindByID(ctx, patient.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestRollbackDiscardsSavedWrites(t *testing.T) {
	uow := NewUnitOfWork(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, uow.Begin(ctx))

	patient := newTestPatient()
	uow.Patients().Create(patient)
	_, err := uow.Save(ctx)
	require.NoError(t, err)

	require.NoError(t, uow.Rollback())

	found, err := uow.Patients().FindByID(ctx, patient.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestBeginIsIdempotent(t *testing.T) {
	uow := NewUnitOfWork(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit())
}

func TestCommitWithoutTransaction(t *testing.T) {
	uow := NewUnitOfWork(newTestDB(t))

	assert.ErrorIs(t, uow.Commit(), ErrNoTransaction)
	assert.ErrorIs(t, uow.Rollback(), ErrNoTransaction)
}

func TestSaveKeepsStagedWritesOnFailure(t *testing.T) {
	db := newTestDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	ghost := newTestPatient()
	uow.Patients().Update(ghost)
	_, err := uow.Save(ctx)
	require.Error(t, err)

	// The staged set survives a failed save. Once the missing row exists,
	// retrying the same unit of work succeeds.
	seed := NewUnitOfWork(db)
	seed.Patients().Create(ghost)
	_, err = seed.Save(ctx)
	require.NoError(t, err)
	seed.Close()

	affected, err := uow.Save(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)
}

func TestSaveFailureRollsBackWholeBatch(t *testing.T) {
	uow := NewUnitOfWork(newTestDB(t))
	ctx := context.Background()

	good := newTestPatient()
	ghost := newTestPatient()
	uow.Patients().Create(good)
	uow.Patients().Update(ghost)
	_, err := uow.Save(ctx)
	require.Error(t, err)

	all, err := uow.Patients().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "a failed save must persist nothing")
}

func TestSaveFailureInsideTransactionLeavesItClean(t *testing.T) {
	db := newTestDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	require.NoError(t, uow.Begin(ctx))

	good := newTestPatient()
	ghost := newTestPatient()
	uow.Patients().Create(good)
	uow.Patients().Update(ghost)
	_, err := uow.Save(ctx)
	require.Error(t, err)

	// The failed flush must not leak into the explicit transaction, so
	// committing it persists nothing.
	require.NoError(t, uow.Commit())

	found, err := NewUnitOfWork(db).Patients().FindByID(ctx, good.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCloseRollsBackOpenTransaction(t *testing.T) {
	db := newTestDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	require.NoError(t, uow.Begin(ctx))
	patient := newTestPatient()
	uow.Patients().Create(patient)
	_, err := uow.Save(ctx)
	require.NoError(t, err)

	uow.Close()
	uow.Close()

	found, err := NewUnitOfWork(db).Patients().FindByID(ctx, patient.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
