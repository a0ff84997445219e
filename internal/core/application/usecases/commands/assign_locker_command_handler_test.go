package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/allocation"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/locker"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAssignLockerRepository struct{ mock.Mock }

func (m *MockAssignLockerRepository) Add(ctx context.Context, l *locker.Locker) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockAssignLockerRepository) Update(ctx context.Context, l *locker.Locker) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockAssignLockerRepository) Get(ctx context.Context, id kernel.UUID) (*locker.Locker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locker.Locker), args.Error(1)
}

func (m *MockAssignLockerRepository) GetAll(ctx context.Context, siteID *kernel.UUID) ([]*locker.Locker, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*locker.Locker), args.Error(1)
}

func (m *MockAssignLockerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssignLockerRepository) CountBySite(ctx context.Context, siteID kernel.UUID) (int, error) {
	args := m.Called(ctx, siteID)
	return args.Int(0), args.Error(1)
}

type MockAssignAllocationRepository struct{ mock.Mock }

func (m *MockAssignAllocationRepository) Add(ctx context.Context, a *allocation.Allocation) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignAllocationRepository) Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*allocation.Allocation), args.Error(1)
}

func (m *MockAssignAllocationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAssignmentStore struct{ mock.Mock }

func (m *MockAssignmentStore) LockerRepository() ports.LockerRepository {
	args := m.Called()
	return args.Get(0).(ports.LockerRepository)
}

func (m *MockAssignmentStore) AllocationRepository() ports.AllocationRepository {
	args := m.Called()
	return args.Get(0).(ports.AllocationRepository)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAvailableLocker(t *testing.T, lockerID kernel.UUID) *locker.Locker {
	t.Helper()
	l, err := locker.NewLocker(lockerID, kernel.NewUUID(), "A-01", true)
	require.NoError(t, err)
	return l
}

func TestAssignLockerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	lockerID := kernel.NewUUID()

	cmd, err := commands.NewAssignLockerCommand(kernel.NewUUID(), lockerID)
	require.NoError(t, err)

	testLocker := newAvailableLocker(t, lockerID)

	lockerRepo := new(MockAssignLockerRepository)
	allocRepo := new(MockAssignAllocationRepository)
	store := new(MockAssignmentStore)

	mock.InOrder(
		store.On("LockerRepository").Return(lockerRepo).Once(),
		store.On("AllocationRepository").Return(allocRepo).Once(),
		lockerRepo.On("Get", ctx, lockerID).Return(testLocker, nil).Once(),
		allocRepo.On("Add", ctx, mock.AnythingOfType("*allocation.Allocation")).Return(nil).Once(),
		lockerRepo.On("Update", ctx, mock.AnythingOfType("*locker.Locker")).Return(nil).Once(),
	)

	handler := commands.NewAssignLockerCommandHandler(store, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, testLocker.IsAvailable())
	lockerRepo.AssertExpectations(t)
	allocRepo.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestAssignLockerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.AssignLockerCommand // not constructed properly

	store := new(MockAssignmentStore)
	handler := commands.NewAssignLockerCommandHandler(store, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignLockerCommandIsNotConstructed)
	store.AssertNotCalled(t, "LockerRepository")
}

func TestAssignLockerCommandHandler_Handle_LockerNotFound(t *testing.T) {
	ctx := t.Context()
	lockerID := kernel.NewUUID()

	cmd, err := commands.NewAssignLockerCommand(kernel.NewUUID(), lockerID)
	require.NoError(t, err)

	lockerRepo := new(MockAssignLockerRepository)
	allocRepo := new(MockAssignAllocationRepository)
	store := new(MockAssignmentStore)

	mock.InOrder(
		store.On("LockerRepository").Return(lockerRepo).Once(),
		store.On("AllocationRepository").Return(allocRepo).Once(),
		lockerRepo.On("Get", ctx, lockerID).
			Return(nil, errs.NewObjectNotFoundError("lockerId", lockerID)).
			Once(),
	)

	handler := commands.NewAssignLockerCommandHandler(store, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	allocRepo.AssertNotCalled(t, "Add")
	lockerRepo.AssertNotCalled(t, "Update")
}

func TestAssignLockerCommandHandler_Handle_LockerAlreadyTaken(t *testing.T) {
	ctx := t.Context()
	lockerID := kernel.NewUUID()

	cmd, err := commands.NewAssignLockerCommand(kernel.NewUUID(), lockerID)
	require.NoError(t, err)

	takenLocker, err := locker.NewLocker(lockerID, kernel.NewUUID(), "A-01", false)
	require.NoError(t, err)

	lockerRepo := new(MockAssignLockerRepository)
	allocRepo := new(MockAssignAllocationRepository)
	store := new(MockAssignmentStore)

	mock.InOrder(
		store.On("LockerRepository").Return(lockerRepo).Once(),
		store.On("AllocationRepository").Return(allocRepo).Once(),
		lockerRepo.On("Get", ctx, lockerID).Return(takenLocker, nil).Once(),
	)

	handler := commands.NewAssignLockerCommandHandler(store, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceConflict)

	// Neither write must have happened.
	allocRepo.AssertNotCalled(t, "Add")
	lockerRepo.AssertNotCalled(t, "Update")
}

func TestAssignLockerCommandHandler_Handle_AllocationAddError(t *testing.T) {
	ctx := t.Context()
	lockerID := kernel.NewUUID()

	cmd, err := commands.NewAssignLockerCommand(kernel.NewUUID(), lockerID)
	require.NoError(t, err)

	testLocker := newAvailableLocker(t, lockerID)

	lockerRepo := new(MockAssignLockerRepository)
	allocRepo := new(MockAssignAllocationRepository)
	store := new(MockAssignmentStore)

	mock.InOrder(
		store.On("LockerRepository").Return(lockerRepo).Once(),
		store.On("AllocationRepository").Return(allocRepo).Once(),
		lockerRepo.On("Get", ctx, lockerID).Return(testLocker, nil).Once(),
		allocRepo.On("Add", ctx, mock.AnythingOfType("*allocation.Allocation")).
			Return(errors.New("insert failed")).
			Once(),
	)

	handler := commands.NewAssignLockerCommandHandler(store, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "insert failed")

	// Nothing was written; no compensation must run.
	lockerRepo.AssertNotCalled(t, "Update")
	allocRepo.AssertNotCalled(t, "Delete")
}

func TestAssignLockerCommandHandler_Handle_FlipFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	lockerID := kernel.NewUUID()

	cmd, err := commands.NewAssignLockerCommand(kernel.NewUUID(), lockerID)
	require.NoError(t, err)

	testLocker := newAvailableLocker(t, lockerID)
	flipError := errors.New("update failed")

	lockerRepo := new(MockAssignLockerRepository)
	allocRepo := new(MockAssignAllocationRepository)
	store := new(MockAssignmentStore)

	mock.InOrder(
		store.On("LockerRepository").Return(lockerRepo).Once(),
		store.On("AllocationRepository").Return(allocRepo).Once(),
		lockerRepo.On("Get", ctx, lockerID).Return(testLocker, nil).Once(),
		allocRepo.On("Add", ctx, mock.AnythingOfType("*allocation.Allocation")).Return(nil).Once(),
		lockerRepo.On("Update", ctx, mock.AnythingOfType("*locker.Locker")).Return(flipError).Once(),
		store.On("AllocationRepository").Return(allocRepo).Once(),
		// The compensating delete runs on a detached context.
		allocRepo.On("Delete", mock.Anything, cmd.AllocationID()).Return(nil).Once(),
	)

	handler := commands.NewAssignLockerCommandHandler(store, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, flipError)
	assert.Contains(t, err.Error(), "assignment rolled back")
	lockerRepo.AssertExpectations(t)
	allocRepo.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestAssignLockerCommandHandler_Handle_RollbackFailureIsAFault(t *testing.T) {
	ctx := t.Context()
	lockerID := kernel.NewUUID()

	cmd, err := commands.NewAssignLockerCommand(kernel.NewUUID(), lockerID)
	require.NoError(t, err)

	testLocker := newAvailableLocker(t, lockerID)

	lockerRepo := new(MockAssignLockerRepository)
	allocRepo := new(MockAssignAllocationRepository)
	store := new(MockAssignmentStore)

	mock.InOrder(
		store.On("LockerRepository").Return(lockerRepo).Once(),
		store.On("AllocationRepository").Return(allocRepo).Once(),
		lockerRepo.On("Get", ctx, lockerID).Return(testLocker, nil).Once(),
		allocRepo.On("Add", ctx, mock.AnythingOfType("*allocation.Allocation")).Return(nil).Once(),
		lockerRepo.On("Update", ctx, mock.AnythingOfType("*locker.Locker")).
			Return(errors.New("update failed")).
			Once(),
		store.On("AllocationRepository").Return(allocRepo).Once(),
		allocRepo.On("Delete", mock.Anything, cmd.AllocationID()).
			Return(errors.New("delete failed")).
			Once(),
	)

	handler := commands.NewAssignLockerCommandHandler(store, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConsistencyFault)
	assert.Contains(t, err.Error(), "update failed")
	assert.Contains(t, err.Error(), "delete failed")
}

func TestAssignLockerCommandHandler_Handle_CancelledContextStillRollsBack(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel() // caller is already gone

	lockerID := kernel.NewUUID()
	cmd, err := commands.NewAssignLockerCommand(kernel.NewUUID(), lockerID)
	require.NoError(t, err)

	testLocker := newAvailableLocker(t, lockerID)

	lockerRepo := new(MockAssignLockerRepository)
	allocRepo := new(MockAssignAllocationRepository)
	store := new(MockAssignmentStore)

	mock.InOrder(
		store.On("LockerRepository").Return(lockerRepo).Once(),
		store.On("AllocationRepository").Return(allocRepo).Once(),
		lockerRepo.On("Get", ctx, lockerID).Return(testLocker, nil).Once(),
		allocRepo.On("Add", ctx, mock.AnythingOfType("*allocation.Allocation")).Return(nil).Once(),
		store.On("AllocationRepository").Return(allocRepo).Once(),
		allocRepo.On("Delete", mock.Anything, cmd.AllocationID()).Return(nil).Once(),
	)

	handler := commands.NewAssignLockerCommandHandler(store, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)

	// The flip never ran, and the allocation row was removed again.
	lockerRepo.AssertNotCalled(t, "Update")
	allocRepo.AssertExpectations(t)
}

func TestAssignLockerCommandHandler_Handle_VerifiesAllocationData(t *testing.T) {
	ctx := t.Context()
	registrationID := kernel.NewUUID()
	lockerID := kernel.NewUUID()

	cmd, err := commands.NewAssignLockerCommand(registrationID, lockerID)
	require.NoError(t, err)

	testLocker := newAvailableLocker(t, lockerID)

	var captured *allocation.Allocation
	lockerRepo := new(MockAssignLockerRepository)
	allocRepo := new(MockAssignAllocationRepository)
	store := new(MockAssignmentStore)

	mock.InOrder(
		store.On("LockerRepository").Return(lockerRepo).Once(),
		store.On("AllocationRepository").Return(allocRepo).Once(),
		lockerRepo.On("Get", ctx, lockerID).Return(testLocker, nil).Once(),
		allocRepo.On("Add", ctx, mock.MatchedBy(func(a *allocation.Allocation) bool {
			captured = a
			return true
		})).Return(nil).Once(),
		lockerRepo.On("Update", ctx, mock.AnythingOfType("*locker.Locker")).Return(nil).Once(),
	)

	handler := commands.NewAssignLockerCommandHandler(store, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, cmd.AllocationID(), captured.ID())
	assert.Equal(t, registrationID, captured.RegistrationID())
	assert.Equal(t, lockerID, captured.LockerID())
	require.NoError(t, captured.Validate())
}
