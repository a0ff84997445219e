package commands_test

import (
	"testing"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReleaseParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()

	cmd, err := commands.NewReleaseParcelCommand(parcelID, "https://storage.example/releases/p1.jpg")
	require.NoError(t, err)

	testParcel := newArrivedParcel(t, parcelID)

	parcelRepo := new(MockParcelRepository)
	store := new(MockParcelStore)

	mock.InOrder(
		store.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, parcelID).Return(testParcel, nil).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
	)

	handler := commands.NewReleaseParcelCommandHandler(store, commands.DefaultLifecyclePolicy())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Released, testParcel.Status())
	require.NotNil(t, testParcel.ReleaseProofURL())
	assert.Equal(t, "https://storage.example/releases/p1.jpg", *testParcel.ReleaseProofURL())
}

func TestReleaseParcelCommandHandler_Handle_DefaultPolicyForceReleases(t *testing.T) {
	// Without the precondition a disposed package can still be force-moved to
	// Released, covering admin correction of mishandled items.
	ctx := t.Context()
	parcelID := kernel.NewUUID()

	cmd, err := commands.NewReleaseParcelCommand(parcelID, "https://storage.example/releases/p1.jpg")
	require.NoError(t, err)

	testParcel := restoreParcelInStatus(t, parcelID, parcel.Disposed)

	parcelRepo := new(MockParcelRepository)
	store := new(MockParcelStore)

	mock.InOrder(
		store.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, parcelID).Return(testParcel, nil).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
	)

	handler := commands.NewReleaseParcelCommandHandler(store, commands.DefaultLifecyclePolicy())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Released, testParcel.Status())
}

func TestReleaseParcelCommandHandler_Handle_StrictPolicyRejectsWrongStatus(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()

	cmd, err := commands.NewReleaseParcelCommand(parcelID, "https://storage.example/releases/p1.jpg")
	require.NoError(t, err)

	testParcel := restoreParcelInStatus(t, parcelID, parcel.Disposed)

	parcelRepo := new(MockParcelRepository)
	store := new(MockParcelStore)

	mock.InOrder(
		store.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, parcelID).Return(testParcel, nil).Once(),
	)

	policy := commands.LifecyclePolicy{EnforceReleasePrecondition: true}
	handler := commands.NewReleaseParcelCommandHandler(store, policy)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceConflict)
	assert.Equal(t, parcel.Disposed, testParcel.Status())
	parcelRepo.AssertNotCalled(t, "Update")
}

func TestReleaseParcelCommandHandler_Handle_StrictPolicyAllowsRequestedRelease(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()

	cmd, err := commands.NewReleaseParcelCommand(parcelID, "https://storage.example/releases/p1.jpg")
	require.NoError(t, err)

	testParcel := restoreParcelInStatus(t, parcelID, parcel.ReleaseRequested)

	parcelRepo := new(MockParcelRepository)
	store := new(MockParcelStore)

	mock.InOrder(
		store.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, parcelID).Return(testParcel, nil).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
	)

	policy := commands.LifecyclePolicy{EnforceReleasePrecondition: true}
	handler := commands.NewReleaseParcelCommandHandler(store, policy)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Released, testParcel.Status())
}

func TestReleaseParcelCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()

	cmd, err := commands.NewReleaseParcelCommand(parcelID, "https://storage.example/releases/p1.jpg")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	store := new(MockParcelStore)

	mock.InOrder(
		store.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, parcelID).
			Return(nil, errs.NewObjectNotFoundError("parcelId", parcelID)).
			Once(),
	)

	handler := commands.NewReleaseParcelCommandHandler(store, commands.DefaultLifecyclePolicy())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewReleaseParcelCommand_EmptyProofURL(t *testing.T) {
	_, err := commands.NewReleaseParcelCommand(kernel.NewUUID(), "")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "proofURL is required")
}
