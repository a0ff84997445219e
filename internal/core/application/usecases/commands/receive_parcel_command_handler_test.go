package commands_test

import (
	"context"
	"errors"
	"testing"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) HardDelete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockParcelStore struct{ mock.Mock }

func (m *MockParcelStore) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func TestReceiveParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	registrationID := kernel.NewUUID()

	cmd, err := commands.NewReceiveParcelCommand(registrationID, "1Z999AA10123456784")
	require.NoError(t, err)

	var captured *parcel.Parcel
	parcelRepo := new(MockParcelRepository)
	store := new(MockParcelStore)

	mock.InOrder(
		store.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", ctx, mock.MatchedBy(func(p *parcel.Parcel) bool {
			captured = p
			return true
		})).Return(nil).Once(),
	)

	handler := commands.NewReceiveParcelCommandHandler(store)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, cmd.ParcelID(), captured.ID())
	assert.Equal(t, registrationID, captured.RegistrationID())
	assert.Equal(t, "1Z999AA10123456784", captured.TrackingNumber())
	assert.Equal(t, parcel.Arrived, captured.Status())
	assert.Nil(t, captured.ReleaseProofURL())
	assert.False(t, captured.IsArchived())
	require.NoError(t, captured.Validate())
}

func TestReceiveParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.ReceiveParcelCommand // not constructed properly

	store := new(MockParcelStore)
	handler := commands.NewReceiveParcelCommandHandler(store)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReceiveParcelCommandIsNotConstructed)
	store.AssertNotCalled(t, "ParcelRepository")
}

func TestReceiveParcelCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewReceiveParcelCommand(kernel.NewUUID(), "1Z999AA10123456784")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	store := new(MockParcelStore)

	mock.InOrder(
		store.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).
			Return(errors.New("insert failed")).
			Once(),
	)

	handler := commands.NewReceiveParcelCommandHandler(store)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "insert failed")
}
