package commands_test

import (
	"testing"

	"delivery-order/internal/core/application/usecases/commands"
	"delivery-order/internal/core/domain/model/kernel"
	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderInput struct {
	product        order.Product
	transportation order.Transportation
	departure      kernel.Location
	sender         kernel.Participant
	destination    kernel.Location
	receiver       kernel.Participant
}

func validOrderInput(t *testing.T) orderInput {
	t.Helper()

	product, err := order.NewProduct(1, 2, 3, 4)
	require.NoError(t, err)
	transportation, err := order.NewTransportation(map[order.Mode]int{order.Car: 1})
	require.NoError(t, err)
	departure, err := kernel.NewLocation(0, 0, "")
	require.NoError(t, err)
	sender, err := kernel.NewParticipant("Kim", "01012345678")
	require.NoError(t, err)
	destination, err := kernel.NewLocation(37.5, 112, "")
	require.NoError(t, err)
	receiver, err := kernel.NewParticipant("Lee", "01087654321")
	require.NoError(t, err)

	return orderInput{product, transportation, departure, sender, destination, receiver}
}

func newCreateOrderCommand(wallet string, in orderInput) (commands.CreateOrderCommand, error) {
	return commands.NewCreateOrderCommand(wallet, "detail", in.product, in.transportation,
		in.departure, in.sender, in.destination, in.receiver)
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	in := validOrderInput(t)

	cmd, err := newCreateOrderCommand("0xabc", in)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, kernel.WalletAddress("0xabc"), cmd.WalletAddress())
	assert.Equal(t, "detail", cmd.Detail())
	assert.Equal(t, in.product, cmd.Product())
	assert.Equal(t, in.departure, cmd.Departure())
	assert.Equal(t, in.receiver, cmd.Receiver())
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	in := validOrderInput(t)
	in.sender = kernel.Participant{}
	in.destination = kernel.Location{}

	_, err := newCreateOrderCommand("", in)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, kernel.ErrParticipantIsNotConstructed)
	require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
}

func TestCreateOrderCommand_ZeroValue(t *testing.T) {
	require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
