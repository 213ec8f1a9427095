package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPlaceOrderCommand(t *testing.T) commands.PlaceOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), "Anna Kovacs", "01711112222", "12 Rose Lane",
		"TS-BLK", "M", 2, decimal.NewFromInt(450), "cod", "leave at door")
	require.NoError(t, err)
	return cmd
}

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	cmd := validPlaceOrderCommand(t)

	assert.Equal(t, "Anna Kovacs", cmd.CustomerName())
	assert.Equal(t, "01711112222", cmd.Mobile())
	assert.Equal(t, "TS-BLK", cmd.SKU())
	assert.Equal(t, "M", cmd.Size())
	assert.Equal(t, 2, cmd.Quantity())
	assert.True(t, decimal.NewFromInt(450).Equal(cmd.UnitPrice()))
	assert.Equal(t, "cod", cmd.PaymentMethod())
	assert.Equal(t, "leave at door", cmd.Note())
	require.NoError(t, cmd.Validate())
}

func TestNewPlaceOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.UUID{}, "Anna", "017", "addr", "TS", "", 1, decimal.NewFromInt(1), "cod", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPlaceOrderCommand_RequiredFields(t *testing.T) {
	id := kernel.NewUUID()
	price := decimal.NewFromInt(100)

	tests := []struct {
		name string
		err  error
		make func() error
	}{
		{"customer name", commands.ErrCustomerNameIsRequired, func() error {
			_, err := commands.NewPlaceOrderCommand(id, "", "017", "addr", "TS", "", 1, price, "cod", "")
			return err
		}},
		{"mobile", commands.ErrMobileIsRequired, func() error {
			_, err := commands.NewPlaceOrderCommand(id, "Anna", "", "addr", "TS", "", 1, price, "cod", "")
			return err
		}},
		{"address", commands.ErrAddressIsRequired, func() error {
			_, err := commands.NewPlaceOrderCommand(id, "Anna", "017", "", "TS", "", 1, price, "cod", "")
			return err
		}},
		{"sku", commands.ErrSKUIsRequired, func() error {
			_, err := commands.NewPlaceOrderCommand(id, "Anna", "017", "addr", "", "", 1, price, "cod", "")
			return err
		}},
		{"payment method", commands.ErrPaymentMethodIsRequired, func() error {
			_, err := commands.NewPlaceOrderCommand(id, "Anna", "017", "addr", "TS", "", 1, price, "", "")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.make()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewPlaceOrderCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), "Anna", "017", "addr", "TS", "", 0, decimal.NewFromInt(1), "cod", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestNewPlaceOrderCommand_NegativeUnitPrice(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), "Anna", "017", "addr", "TS", "", 1, decimal.NewFromInt(-1), "cod", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUnitPriceIsInvalid)
}

func TestPlaceOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.PlaceOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}
