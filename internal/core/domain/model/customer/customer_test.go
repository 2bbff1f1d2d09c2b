package customer_test

import (
	"testing"

	"courier/internal/core/domain/model/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c := customer.NewCustomer("Ann", "555-0100")

	require.NoError(t, c.Validate())
	assert.Equal(t, "Ann", c.Name())
	assert.Equal(t, "555-0100", c.Contact())
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("empty fields are still a constructed customer", func(t *testing.T) {
		require.NoError(t, customer.NewCustomer("", "").Validate())
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		var c customer.Customer

		assert.Equal(t, customer.ErrCustomerIsNotConstructed, c.Validate())
	})
}
