package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryMatches(t *testing.T) {
	assert.True(t, CategoryPizza.Matches(""))
	assert.True(t, CategoryPizza.Matches("all"))
	assert.True(t, CategoryPizza.Matches("All"))
	assert.True(t, CategoryPizza.Matches("pizza"))
	assert.False(t, CategoryPizza.Matches("Burgers"))
}

func TestCategoryIsValid(t *testing.T) {
	assert.True(t, CategoryDrinks.IsValid())
	assert.False(t, Category("Desserts").IsValid())
}

func TestParsePaymentMethod(t *testing.T) {
	m, ok := ParsePaymentMethod("Cash")
	assert.True(t, ok)
	assert.Equal(t, PaymentCash, m)

	m, ok = ParsePaymentMethod("Card")
	assert.True(t, ok)
	assert.Equal(t, PaymentCard, m)

	_, ok = ParsePaymentMethod("Bitcoin")
	assert.False(t, ok)
}

func TestPaymentMethodJSON(t *testing.T) {
	data, err := json.Marshal(PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, `"Card"`, string(data))

	var m PaymentMethod
	require.NoError(t, json.Unmarshal([]byte(`"Card"`), &m))
	assert.Equal(t, PaymentCard, m)

	// Legacy numeric encoding still decodes
	require.NoError(t, json.Unmarshal([]byte(`1`), &m))
	assert.Equal(t, PaymentCard, m)
}
