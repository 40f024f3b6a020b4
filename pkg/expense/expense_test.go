package expense

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendsight/spendsight/pkg/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := Expense{
		Description: "Coffee",
		Amount:      decimal.NewFromFloat(3.50),
		Category:    "Food",
		Date:        time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, valid.Validate())

	long := valid
	long.Description = strings.Repeat("x", 201)
	assert.Error(t, long.Validate())

	atLimit := valid
	atLimit.Description = strings.Repeat("x", 200)
	assert.NoError(t, atLimit.Validate())
}

func TestFromWire_AcceptsDateAndTimestamp(t *testing.T) {
	date, err := parseWireDate("2024-03-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC), date)

	stamp, err := parseWireDate("2024-03-12T09:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 12, 9, 30, 0, 0, time.UTC), stamp)
}

func TestFromWire_InvalidDate(t *testing.T) {
	_, err := FromWire(backend.Expense{ID: "e1", Description: "Coffee", Amount: 3.50, Category: "Food", Date: "12/03/2024"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "e1")
}
