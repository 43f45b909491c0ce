package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"RFC3339", `"2026-04-05T08:00:00.000Z"`, time.Date(2026, 4, 5, 8, 0, 0, 0, time.UTC)},
		{"Naive Date Time", `"2026-04-05T08:00:00"`, time.Date(2026, 4, 5, 8, 0, 0, 0, time.UTC)},
		{"Space Separated", `"2026-04-05 08:00:00"`, time.Date(2026, 4, 5, 8, 0, 0, 0, time.UTC)},
		{"Date Only", `"2026-04-05"`, time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)},
		{"Null", `null`, time.Time{}},
		{"Empty", `""`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run("Success - "+tt.name, func(t *testing.T) {
			// Act
			var ts models.Timestamp
			err := json.Unmarshal([]byte(tt.input), &ts)

			// Assert
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(ts.Time), "got %s", ts.Time)
		})
	}

	t.Run("Failure - Unknown Format", func(t *testing.T) {
		var ts models.Timestamp
		err := json.Unmarshal([]byte(`"April 5th"`), &ts)

		assert.Error(t, err)
	})

	t.Run("Failure - Not A String", func(t *testing.T) {
		var ts models.Timestamp
		err := json.Unmarshal([]byte(`1712304000`), &ts)

		assert.Error(t, err)
	})
}

func TestSpecialDecode(t *testing.T) {
	// Arrange
	body := `{"id":9,"name":"Easter","start":"2026-04-01","end":"2026-04-05 12:00:00","active":true,"products":[{"id":40,"title":"Hot Cross Buns","price":2.25,"typeId":5}]}`

	// Act
	var special models.Special
	err := json.Unmarshal([]byte(body), &special)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2026, special.Start.Year())
	assert.Equal(t, 12, special.End.Hour())
	assert.True(t, special.Contains(40))
	assert.False(t, special.Contains(41))
	assert.Equal(t, "2.25", special.Products[0].Price.String())
}

func TestProductPricing(t *testing.T) {
	t.Run("Success - Special Price Wins", func(t *testing.T) {
		var p models.Product
		require.NoError(t, json.Unmarshal([]byte(`{"id":1,"price":5,"special_price":4.5}`), &p))

		assert.Equal(t, "4.5", p.BasePrice().String())
		assert.False(t, p.HasOptions())
	})

	t.Run("Success - Zero Special Price Still Wins", func(t *testing.T) {
		var p models.Product
		require.NoError(t, json.Unmarshal([]byte(`{"id":1,"price":5,"special_price":0}`), &p))

		assert.True(t, p.BasePrice().IsZero())
	})
}
