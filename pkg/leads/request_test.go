package leads

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDealValue(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"5000", 5000},
		{"  42 ", 42},
		{"12abc", 12},
		{"12.7", 12},
		{"-5", -5},
		{"+7", 7},
		{"abc", 0},
		{"", 0},
		{"-", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDealValue(tt.in))
		})
	}
}

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	t.Run("Success - number", func(t *testing.T) {
		var req CreateLeadRequest
		require.NoError(t, json.Unmarshal([]byte(`{"dealValue": 7500}`), &req))
		assert.Equal(t, FlexInt(7500), req.DealValue)
	})

	t.Run("Success - numeric string", func(t *testing.T) {
		var req CreateLeadRequest
		require.NoError(t, json.Unmarshal([]byte(`{"dealValue": "2500"}`), &req))
		assert.Equal(t, FlexInt(2500), req.DealValue)
	})

	t.Run("Success - garbage becomes zero", func(t *testing.T) {
		var req CreateLeadRequest
		require.NoError(t, json.Unmarshal([]byte(`{"dealValue": "lots"}`), &req))
		assert.Equal(t, FlexInt(0), req.DealValue)
	})

	t.Run("Success - null becomes zero", func(t *testing.T) {
		var req CreateLeadRequest
		require.NoError(t, json.Unmarshal([]byte(`{"dealValue": null}`), &req))
		assert.Equal(t, FlexInt(0), req.DealValue)
	})
}
