package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIFilterResponse_UnmarshalKeepsValidFields(t *testing.T) {
	var r AIFilterResponse
	require.NoError(t, json.Unmarshal([]byte(`{"types":"PG","amenities":["WiFi",3],"price_max":"cheap","price_min":5000,"rating":4}`), &r))

	assert.Nil(t, r.Types)
	assert.Equal(t, []string{"WiFi"}, r.Amenities)
	assert.Nil(t, r.PriceMax)
	require.NotNil(t, r.PriceMin)
	assert.Equal(t, 5000.0, *r.PriceMin)
	assert.JSONEq(t, `4`, string(r.Rating))
	assert.Equal(t, []string{`types:"PG"`, `amenities:3`, `price_max:"cheap"`}, r.Invalid)
}

func TestAIFilterResponse_UnmarshalNulls(t *testing.T) {
	var r AIFilterResponse
	require.NoError(t, json.Unmarshal([]byte(`{"types":null,"rating":null,"amenities":[]}`), &r))

	assert.Nil(t, r.Types)
	assert.Nil(t, r.Rating)
	assert.NotNil(t, r.Amenities)
	assert.Empty(t, r.Amenities)
	assert.Empty(t, r.Invalid)
}

func TestAIFilterResponse_UnmarshalRejectsNonObject(t *testing.T) {
	var r AIFilterResponse
	assert.Error(t, json.Unmarshal([]byte(`["PG"]`), &r))
	assert.Error(t, json.Unmarshal([]byte(`null`), &r))
}
