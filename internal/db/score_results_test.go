package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalKeywords_NilBecomesEmptyArray(t *testing.T) {
	data, err := marshalKeywords(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestMarshalKeywords_RoundTrip(t *testing.T) {
	data, err := marshalKeywords([]string{"Python", "AWS"})
	require.NoError(t, err)

	keywords, err := unmarshalKeywords(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "AWS"}, keywords)
}

func TestUnmarshalKeywords_EmptyInput(t *testing.T) {
	keywords, err := unmarshalKeywords(nil)
	require.NoError(t, err)
	assert.NotNil(t, keywords)
	assert.Empty(t, keywords)
}

func TestUnmarshalKeywords_JSONNull(t *testing.T) {
	keywords, err := unmarshalKeywords([]byte("null"))
	require.NoError(t, err)
	assert.NotNil(t, keywords)
	assert.Empty(t, keywords)
}

func TestUnmarshalKeywords_InvalidJSON(t *testing.T) {
	_, err := unmarshalKeywords([]byte("{not json"))
	assert.Error(t, err)
}
