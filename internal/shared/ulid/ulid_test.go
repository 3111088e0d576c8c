package ulid

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunID(t *testing.T) {
	first := NewRunID()
	second := NewRunID()

	_, err := ulid.ParseStrict(first)
	require.NoError(t, err)
	assert.Len(t, first, 26)
	assert.NotEqual(t, first, second)
}
