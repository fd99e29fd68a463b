package reconciler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesSchedule(t *testing.T) {
	r, err := New(nil, "*/5 * * * *")
	require.NoError(t, err)
	assert.NotNil(t, r)

	_, err = New(nil, "every five minutes")
	assert.Error(t, err)
}
