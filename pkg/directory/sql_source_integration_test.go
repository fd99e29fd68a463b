package directory

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration test against a real contacts database. Provide a DSN with a
// contacts table containing ("Alice", "+15551234567") to run it:
//
//	TEST_DIRECTORY_DSN="host=... dbname=..." go test ./pkg/directory/
func TestSQLSourceIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_DIRECTORY_DSN")
	if dsn == "" {
		t.Skip("TEST_DIRECTORY_DSN not set")
	}

	src, err := OpenSQLSource(dsn)
	require.NoError(t, err)
	defer src.Close()

	name, ok := src.ResolveName(context.Background(), "+15551234567")
	require.True(t, ok)
	assert.Equal(t, "Alice", name)

	// Normalized match: same number without the plus.
	name, ok = src.ResolveName(context.Background(), "15551234567")
	require.True(t, ok)
	assert.Equal(t, "Alice", name)

	_, ok = src.ResolveName(context.Background(), "+10000000000")
	assert.False(t, ok)
}
