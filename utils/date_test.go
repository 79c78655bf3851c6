package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomDateJSON(t *testing.T) {
	var d CustomDate
	require.NoError(t, d.UnmarshalJSON([]byte(`"2024-01-15"`)))
	assert.Equal(t, "2024-01-15", d.String())

	out, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15"`, string(out))

	// Zero dates are null, not "0001-01-01".
	var zero CustomDate
	out, err = zero.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
	require.NoError(t, zero.UnmarshalJSON([]byte("null")))
	assert.True(t, zero.IsZero())

	assert.Error(t, d.UnmarshalJSON([]byte(`"15/01/2024"`)))
}

func TestCustomDateScan(t *testing.T) {
	var d CustomDate
	require.NoError(t, d.Scan(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-15", d.String())

	require.NoError(t, d.Scan("2024-02-01"))
	assert.Equal(t, "2024-02-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
