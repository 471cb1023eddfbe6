package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate(" 2024-06-01 ")
	require.NoError(t, err)
	require.Equal(t, "2024-06-01", FormatDate(d))

	_, err = ParseDate("2024/06/01")
	require.Error(t, err)
}
