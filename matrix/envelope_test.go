package matrix_test

import (
	"testing"

	"github.com/katalvlaran/polytope/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRowExtrema_Envelope verifies the per-row min/max reduction against
// hand-computed values, including negative entries.
func TestRowExtrema_Envelope(t *testing.T) {
	m, err := matrix.FromRows([][]float64{
		{0, 1, -2},
		{5, 5, 5},
		{-1, 3, 0},
	})
	require.NoError(t, err)

	min, max, err := m.RowExtrema()
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 5, -1}, min)
	assert.Equal(t, []float64{1, 5, 3}, max)
}

// TestRowExtrema_SingleColumn verifies the degenerate K=1 case where
// min and max coincide with the column itself.
func TestRowExtrema_SingleColumn(t *testing.T) {
	m, err := matrix.FromColumn([]float64{2, -4})
	require.NoError(t, err)

	min, max, err := m.RowExtrema()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, -4}, min)
	assert.Equal(t, []float64{2, -4}, max)
}

// TestRowExtrema_NilReceiver verifies the nil guard.
func TestRowExtrema_NilReceiver(t *testing.T) {
	var m *matrix.Dense
	_, _, err := m.RowExtrema()
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
