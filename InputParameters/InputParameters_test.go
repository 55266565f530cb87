package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveletParameters(t *testing.T) {
	fileInput := []byte(`
Title: Test Case
Order: 6
GridSize: 10000
Wavelet: true # psi instead of phi
Output: db6_psi.grid
Format: msgpack
`)
	var input WaveletParameters
	require.NoError(t, input.Parse(fileInput))
	assert.Equal(t, "Test Case", input.Title)
	assert.Equal(t, 6, input.Order)
	assert.Equal(t, 10000, input.GridSize)
	assert.True(t, input.Wavelet)
	assert.Equal(t, "db6_psi.grid", input.Output)
	assert.Equal(t, "msgpack", input.Format)
	input.Print()

	var partial WaveletParameters
	require.NoError(t, partial.Parse([]byte("Order: 3\n")))
	assert.Equal(t, 3, partial.Order)
	assert.False(t, partial.Wavelet)
	assert.Equal(t, "", partial.Format)

	assert.Error(t, partial.Parse([]byte("Order: [1, 2")))
}
