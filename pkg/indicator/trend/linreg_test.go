package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/indicator"
	"github.com/c9s/streamta/pkg/types"
)

func TestLinRegSlope(t *testing.T) {
	source := indicator.Identity("close")
	slope, err := LinRegSlope(source, 3)
	require.NoError(t, err)
	values := record(slope)

	var rejected []types.Status
	slope.OnReject(func(_ types.Sample, status types.Status) {
		rejected = append(rejected, status)
	})

	pushAll(source, 1, 3, 5, 7, 6)

	assert.Equal(t, []types.Status{types.StatusMathError}, rejected)
	require.Len(t, *values, 4)
	assert.InDelta(t, 2.0, (*values)[0], 1e-9)
	assert.InDelta(t, 2.0, (*values)[1], 1e-9)
	assert.InDelta(t, 2.0, (*values)[2], 1e-9)
	// 5, 7, 6
	assert.InDelta(t, 0.5, (*values)[3], 1e-9)
	assert.True(t, slope.IsReady())
}
