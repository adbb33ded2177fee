package libtri_test

import (
	"testing"

	"github.com/2x3systems/gotri/gotri"
	"github.com/2x3systems/gotri/libtri"
	"github.com/stretchr/testify/require"
)

func TestStraightLineSegment(t *testing.T) {
	line, err := libtri.NewStraightLineSegment(V("1", "8", "10", "4")...)
	require.NoError(t, err)
	require.Equal(t, 4, line.NumVerts())
	require.Equal(t, V("1", "10", "4", "8"), line.Vertices())
	require.Equal(t, "-*1* *10* *4* *8*-", line.String())

	require.True(t, line.Contains("10"))
	require.False(t, line.Contains("2"))
	require.True(t, line.ContainsAll(V("4", "1", "8")...))
	require.False(t, line.ContainsAll(V("4", "1", "9")...))
	require.True(t, line.ContainsAll())

	// callers may not alter the line through Vertices
	vtx := line.Vertices()
	vtx[0] = "x"
	require.True(t, line.Contains("1"))

	// repeated vertices collapse
	line, err = libtri.NewStraightLineSegment(V("a", "b", "a", "c")...)
	require.NoError(t, err)
	require.Equal(t, V("a", "b", "c"), line.Vertices())

	for _, bad := range [][]gotri.VtxID{
		nil,
		V("a", "b"),
		V("a", "b", "a", "b"),
	} {
		_, err = libtri.NewStraightLineSegment(bad...)
		require.ErrorIs(t, err, gotri.ErrInvalidNetwork, "%v", bad)
	}

	require.Panics(t, func() {
		libtri.MustStraightLineSegment(V("a", "a", "a")...)
	})
}
