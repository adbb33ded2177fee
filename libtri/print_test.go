package libtri_test

import (
	"strings"
	"testing"

	"github.com/2x3systems/gotri/gotri"
	"github.com/stretchr/testify/require"
)

func TestWriteAsString(t *testing.T) {
	net := buildGame(t, gotri.DefaultNetworkOpts)

	str := net.String()
	require.Contains(t, str, "Base regions ({id} =value= *vertices*)\ncount = 9\n\n({1} =8= *2* *3* *9*)\n")
	require.Contains(t, str, "Multi edge straight lines -*vertices*-\ncount = 7\n\n-*1* *2* *3*-\n-*1* *10* *4* *8*-\n")
	require.Contains(t, str, "count = 18\n\n|*1* *2*| -> {3}\n|*1* *7*| -> {6}\n|*1* *8*| -> {3}{6}\n")
	require.Contains(t, str, "Compound regions ({id} =value= *vertices*)\ncount = 174\n")
	require.Contains(t, str, "Triangular Regions ({id} =value= *vertices*)\ncount = 22\n")
	require.Contains(t, str, "({1, 2, 3, 4, 5, 6, 7, 8, 9} =50= *7* *1* *2* *3* *4* *5* *6*)\n")
	require.True(t, strings.HasSuffix(str, "Sum of all the numbers in each triangular region = 301\n"))

	buf := strings.Builder{}
	net.WriteAsString(&buf, gotri.PrintOpts{
		Label:         "game",
		TrianglesOnly: true,
		Corners:       true,
	})
	str = buf.String()
	require.True(t, strings.HasPrefix(str, "game\n\nTriangular Regions"))
	require.NotContains(t, str, "Compound regions")
	require.NotContains(t, str, "Base regions")
	require.Contains(t, str, "({6, 7} =18= *1* *8* *10* *6* *7*) < *1* *10* *6* >\n")
	require.Contains(t, str, "= 301\n")

	buf.Reset()
	net.WriteAsString(&buf, gotri.PrintOpts{SkipTotals: true})
	require.Empty(t, buf.String())
}
