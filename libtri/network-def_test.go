package libtri_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/2x3systems/gotri/gotri"
	"github.com/2x3systems/gotri/libtri"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const gameNetworkYAML = `
label: triangle game
regions:
  - {id: 1, value: 8,  vertices: [2, 3, 9]}
  - {id: 2, value: 3,  vertices: [9, 3, 4]}
  - {id: 3, value: 5,  vertices: [1, 2, 8]}
  - {id: 4, value: 2,  vertices: [2, 9, 10, 8]}
  - {id: 5, value: 4,  vertices: [9, 4, 10]}
  - {id: 6, value: 8,  vertices: [1, 8, 7]}
  - {id: 7, value: 10, vertices: [8, 10, 6, 7]}
  - {id: 8, value: 1,  vertices: [6, 10, 4]}
  - {id: 9, value: 9,  vertices: [6, 4, 5]}
lines:
  - [1, 2, 3]
  - [1, 8, 10, 4]
  - [1, 7, 6, 5]
  - [2, 8, 7]
  - [3, 9, 10, 6]
  - [2, 9, 4]
  - [3, 4, 5]
`

func TestParseNetwork(t *testing.T) {
	def, err := libtri.ParseNetwork(gameNetwork)
	require.NoError(t, err)
	require.Len(t, def.Regions, 9)
	require.Len(t, def.Lines, 7)
	require.Equal(t, libtri.RegionSpec{ID: 4, Value: 2, Vtx: V("2", "9", "10", "8")}, def.Regions[3])
	require.Equal(t, V("1", "8", "10", "4"), def.Lines[1])

	net, err := def.Build(gotri.DefaultNetworkOpts)
	require.NoError(t, err)
	require.Equal(t, gameTriangleCount, net.NumTriangles())
	require.Equal(t, int64(gameTriangleSum), net.TriangleSum())

	// named vertices and commas
	def, err = libtri.ParseNetwork("region 1 = 7 [alpha, beta, gamma] line [alpha beta delta]")
	require.NoError(t, err)
	require.Equal(t, V("alpha", "beta", "gamma"), def.Regions[0].Vtx)

	for _, bad := range []string{
		"region 1 = [1 2 3]",
		"region x = 1 [1 2 3]",
		"line 1 2 3",
		"polygon 1 = 1 [1 2 3]",
	} {
		_, err = libtri.ParseNetwork(bad)
		require.ErrorIs(t, err, gotri.ErrBadNetworkExpr, bad)
	}

	_, err = libtri.ParseNetwork("region 65 = 1 [1 2 3]")
	require.ErrorIs(t, err, gotri.ErrBadRegionID)

	// a malformed line is caught when the network is built
	def, err = libtri.ParseNetwork("region 1 = 1 [1 2 3] line [1 2]")
	require.NoError(t, err)
	_, err = def.Build(gotri.DefaultNetworkOpts)
	require.ErrorIs(t, err, gotri.ErrInvalidNetwork)
}

func TestParseNetworkYAML(t *testing.T) {
	def, err := libtri.ParseNetworkYAML([]byte(gameNetworkYAML))
	require.NoError(t, err)
	require.Equal(t, "triangle game", def.Label)

	ref, err := libtri.ParseNetwork(gameNetwork)
	require.NoError(t, err)
	require.Equal(t, ref.Regions, def.Regions)
	require.Equal(t, ref.Lines, def.Lines)

	net, err := def.Build(gotri.DefaultNetworkOpts)
	require.NoError(t, err)
	require.Equal(t, int64(gameTriangleSum), net.TriangleSum())

	// MarshalYAML output reads back the same
	out, err := yaml.Marshal(def)
	require.NoError(t, err)
	def2, err := libtri.ParseNetworkYAML(out)
	require.NoError(t, err)
	require.Equal(t, def, def2)

	_, err = libtri.ParseNetworkYAML([]byte("regions:\n  - {id: 1, value: 1, vertices: 3}\n"))
	require.ErrorIs(t, err, gotri.ErrBadNetworkExpr)
	_, err = libtri.ParseNetworkYAML([]byte("regions:\n  - {id: 0, value: 1, vertices: [1, 2, 3]}\n"))
	require.ErrorIs(t, err, gotri.ErrBadRegionID)
}

func TestLoadNetworkFile(t *testing.T) {
	dir := t.TempDir()

	triPath := filepath.Join(dir, "game.tri")
	require.NoError(t, os.WriteFile(triPath, []byte(gameNetwork), 0644))
	yamlPath := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(gameNetworkYAML), 0644))

	def, err := libtri.LoadNetworkFile(triPath)
	require.NoError(t, err)
	require.Equal(t, "game", def.Label)
	require.Len(t, def.Regions, 9)

	def, err = libtri.LoadNetworkFile(yamlPath)
	require.NoError(t, err)
	require.Equal(t, "triangle game", def.Label)

	_, err = libtri.LoadNetworkFile(filepath.Join(dir, "game.txt"))
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "game.json"), []byte("{}"), 0644))
	_, err = libtri.LoadNetworkFile(filepath.Join(dir, "game.json"))
	require.Error(t, err)
}
