package libtri_test

import (
	"sort"
	"testing"

	"github.com/2x3systems/gotri/gotri"
	"github.com/2x3systems/gotri/libtri"
	"github.com/stretchr/testify/require"
)

// gameNetwork is the 9 region network (with its 7 straight lines) used throughout these tests.
//
//	region 1 = 8 [2 3 9]       region 6 = 8 [1 8 7]
//	region 2 = 3 [9 3 4]       region 7 = 10 [8 10 6 7]
//	region 3 = 5 [1 2 8]       region 8 = 1 [6 10 4]
//	region 4 = 2 [2 9 10 8]    region 9 = 9 [6 4 5]
//	region 5 = 4 [9 4 10]
const gameNetwork = `
# base regions
region 1 = 8  [2 3 9]
region 2 = 3  [9 3 4]
region 3 = 5  [1 2 8]
region 4 = 2  [2 9 10 8]
region 5 = 4  [9 4 10]
region 6 = 8  [1 8 7]
region 7 = 10 [8 10 6 7]
region 8 = 1  [6 10 4]
region 9 = 9  [6 4 5]

# straight lines
line [1 2 3]
line [1 8 10 4]
line [1 7 6 5]
line [2 8 7]
line [3 9 10 6]
line [2 9 4]
line [3 4 5]
`

const (
	gameTriangleCount = 22
	gameTriangleSum   = 301
	gameCompoundCount = 174
	gameEdgeCount     = 18
)

var gameLevelSizes = []int{9, 11, 19, 30, 39, 35, 22, 8, 1}

// gameTriangles lists the base regions of each triangular region of gameNetwork.
var gameTriangles = [][]int{
	{1}, {2}, {3}, {5}, {6}, {8}, {9},
	{1, 2}, {2, 5}, {4, 5}, {3, 6}, {6, 7}, {5, 8},
	{1, 3, 4}, {3, 4, 5}, {2, 5, 8}, {6, 7, 8},
	{2, 5, 8, 9}, {6, 7, 8, 9},
	{1, 2, 3, 4, 5}, {1, 3, 4, 6, 7},
	{1, 2, 3, 4, 5, 6, 7, 8, 9},
}

func V(ids ...string) []gotri.VtxID {
	vtx := make([]gotri.VtxID, len(ids))
	for i, id := range ids {
		vtx[i] = gotri.VtxID(id)
	}
	return vtx
}

func ID(members ...int) gotri.RegionID {
	var ID gotri.RegionID
	for _, n := range members {
		ID |= gotri.BaseRegionID(n)
	}
	return ID
}

func gameRegions() []*libtri.Region {
	return []*libtri.Region{
		libtri.MustBaseRegion(1, 8, V("2", "3", "9")...),
		libtri.MustBaseRegion(2, 3, V("9", "3", "4")...),
		libtri.MustBaseRegion(3, 5, V("1", "2", "8")...),
		libtri.MustBaseRegion(4, 2, V("2", "9", "10", "8")...),
		libtri.MustBaseRegion(5, 4, V("9", "4", "10")...),
		libtri.MustBaseRegion(6, 8, V("1", "8", "7")...),
		libtri.MustBaseRegion(7, 10, V("8", "10", "6", "7")...),
		libtri.MustBaseRegion(8, 1, V("6", "10", "4")...),
		libtri.MustBaseRegion(9, 9, V("6", "4", "5")...),
	}
}

func gameLines() []*libtri.StraightLineSegment {
	return []*libtri.StraightLineSegment{
		libtri.MustStraightLineSegment(V("1", "2", "3")...),
		libtri.MustStraightLineSegment(V("1", "8", "10", "4")...),
		libtri.MustStraightLineSegment(V("1", "7", "6", "5")...),
		libtri.MustStraightLineSegment(V("2", "8", "7")...),
		libtri.MustStraightLineSegment(V("3", "9", "10", "6")...),
		libtri.MustStraightLineSegment(V("2", "9", "4")...),
		libtri.MustStraightLineSegment(V("3", "4", "5")...),
	}
}

func buildGame(t *testing.T, opts gotri.NetworkOpts) *libtri.StructuredNetwork {
	net, err := libtri.NewNetwork(gameRegions(), gameLines(), opts)
	require.NoError(t, err)
	return net
}

func regionIDs(regions []*libtri.Region) []gotri.RegionID {
	ids := make([]gotri.RegionID, len(regions))
	for i, R := range regions {
		ids[i] = R.ID
	}
	return ids
}

func sortedIDs(members [][]int) []gotri.RegionID {
	ids := make([]gotri.RegionID, len(members))
	for i, m := range members {
		ids[i] = ID(m...)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// cyclicEqual returns true if b is a rotation of a.
func cyclicEqual(a, b []gotri.VtxID) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	for shift := range a {
		match := true
		for i := range a {
			if a[(i+shift)%len(a)] != b[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
