package libtri

import (
	"runtime"
	"sort"

	"github.com/2x3systems/gotri/gotri"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// StructuredNetwork is a planar subdivision into minimal regions plus the straight lines known to run through it.
//
// NewNetwork computes every compound region reachable by joining adjacent regions, identifies which of them are
// triangular, and sums their values.  A StructuredNetwork is read-only once built.
type StructuredNetwork struct {
	opts      gotri.NetworkOpts
	regions   []*Region // base regions, ascending ID
	lines     []*StraightLineSegment
	linesOf   map[VtxID][]*StraightLineSegment
	edgeIndex *redblacktree.Tree // Edge => []*Region (ascending ID)
	levels    [][]*Region
	compound  []*Region
	triangles []*Region
	triSum    int64
}

// EdgeEntry lists the base regions bordering an edge.
type EdgeEntry struct {
	Edge    Edge
	Regions []RegionID
}

// NewNetwork analyzes the given base regions and straight lines.
//
// The given regions are not modified; the network keeps its own copies.
func NewNetwork(regions []*Region, lines []*StraightLineSegment, opts gotri.NetworkOpts) (*StructuredNetwork, error) {
	for i, R := range regions {
		if R == nil {
			return nil, errors.Wrapf(gotri.ErrNilRegion, "region #%d", i+1)
		}
	}
	for i, line := range lines {
		if line == nil {
			return nil, errors.Wrapf(gotri.ErrInvalidNetwork, "straight line #%d is nil", i+1)
		}
	}

	if opts.Validate {
		if err := ValidateNetwork(regions, lines); err != nil {
			return nil, err
		}
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	net := &StructuredNetwork{
		opts:    opts,
		regions: make([]*Region, len(regions)),
		lines:   append([]*StraightLineSegment(nil), lines...),
		linesOf: make(map[VtxID][]*StraightLineSegment),
	}
	for i, R := range regions {
		net.regions[i] = R.clone()
	}
	sortByID(net.regions)

	for _, line := range net.lines {
		for _, v := range line.vtx {
			net.linesOf[v] = append(net.linesOf[v], line)
		}
	}

	net.buildEdgeIndex()

	if err := net.expandAll(); err != nil {
		return nil, err
	}
	if err := net.reduceAll(); err != nil {
		return nil, err
	}

	for _, R := range net.compound {
		if R.IsTriangular() {
			net.triangles = append(net.triangles, R)
			net.triSum += R.Value
		}
	}

	klog.V(1).Infof("network: %d regions, %d lines, %d edges, %d levels, %d compound regions, %d triangular (sum %d)",
		len(net.regions), len(net.lines), net.edgeIndex.Size(), len(net.levels), len(net.compound), len(net.triangles), net.triSum)

	return net, nil
}

func (net *StructuredNetwork) buildEdgeIndex() {
	net.edgeIndex = redblacktree.NewWith(EdgeComparator)

	for _, R := range net.regions {
		for _, e := range R.Edges() {
			var adjacent []*Region
			if found, exists := net.edgeIndex.Get(e); exists {
				adjacent = found.([]*Region)
			}
			net.edgeIndex.Put(e, append(adjacent, R))
		}
	}

	// net.regions is sorted, so each list is already in ascending ID order.
	if !net.opts.Validate {
		for it := net.edgeIndex.Iterator(); it.Next(); {
			if adjacent := it.Value().([]*Region); len(adjacent) > 2 {
				klog.Warningf("edge %v borders %d regions", it.Key(), len(adjacent))
			}
		}
	}
}

// neighbors returns the base regions bordering e in ascending ID order.
func (net *StructuredNetwork) neighbors(e Edge) []*Region {
	if found, exists := net.edgeIndex.Get(e); exists {
		return found.([]*Region)
	}
	return nil
}

func (net *StructuredNetwork) NumRegions() int {
	return len(net.regions)
}

// Regions returns the base regions in ascending ID order.
func (net *StructuredNetwork) Regions() []*Region {
	return append([]*Region(nil), net.regions...)
}

func (net *StructuredNetwork) Lines() []*StraightLineSegment {
	return append([]*StraightLineSegment(nil), net.lines...)
}

func (net *StructuredNetwork) NumEdges() int {
	return net.edgeIndex.Size()
}

// EdgeTable lists every edge of the network, in Edge.Compare order, with the ids of the regions bordering it.
func (net *StructuredNetwork) EdgeTable() []EdgeEntry {
	table := make([]EdgeEntry, 0, net.edgeIndex.Size())
	for it := net.edgeIndex.Iterator(); it.Next(); {
		entry := EdgeEntry{
			Edge: it.Key().(Edge),
		}
		for _, R := range it.Value().([]*Region) {
			entry.Regions = append(entry.Regions, R.ID)
		}
		table = append(table, entry)
	}
	return table
}

// Levels returns the compound regions grouped by expansion level.
// Level k holds the regions composed of k+1 base regions, in ascending ID order.
func (net *StructuredNetwork) Levels() [][]*Region {
	levels := make([][]*Region, len(net.levels))
	for i, level := range net.levels {
		levels[i] = append([]*Region(nil), level...)
	}
	return levels
}

func (net *StructuredNetwork) NumCompound() int {
	return len(net.compound)
}

// CompoundRegions returns every distinct region found (base regions included), in level then ID order.
func (net *StructuredNetwork) CompoundRegions() []*Region {
	return append([]*Region(nil), net.compound...)
}

// TriangularRegions returns the triangular compound regions, in level then ID order.
func (net *StructuredNetwork) TriangularRegions() []*Region {
	return append([]*Region(nil), net.triangles...)
}

func (net *StructuredNetwork) NumTriangles() int {
	return len(net.triangles)
}

// TriangleSum returns the sum of the values of all triangular compound regions.
func (net *StructuredNetwork) TriangleSum() int64 {
	return net.triSum
}

// Region returns the compound region with the given id, if it was found.
func (net *StructuredNetwork) Region(ID RegionID) (*Region, bool) {
	level := ID.NumParts() - 1
	if level < 0 || level >= len(net.levels) {
		return nil, false
	}
	regions := net.levels[level]
	i := sort.Search(len(regions), func(i int) bool {
		return regions[i].ID >= ID
	})
	if i < len(regions) && regions[i].ID == ID {
		return regions[i], true
	}
	return nil, false
}

func sortByID(regions []*Region) {
	sort.Slice(regions, func(i, j int) bool {
		return regions[i].ID < regions[j].ID
	})
}
