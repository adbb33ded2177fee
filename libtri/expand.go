package libtri

import (
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"
)

// expandAll grows compound regions level by level, starting from the base regions, until a level comes up empty.
func (net *StructuredNetwork) expandAll() error {
	level := append([]*Region(nil), net.regions...)

	for len(level) > 0 {
		net.levels = append(net.levels, level)
		net.compound = append(net.compound, level...)

		next, err := net.expandLevel(level)
		if err != nil {
			return err
		}
		klog.V(2).Infof("level %d: %d regions -> %d", len(net.levels), len(level), len(next))
		level = next
	}

	return nil
}

// expandLevel adds each adjacent base region to each region of the given level.
//
// Regions are expanded concurrently, but candidates are offered to the level's RegionSet in region order, so the
// first candidate for a given RegionID always wins regardless of the worker count.
func (net *StructuredNetwork) expandLevel(level []*Region) ([]*Region, error) {
	candidates := make([][]*Region, len(level))

	var g errgroup.Group
	g.SetLimit(net.opts.Workers)
	for i, R := range level {
		i, R := i, R
		g.Go(func() error {
			found, err := net.expandRegion(R)
			candidates[i] = found
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := net.newRegionSet()
	defer set.Close()

	var next []*Region
	for _, found := range candidates {
		for _, M := range found {
			if set.TryAdd(M) {
				next = append(next, M)
			}
		}
	}
	sortByID(next)
	return next, nil
}

// expandRegion merges R with every base region across each of its edges, in edge order then ascending ID.
func (net *StructuredNetwork) expandRegion(R *Region) ([]*Region, error) {
	var found []*Region
	for _, e := range R.Edges() {
		for _, N := range net.neighbors(e) {
			if R.ID.Intersects(N.ID) {
				continue
			}
			M, err := R.Merge(N)
			if err != nil {
				klog.Errorf("merging %v with %v: %v", R.ID, N.ID, err)
				return nil, err
			}
			if !M.IsNil() {
				found = append(found, M)
			}
		}
	}
	return found, nil
}

func (net *StructuredNetwork) newRegionSet() RegionSet {
	if net.opts.LSMDedupe {
		return NewLSMRegionSet()
	}
	return NewRegionSet()
}
