package libtri

import (
	"github.com/2x3systems/gotri/gotri"
)

// VtxID identifies a vertex of a structured network.
type VtxID = gotri.VtxID

// RegionID is the bitset of base regions that compose a Region.
type RegionID = gotri.RegionID

// RegionSet allows adding regions to an internal set and returning if a region with the same RegionID has already been added.
type RegionSet interface {

	// TryAdd adds the given region if a region with the same RegionID is not already present.
	//
	// If R's RegionID is already in this RegionSet, this call has no effect and TryAdd() returns false.
	// If R's RegionID isn't in this set, R is added and TryAdd() returns true.
	//
	// After one or more calls to TryAdd(), call Close() for cleanup.
	TryAdd(R *Region) bool

	// Close removes all previously added items from this set.
	Close()
}
