package gotri

import (
	"math/bits"
	"strconv"
	"strings"
)

const (

	// MaxRegionID is the max possible base region number (a one-based index into a RegionID bitset).
	MaxRegionID = 64

	// LibVersion is reported by the catalog state and the scripting module.
	LibVersion = "v1.2022.1"
)

// Flags stored in the UserMeta byte of a catalog entry.
const (
	Flag_IsTriangular byte = 1 << iota
)

// VtxID is an opaque vertex identifier.
//
// VtxIDs are compared by equality only; lexical order is used solely for deterministic tie-breaks.
type VtxID string

// RegionID is the set of base regions a region is composed of, stored as a bitset.
// Base region n (one-based) occupies bit n-1, so a base region has exactly one bit set.
type RegionID uint64

// BaseRegionID returns the RegionID of base region n (1..MaxRegionID), or 0 if n is out of range.
func BaseRegionID(n int) RegionID {
	if n < 1 || n > MaxRegionID {
		return 0
	}
	return RegionID(1) << uint(n-1)
}

// NumParts returns the number of base regions composing this id.
func (id RegionID) NumParts() int {
	return bits.OnesCount64(uint64(id))
}

// IsBase returns true if this id denotes exactly one base region.
func (id RegionID) IsBase() bool {
	return id != 0 && id&(id-1) == 0
}

func (id RegionID) Union(other RegionID) RegionID {
	return id | other
}

func (id RegionID) Intersects(other RegionID) bool {
	return id&other != 0
}

// Members returns the base region numbers of this id in ascending order.
func (id RegionID) Members() []int {
	members := make([]int, 0, id.NumParts())
	for bitset := uint64(id); bitset != 0; bitset &= bitset - 1 {
		members = append(members, bits.TrailingZeros64(bitset)+1)
	}
	return members
}

// String renders this id as a set literal, e.g. "{1, 3}".
func (id RegionID) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, n := range id.Members() {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.Itoa(n))
	}
	buf.WriteByte('}')
	return buf.String()
}

// RegionInfo is a summary of a region used for selection.
type RegionInfo struct {
	NumParts   int // number of base regions composing the region
	NumVerts   int // boundary vertex count
	NumCorners int // vertex count of the boundary after collinear vertices are collapsed
}

// RegionSelector is an operator that either selects a given region or not.
type RegionSelector struct {
	TriangularOnly bool       // Only select triangular regions
	Min            RegionInfo // lower select bounds
	Max            RegionInfo // upper select bounds
}

// DefaultRegionSelector selects all regions.
var DefaultRegionSelector = RegionSelector{
	Min: RegionInfo{
		NumParts: 1,
	},
	Max: RegionInfo{
		NumParts:   MaxRegionID,
		NumVerts:   1 << 20,
		NumCorners: 1 << 20,
	},
}

// SelectsRegion is a convenience function used to see if a region is selected according to a RegionSelector.
func (sel *RegionSelector) SelectsRegion(R RegionState) bool {
	if sel.TriangularOnly && !R.IsTriangular() {
		return false
	}
	info := R.GetInfo()
	if info.NumParts < sel.Min.NumParts || info.NumVerts < sel.Min.NumVerts || info.NumCorners < sel.Min.NumCorners {
		return false
	}
	if info.NumParts > sel.Max.NumParts || info.NumVerts > sel.Max.NumVerts || info.NumCorners > sel.Max.NumCorners {
		return false
	}
	return true
}

// RegionState is the read-only view of an analyzed region.
type RegionState interface {
	RegionID() RegionID
	RegionValue() int64
	Boundary() []VtxID
	Corners() []VtxID
	IsTriangular() bool
	GetInfo() RegionInfo
}

// NetworkOpts specifies how a structured network is analyzed.
type NetworkOpts struct {
	Workers   int  // number of goroutines used per expansion level (0 denotes runtime.NumCPU())
	Validate  bool // if set, malformed input fails with ErrInvalidNetwork
	LSMDedupe bool // if set, compound regions are deduped with an in-memory LSM set rather than a map
}

var DefaultNetworkOpts = NetworkOpts{
	Validate: true,
}

// PrintOpts specifies what is printed when rendering a network or region.
type PrintOpts struct {
	Label         string // Prefix label
	Regions       bool   // If set, base regions and straight lines are printed
	Edges         bool   // If set, the edge table is printed
	Compound      bool   // If set, every compound region is printed
	Corners       bool   // If set, the corners of each printed region are appended
	TrianglesOnly bool   // If set, only triangular compound regions are printed
	SkipTotals    bool   // If set, the triangular count and sum are omitted
}

// DefaultPrintOpts{}
var DefaultPrintOpts = PrintOpts{
	Regions:  true,
	Edges:    true,
	Compound: true,
}

// OnRegionHit is a channel used to return regions meeting a set of selection criteria.
// Ownership of a region also travels through the channel.
type OnRegionHit chan<- RegionState

// CatalogContext is a container for open / active Catalog instances.
type CatalogContext interface {

	// Attaches the given Catalog to this context.
	AttachCatalog(cat Catalog)

	// Detaches the given Catalog from this context.
	DetachCatalog(cat Catalog)

	// Closes all open catalogs to be closed then closes.
	Close()

	// Signals when Close() completed and all open Catalogs have been closed
	Done() <-chan struct{}
}

// CatalogOpts specifies params for opening a region Catalog
type CatalogOpts struct {
	DbPathName string // omit for in-memory db
	ReadOnly   bool   // open in read-only mode
}

type RegionAdder interface {

	// Tries to add the given region to this catalog.
	// If true is returned, R did not exist and was added.
	TryAddRegion(R RegionState) bool
}

// Catalog wraps a database of analyzed regions keyed by RegionID.
type Catalog interface {
	RegionAdder

	// Returns true if this catalog was opened for read-only access.
	IsReadOnly() bool

	// NumRegions returns the number of regions in this catalog composed of the given number of base regions.
	// An out of bounds part count returns 0.
	NumRegions(forNumParts int) int64

	// NumTriangles returns the number of triangular regions in this catalog.
	NumTriangles() int64

	// TriangleSum returns the sum of values of all triangular regions in this catalog.
	TriangleSum() int64

	// Select sends each region that meets the selection criteria to onHit.
	Select(sel RegionSelector, onHit OnRegionHit)

	Close() error
}
