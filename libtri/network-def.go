package libtri

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/2x3systems/gotri/gotri"
	"github.com/pkg/errors"
)

// NetworkDef is the declarative form of a structured network, as read from a .tri or .yaml file.
type NetworkDef struct {
	Label   string
	Regions []RegionSpec
	Lines   [][]VtxID
}

// RegionSpec declares base region number ID (1..gotri.MaxRegionID).
type RegionSpec struct {
	ID    int
	Value int64
	Vtx   []VtxID
}

// Build constructs the base regions and straight lines of def and analyzes them.
func (def *NetworkDef) Build(opts gotri.NetworkOpts) (*StructuredNetwork, error) {
	regions := make([]*Region, 0, len(def.Regions))
	for _, rs := range def.Regions {
		R, err := NewBaseRegion(rs.ID, rs.Value, rs.Vtx...)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: region %d", def.Label, rs.ID)
		}
		regions = append(regions, R)
	}

	lines := make([]*StraightLineSegment, 0, len(def.Lines))
	for _, vtx := range def.Lines {
		line, err := NewStraightLineSegment(vtx...)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", def.Label)
		}
		lines = append(lines, line)
	}

	return NewNetwork(regions, lines, opts)
}

// LoadNetworkFile reads a network definition, choosing the format from the file extension (.tri, .yaml, .yml).
func LoadNetworkFile(pathname string) (*NetworkDef, error) {
	buf, err := os.ReadFile(pathname)
	if err != nil {
		return nil, err
	}

	var def *NetworkDef
	switch ext := strings.ToLower(filepath.Ext(pathname)); ext {
	case ".tri":
		def, err = ParseNetwork(string(buf))
	case ".yaml", ".yml":
		def, err = ParseNetworkYAML(buf)
	default:
		err = errors.Errorf("unrecognized network file type %q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", pathname)
	}

	if def.Label == "" {
		base := filepath.Base(pathname)
		def.Label = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return def, nil
}
