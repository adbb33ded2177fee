package libtri

import (
	"github.com/2x3systems/gotri/gotri"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type networkYAML struct {
	Label   string       `yaml:"label,omitempty"`
	Regions []regionYAML `yaml:"regions"`
	Lines   []vtxList    `yaml:"lines"`
}

type regionYAML struct {
	ID       int     `yaml:"id"`
	Value    int64   `yaml:"value"`
	Vertices vtxList `yaml:"vertices,flow"`
}

// vtxList reads a sequence of scalars (ints or names) as vertex ids.
type vtxList []VtxID

func (vl *vtxList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return errors.Errorf("line %d: expected a list of vertices", node.Line)
	}
	vtx := make(vtxList, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return errors.Errorf("line %d: expected a vertex id", item.Line)
		}
		vtx = append(vtx, VtxID(item.Value))
	}
	*vl = vtx
	return nil
}

// ParseNetworkYAML reads a network definition of the form:
//
//	label: example
//	regions:
//	  - {id: 1, value: 8, vertices: [2, 3, 9]}
//	lines:
//	  - [1, 2, 3]
func ParseNetworkYAML(buf []byte) (*NetworkDef, error) {
	var doc networkYAML
	if err := yaml.Unmarshal(buf, &doc); err != nil {
		return nil, errors.Wrap(gotri.ErrBadNetworkExpr, err.Error())
	}

	def := &NetworkDef{
		Label:   doc.Label,
		Regions: make([]RegionSpec, 0, len(doc.Regions)),
		Lines:   make([][]VtxID, 0, len(doc.Lines)),
	}
	for _, R := range doc.Regions {
		if gotri.BaseRegionID(R.ID) == 0 {
			return nil, errors.Wrapf(gotri.ErrBadRegionID, "region %d", R.ID)
		}
		def.Regions = append(def.Regions, RegionSpec{
			ID:    R.ID,
			Value: R.Value,
			Vtx:   R.Vertices,
		})
	}
	for _, line := range doc.Lines {
		def.Lines = append(def.Lines, line)
	}
	return def, nil
}

// MarshalYAML renders def in the form read by ParseNetworkYAML.
func (def *NetworkDef) MarshalYAML() (interface{}, error) {
	doc := networkYAML{
		Label: def.Label,
	}
	for _, rs := range def.Regions {
		doc.Regions = append(doc.Regions, regionYAML{
			ID:       rs.ID,
			Value:    rs.Value,
			Vertices: rs.Vtx,
		})
	}
	for _, line := range def.Lines {
		doc.Lines = append(doc.Lines, line)
	}
	return doc, nil
}
