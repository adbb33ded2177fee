package gotri

import (
	"github.com/gogo/protobuf/proto"
)

// CatalogState mirrors the CatalogState message in gotri.proto.
type CatalogState struct {
	MajorVers    int32    `protobuf:"varint,1,opt,name=MajorVers,proto3" json:"MajorVers,omitempty"`
	MinorVers    int32    `protobuf:"varint,2,opt,name=MinorVers,proto3" json:"MinorVers,omitempty"`
	NumRegions   []uint64 `protobuf:"varint,3,rep,packed,name=NumRegions,proto3" json:"NumRegions,omitempty"`
	NumTriangles uint64   `protobuf:"varint,4,opt,name=NumTriangles,proto3" json:"NumTriangles,omitempty"`
	TriangleSum  int64    `protobuf:"varint,5,opt,name=TriangleSum,proto3" json:"TriangleSum,omitempty"`
	LibVersion   string   `protobuf:"bytes,6,opt,name=LibVersion,proto3" json:"LibVersion,omitempty"`
}

func (m *CatalogState) Reset()         { *m = CatalogState{} }
func (m *CatalogState) String() string { return proto.CompactTextString(m) }
func (*CatalogState) ProtoMessage()    {}

// RegionDef mirrors the RegionDef message in gotri.proto.
type RegionDef struct {
	Value   int64    `protobuf:"varint,1,opt,name=Value,proto3" json:"Value,omitempty"`
	Vtx     []string `protobuf:"bytes,2,rep,name=Vtx,proto3" json:"Vtx,omitempty"`
	Corners []string `protobuf:"bytes,3,rep,name=Corners,proto3" json:"Corners,omitempty"`
}

func (m *RegionDef) Reset()         { *m = RegionDef{} }
func (m *RegionDef) String() string { return proto.CompactTextString(m) }
func (*RegionDef) ProtoMessage()    {}

// MarshalRegionDef appends the wire encoding of def to buf.
func MarshalRegionDef(buf []byte, def *RegionDef) ([]byte, error) {
	pb := proto.NewBuffer(buf)
	if err := pb.Marshal(def); err != nil {
		return nil, err
	}
	return pb.Bytes(), nil
}

// UnmarshalRegionDef decodes a RegionDef previously written by MarshalRegionDef.
func UnmarshalRegionDef(val []byte, def *RegionDef) error {
	def.Reset()
	if err := proto.Unmarshal(val, def); err != nil {
		return ErrUnmarshal
	}
	return nil
}
