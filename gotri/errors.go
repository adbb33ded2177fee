package gotri

import "errors"

// Errors
var (
	ErrUnmarshal       = errors.New("unmarshal failed")
	ErrBadCatalogParam = errors.New("bad catalog param")
	ErrInvalidEdge     = errors.New("edge requires two distinct vertices")
	ErrEdgeNotFound    = errors.New("edge not found on region boundary")
	ErrInvalidNetwork  = errors.New("invalid structured network")
	ErrBadRegionID     = errors.New("bad base region ID")
	ErrNilRegion       = errors.New("nil region")
	ErrBadNetworkExpr  = errors.New("bad network expression")
)
