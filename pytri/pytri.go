package pytri

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/2x3systems/gotri/gotri"
	"github.com/2x3systems/gotri/libtri"
	"github.com/2x3systems/gotri/libtri/catalog"
	"github.com/go-python/gpython/py"
)

var (
	pyNetworkType      = py.NewType("Network", "a structured network of base regions and straight lines")
	pyRegionStreamType = py.NewType("RegionStream", "libtri.RegionStream")
	pyCatalogType      = py.NewType("Catalog", "gotri.Catalog")
	pyWorkspaceType    = py.NewType("Workspace", "collects active session resources and catalogs")
)

const (
	READ_ONLY = 0x01

	kWorkspaceAttr = "_Workspace"
)

type pyNetwork struct {
	*libtri.StructuredNetwork
}

func (X pyNetwork) Type() *py.Type {
	return pyNetworkType
}

func (X pyNetwork) M__str__() (py.Object, error) {
	writer := strings.Builder{}
	X.WriteAsString(&writer, gotri.DefaultPrintOpts)
	return py.String(writer.String()), nil
}

func (X pyNetwork) M__repr__() (py.Object, error) {
	return py.String(fmt.Sprintf("<Network regions=%d triangles=%d sum=%d>",
		X.NumRegions(), X.NumTriangles(), X.TriangleSum())), nil
}

func buildNetwork(def *libtri.NetworkDef) (py.Object, error) {
	net, err := def.Build(gotri.DefaultNetworkOpts)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Object(pyNetwork{net}), nil
}

// Arg 1 (str): network expression, e.g. "region 1 = 8 [2 3 9] ..."
func py_NewNetwork(module py.Object, args py.Tuple) (py.Object, error) {
	var expr string
	err := py.LoadTuple(args, []interface{}{&expr})
	if err != nil {
		return nil, err
	}

	def, err := libtri.ParseNetwork(expr)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return buildNetwork(def)
}

// Arg 1 (str): pathname of a .tri or .yaml network file
func py_LoadNetwork(module py.Object, args py.Tuple) (py.Object, error) {
	var pathname string
	err := py.LoadTuple(args, []interface{}{&pathname})
	if err != nil {
		return nil, err
	}

	def, err := libtri.LoadNetworkFile(pathname)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, py.ExceptionNewf(py.FileNotFoundError, "%v", err)
		}
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return buildNetwork(def)
}

func py_Network_Sum(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyNetwork)
	return py.Object(py.Int(X.TriangleSum())), nil
}

func py_Network_NumTriangles(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyNetwork)
	return py.Object(py.Int(X.NumTriangles())), nil
}

func py_Network_NumRegions(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyNetwork)
	return py.Object(py.Int(X.NumRegions())), nil
}

func py_Network_NumCompound(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyNetwork)
	return py.Object(py.Int(X.NumCompound())), nil
}

func py_Network_Regions(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyNetwork)
	next := libtri.StreamRegions(X.CompoundRegions())
	return wrapRegionStream(next), nil
}

func py_Network_Triangles(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyNetwork)
	next := libtri.StreamRegions(X.TriangularRegions())
	return wrapRegionStream(next), nil
}

func py_Network_String(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyNetwork)
	return X.M__str__()
}

type Workspace struct {
	CatalogCtx gotri.CatalogContext
}

func (ws *Workspace) Close() {
	ws.CatalogCtx.Close()
	<-ws.CatalogCtx.Done()
}

func (ws *Workspace) Type() *py.Type {
	return pyWorkspaceType
}

func py_GetWorkspace(module py.Object, args py.Tuple) (py.Object, error) {
	wsObj, _ := py.GetAttrString(module, kWorkspaceAttr)
	if wsObj == nil {
		ws := &Workspace{
			CatalogCtx: gotri.NewCatalogContext(),
		}
		wsObj = ws
		py.SetAttrString(module, kWorkspaceAttr, wsObj)
	}
	return wsObj, nil
}

func py_Workspace_CatalogExists(self py.Object, args py.Tuple) (py.Object, error) {
	_ = self.(*Workspace)

	var pathname string
	err := py.LoadTuple(args, []interface{}{&pathname})
	if err != nil {
		return nil, err
	}
	_, err = os.Stat(pathname)
	if os.IsNotExist(err) {
		return py.False, nil
	}
	return py.True, nil
}

// Arg 1 (str): catalog pathname ("" for an in-memory catalog)
// Arg 2 (int): flags (READ_ONLY)
func py_Workspace_OpenCatalog(self py.Object, args py.Tuple) (py.Object, error) {
	ws := self.(*Workspace)

	var pathname string
	var flags int32
	err := py.LoadTuple(args, []interface{}{&pathname, &flags})
	if err != nil {
		return nil, err
	}

	opts := gotri.CatalogOpts{
		ReadOnly:   (flags & READ_ONLY) != 0,
		DbPathName: pathname,
	}

	cat, err := catalog.OpenCatalog(ws.CatalogCtx, opts)
	if err != nil {
		return nil, py.ExceptionNewf(py.RuntimeError, "%v", err)
	}

	pyCat := pyCatalog{cat}
	return py.Object(pyCat), nil
}

type pyCatalog struct {
	gotri.Catalog
}

func (cat pyCatalog) Type() *py.Type {
	return pyCatalogType
}

func py_Catalog_Close(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	if cat.Catalog != nil {
		if err := cat.Close(); err != nil {
			return nil, py.ExceptionNewf(py.RuntimeError, "%v", err)
		}
	}
	return py.None, nil
}

// Arg 1 (bool, optional): triangular regions only
func py_Catalog_Select(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	sel := gotri.DefaultRegionSelector
	if len(args) > 0 {
		err := py.LoadTuple(args, []interface{}{&sel.TriangularOnly})
		if err != nil {
			return nil, err
		}
	}

	next := libtri.SelectFromCatalog(cat, sel)
	return wrapRegionStream(next), nil
}

func py_Catalog_NumRegions(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)

	numParts, err := py.GetInt(args[0])
	if err != nil {
		return nil, err
	}

	return py.Int(cat.NumRegions(int(numParts))), nil
}

func py_Catalog_NumTriangles(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	return py.Int(cat.NumTriangles()), nil
}

func py_Catalog_TriangleSum(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	return py.Int(cat.TriangleSum()), nil
}

type regionStream struct {
	*libtri.RegionStream
}

func (stream regionStream) Type() *py.Type {
	return pyRegionStreamType
}

func wrapRegionStream(stream *libtri.RegionStream) py.Object {
	return py.Object(regionStream{stream})
}

func py_RegionStream_Go(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(regionStream)
	count := stream.PullAll()
	return py.Int(count), nil
}

type echoToWriter struct {
	stdout *os.File
	to     io.WriteCloser
}

func (echo *echoToWriter) Write(buf []byte) (int, error) {
	if echo.to == nil {
		return echo.stdout.Write(buf)
	}
	return echo.to.Write(buf)
}

func (echo *echoToWriter) Close() error {
	if echo.to != nil {
		return echo.to.Close()
	}
	return nil
}

// Print(label, file="", corners=False) prints each region passing through the stream.
func py_RegionStream_Print(self py.Object, args py.Tuple, kwargs py.StringDict) (py.Object, error) {
	stream := self.(regionStream)
	var pathname string

	opts := gotri.DefaultPrintOpts

	py.LoadTuple(args, []interface{}{&opts.Label})
	if opts.Label == "" {
		py.LoadAttr(kwargs, "label", &opts.Label)
	}
	if opts.Label == "" {
		opts.Label = fmt.Sprintf("out[%d]", atomic.AddInt32(&gOutCount, 1))
	}

	py.LoadAttr(kwargs, "corners", &opts.Corners)
	py.LoadAttr(kwargs, "file", &pathname)

	writer := &echoToWriter{
		stdout: os.Stdout,
	}
	if len(pathname) > 0 {
		os.MkdirAll(filepath.Dir(pathname), 0700)

		file, err := os.OpenFile(pathname, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0600)
		if err != nil {
			return nil, py.ExceptionNewf(py.FileNotFoundError, "%v", err)
		}
		writer.to = file
	}

	next := stream.Print(writer, opts)
	return wrapRegionStream(next), nil
}

var gOutCount = int32(0)

func py_RegionStream_AddTo(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(regionStream)
	cat, ok := args[0].(pyCatalog)
	if !ok {
		return nil, py.ExceptionNewf(py.TypeError, "expected Catalog object (got %v)", args[0].Type().Name)
	}
	if cat.IsReadOnly() {
		return nil, py.ExceptionNewf(py.PermissionError, "%v", errors.New("catalog is in read-only mode"))
	}

	next := stream.AddTo(cat, libtri.AddRegionOpts{})
	return wrapRegionStream(next), nil
}

func py_RegionStream_DropDupes(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(regionStream)
	next := stream.DropDupes()
	return wrapRegionStream(next), nil
}

func py_RegionStream_SelectTriangles(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(regionStream)
	sel := gotri.DefaultRegionSelector
	sel.TriangularOnly = true
	next := stream.Select(sel)
	return wrapRegionStream(next), nil
}

func init() {

	/////////////////////////////////
	// Network
	{
		pyNetworkType.Dict["Sum"] = py.MustNewMethod("Sum", py_Network_Sum, 0, "sum of the values of all triangular regions")
		pyNetworkType.Dict["NumTriangles"] = py.MustNewMethod("NumTriangles", py_Network_NumTriangles, 0, "")
		pyNetworkType.Dict["NumRegions"] = py.MustNewMethod("NumRegions", py_Network_NumRegions, 0, "number of base regions")
		pyNetworkType.Dict["NumCompound"] = py.MustNewMethod("NumCompound", py_Network_NumCompound, 0, "")
		pyNetworkType.Dict["Regions"] = py.MustNewMethod("Regions", py_Network_Regions, 0, "streams every compound region")
		pyNetworkType.Dict["Triangles"] = py.MustNewMethod("Triangles", py_Network_Triangles, 0, "streams every triangular region")
		pyNetworkType.Dict["String"] = py.MustNewMethod("String", py_Network_String, 0, "")
	}

	/////////////////////////////////
	// Catalog
	{
		pyCatalogType.Dict["Select"] = py.MustNewMethod("Select", py_Catalog_Select, 0, "")
		pyCatalogType.Dict["NumRegions"] = py.MustNewMethod("NumRegions", py_Catalog_NumRegions, 0, "")
		pyCatalogType.Dict["NumTriangles"] = py.MustNewMethod("NumTriangles", py_Catalog_NumTriangles, 0, "")
		pyCatalogType.Dict["TriangleSum"] = py.MustNewMethod("TriangleSum", py_Catalog_TriangleSum, 0, "")
		pyCatalogType.Dict["Close"] = py.MustNewMethod("Close", py_Catalog_Close, 0, "")
	}

	/////////////////////////////////
	// Workspace
	{
		pyWorkspaceType.Dict["OpenCatalog"] = py.MustNewMethod("OpenCatalog", py_Workspace_OpenCatalog, 0, "")
		pyWorkspaceType.Dict["CatalogExists"] = py.MustNewMethod("CatalogExists", py_Workspace_CatalogExists, 0, "")
	}

	/////////////////////////////////
	// RegionStream
	{
		pyRegionStreamType.Dict["Go"] = py.MustNewMethod("Go", py_RegionStream_Go, 0, "counts the number of regions output from the RegionStream")
		pyRegionStreamType.Dict["Print"] = py.MustNewMethod("Print", py_RegionStream_Print, 0, "prints each region from the RegionStream")
		pyRegionStreamType.Dict["AddTo"] = py.MustNewMethod("AddTo", py_RegionStream_AddTo, 0, "")
		pyRegionStreamType.Dict["DropDupes"] = py.MustNewMethod("DropDupes", py_RegionStream_DropDupes, 0, "")
		pyRegionStreamType.Dict["SelectTriangles"] = py.MustNewMethod("SelectTriangles", py_RegionStream_SelectTriangles, 0, "")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("NewNetwork", py_NewNetwork, 0, "builds a Network from a network expression"),
			py.MustNewMethod("LoadNetwork", py_LoadNetwork, 0, "builds a Network from a .tri or .yaml file"),
			py.MustNewMethod("GetWorkspace", py_GetWorkspace, 0, ""),
		}

		globals := py.StringDict{
			"LIB_VERSION":   py.String(gotri.LibVersion),
			"MAX_REGION_ID": py.Int(gotri.MaxRegionID),
			"READ_ONLY":     py.Int(READ_ONLY),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "_pytri",
				Doc:  "structured network triangle analysis",
			},
			Methods: methods,
			Globals: globals,
			OnContextClosed: func(m *py.Module) {
				wsObj, _ := py.GetAttrString(m, kWorkspaceAttr)
				if wsObj != nil {
					wsObj.(*Workspace).Close()
				}
			},
		})
	}
}
