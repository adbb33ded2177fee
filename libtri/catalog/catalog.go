package catalog

import (
	"encoding/binary"
	"runtime"
	"sync"

	"github.com/2x3systems/gotri/gotri"
	"github.com/2x3systems/gotri/libtri"
	"github.com/dgraph-io/badger/v3"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
)

/***

Catalog database format:

	gCatalogStateKey => CatalogState

	NumParts (byte), RegionID (uint64, big endian)   => RegionDef   (UserMeta carries Flag_IsTriangular)
	...

Since the part count leads each key, a key walk visits regions in order of part count, then RegionID.

***/

var (
	gCatalogStateKey = []byte{0x00, 0x00, 0x01}
)

const (
	catalogMajorVers = 2022
	catalogMinorVers = 1
	regionKeySz      = 1 + 8
)

// catalog is a db wrapper for analyzed regions
type catalog struct {
	ctx        gotri.CatalogContext
	mu         sync.Mutex
	readOnly   bool
	stateDirty bool
	state      gotri.CatalogState
	db         *badger.DB
}

func OpenCatalog(ctx gotri.CatalogContext, opts gotri.CatalogOpts) (gotri.Catalog, error) {
	cat := &catalog{
		ctx:      ctx,
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // not needed so disable for performance
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	var err error

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(gotri.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	// Once the db is open, we consider the catalog ctx blocked until the catalog closes
	ctx.AttachCatalog(cat)

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = !opts.ReadOnly
		cat.state.MajorVers = catalogMajorVers
		cat.state.MinorVers = catalogMinorVers
		cat.state.LibVersion = gotri.LibVersion
		cat.state.NumRegions = make([]uint64, gotri.MaxRegionID+1)
	}

	if err == nil && (cat.state.MajorVers != catalogMajorVers || cat.state.MinorVers != catalogMinorVers) {
		err = errors.New("Catalog version is incompatible")
	}

	if err != nil {
		cat.Close()
		return nil, err
	}

	return cat, nil
}

func (cat *catalog) NumRegions(forNumParts int) int64 {
	cat.mu.Lock()
	defer cat.mu.Unlock()

	if forNumParts <= 0 || forNumParts >= len(cat.state.NumRegions) {
		return 0
	}
	return int64(cat.state.NumRegions[forNumParts])
}

func (cat *catalog) NumTriangles() int64 {
	cat.mu.Lock()
	defer cat.mu.Unlock()

	return int64(cat.state.NumTriangles)
}

func (cat *catalog) TriangleSum() int64 {
	cat.mu.Lock()
	defer cat.mu.Unlock()

	return cat.state.TriangleSum
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

func (cat *catalog) loadState() error {
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := proto.Unmarshal(val, &cat.state); err != nil {
				return errors.Wrap(gotri.ErrUnmarshal, err.Error())
			}
			return nil
		})
	})
	return err
}

func (cat *catalog) flushState() error {
	if !cat.stateDirty {
		return nil
	}

	err := cat.db.Update(func(txn *badger.Txn) error {
		stateBuf, err := proto.Marshal(&cat.state)
		if err != nil {
			return err
		}
		return txn.Set(gCatalogStateKey, stateBuf)
	})
	if err == nil {
		cat.stateDirty = false
	}
	return err
}

func (cat *catalog) Close() error {
	cat.mu.Lock()
	defer cat.mu.Unlock()

	if cat.db == nil {
		return nil
	}

	err := cat.flushState()
	if closeErr := cat.db.Close(); err == nil {
		err = closeErr
	}
	cat.db = nil
	cat.ctx.DetachCatalog(cat)
	cat.ctx = nil
	return err
}

func formRegionKey(key []byte, ID gotri.RegionID) []byte {
	key = append(key, byte(ID.NumParts()))
	key = binary.BigEndian.AppendUint64(key, uint64(ID))
	return key
}

// TryAddRegion adds R if no region with R's RegionID is already present.
func (cat *catalog) TryAddRegion(R gotri.RegionState) bool {
	if cat.readOnly {
		return false
	}

	ID := R.RegionID()
	if ID == 0 {
		return false
	}

	var def gotri.RegionDef
	if X, ok := R.(*libtri.Region); ok {
		def = X.ExportDef()
	} else {
		def = gotri.RegionDef{
			Value:   R.RegionValue(),
			Vtx:     toStrings(R.Boundary()),
			Corners: toStrings(R.Corners()),
		}
	}
	val, err := gotri.MarshalRegionDef(nil, &def)
	if err != nil {
		panic(err)
	}
	key := formRegionKey(make([]byte, 0, regionKeySz), ID)

	flags := byte(0)
	if R.IsTriangular() {
		flags |= gotri.Flag_IsTriangular
	}

	cat.mu.Lock()
	defer cat.mu.Unlock()

	if cat.db == nil {
		return false
	}

	txn := cat.db.NewTransaction(true)
	defer txn.Discard()

	_, err = txn.Get(key)
	if err == nil {
		return false
	}
	if err != badger.ErrKeyNotFound {
		panic(err)
	}

	err = txn.SetEntry(badger.NewEntry(key, val).WithMeta(flags))
	if err == nil {
		err = txn.Commit()
	}
	if err != nil {
		panic(err)
	}

	cat.state.NumRegions[ID.NumParts()]++
	if flags&gotri.Flag_IsTriangular != 0 {
		cat.state.NumTriangles++
		cat.state.TriangleSum += def.Value
	}
	cat.stateDirty = true
	return true
}

// Select sends every region meeting the selection criteria to onHit, in order of part count then RegionID.
//
// Regions are decoded from the db, so onHit receives copies it may retain.
func (cat *catalog) Select(sel gotri.RegionSelector, onHit gotri.OnRegionHit) {
	cat.mu.Lock()
	db := cat.db
	cat.mu.Unlock()
	if db == nil {
		return
	}

	minParts := max(sel.Min.NumParts, 1)
	maxParts := min(sel.Max.NumParts, gotri.MaxRegionID)

	txn := db.NewTransaction(false)
	defer txn.Discard()

	it := txn.NewIterator(badger.IteratorOptions{
		PrefetchValues: true,
		PrefetchSize:   300,
	})
	defer it.Close()

	minKey := [1]byte{byte(minParts)}
	for it.Seek(minKey[:]); it.Valid(); it.Next() {
		item := it.Item()
		key := item.Key()

		if len(key) != regionKeySz {
			continue
		}
		// Stop when the part count is over the max
		if int(key[0]) > maxParts {
			break
		}
		if sel.TriangularOnly && item.UserMeta()&gotri.Flag_IsTriangular == 0 {
			continue
		}

		ID := gotri.RegionID(binary.BigEndian.Uint64(key[1:]))
		var R *libtri.Region
		err := item.Value(func(val []byte) error {
			var def gotri.RegionDef
			if err := gotri.UnmarshalRegionDef(val, &def); err != nil {
				return err
			}
			var err error
			R, err = libtri.NewRegionFromDef(ID, &def)
			return err
		})
		if err != nil {
			panic(errors.Wrapf(err, "catalog region %v", ID))
		}

		if sel.SelectsRegion(R) {
			onHit <- R
		}
	}
}

func toStrings(vtx []gotri.VtxID) []string {
	strs := make([]string, len(vtx))
	for i, v := range vtx {
		strs[i] = string(v)
	}
	return strs
}
