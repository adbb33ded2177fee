package libtri

import (
	"encoding/binary"

	"github.com/2x3systems/gotri/gotri"
	"github.com/dgraph-io/badger/v3"
)

// NewRegionSet returns a RegionSet backed by a map.
func NewRegionSet() RegionSet {
	return &regionSet{
		ids: make(map[RegionID]struct{}),
	}
}

type regionSet struct {
	ids map[RegionID]struct{}
}

func (set *regionSet) TryAdd(R *Region) bool {
	if _, exists := set.ids[R.ID]; exists {
		return false
	}
	set.ids[R.ID] = struct{}{}
	return true
}

func (set *regionSet) Close() {
	set.ids = make(map[RegionID]struct{})
}

// NewLSMRegionSet returns a RegionSet backed by an in-memory badger db, opened on first use.
func NewLSMRegionSet() RegionSet {
	return &lsmRegionSet{}
}

type lsmRegionSet struct {
	lsmSet
}

func (set *lsmRegionSet) TryAdd(R *Region) bool {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], uint64(R.ID))
	return set.tryAdd(key[:])
}

type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			panic(err)
		}
	}
}

func (set *lsmSet) tryAdd(key []byte) bool {
	set.autoOpen()

	txn := set.db.NewTransaction(true)
	defer txn.Discard()

	added := false
	_, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		err = txn.Set(key, nil)
		if err == nil {
			err = txn.Commit()
		}
		added = true
	}

	if err != nil {
		panic(err)
	}

	return added
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}

// NewDropDupes returns a RegionAdder that admits each RegionID once.
func NewDropDupes() DropDupes {
	return &dropDupes{
		regionSet{
			ids: make(map[RegionID]struct{}),
		},
	}
}

// DropDupes is a RegionAdder that forgets everything added to it on Close.
type DropDupes interface {
	gotri.RegionAdder
	Close() error
}

type dropDupes struct {
	regionSet
}

func (set *dropDupes) Close() error {
	set.regionSet.Close()
	return nil
}

func (set *dropDupes) TryAddRegion(R gotri.RegionState) bool {
	ID := R.RegionID()
	if _, exists := set.ids[ID]; exists {
		return false
	}
	set.ids[ID] = struct{}{}
	return true
}
