package morris

import (
	"encoding/binary"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

// classWon and classLost tag a key's stored value byte so Load can route it
// back into the right in-memory Store.
const (
	classWon  byte = 2
	classLost byte = 0
)

// BadgerStore persists canonical board keys to an embedded BadgerDB so a
// solve run can checkpoint and resume instead of holding the whole WON/LOST
// database in memory.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (creating if absent) a BadgerDB at dir.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions(dir))
	if err != nil {
		return nil, errors.Wrapf(err, "opening badger store at %s", dir)
	}
	return &BadgerStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func encodeKey(key uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, key)
	return buf
}

// Flush batches every key currently in store into the database, tagged
// with class (classWon or classLost).
func (s *BadgerStore) Flush(store *Store, class byte) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for _, key := range store.Keys() {
		if err := wb.Set(encodeKey(key), []byte{class}); err != nil {
			return errors.Wrap(err, "batching badger write")
		}
	}
	return errors.Wrap(wb.Flush(), "flushing badger write batch")
}

// Load reconstructs the WON and LOST stores from every key previously
// persisted by Flush, so a solve run can resume past a checkpoint.
func (s *BadgerStore) Load() (won, lost *Store, err error) {
	won = NewStore(0)
	lost = NewStore(0)

	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := binary.BigEndian.Uint64(item.Key())

			var class byte
			if getErr := item.Value(func(val []byte) error {
				if len(val) > 0 {
					class = val[0]
				}
				return nil
			}); getErr != nil {
				return errors.Wrap(getErr, "reading badger value")
			}

			board := FromKey(key)
			switch class {
			case classWon:
				won.Add(board)
			case classLost:
				lost.Add(board)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading badger store")
	}
	return won, lost, nil
}
