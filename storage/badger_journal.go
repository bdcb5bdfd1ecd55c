package storage

import (
	"encoding/json"
	"sync/atomic"

	"github.com/dgraph-io/badger/v2"

	"coldtrack/bus"
)

// BadgerJournal persists events in an embedded badger store. An empty path
// opens badger in memory, which is also what tests use.
type BadgerJournal struct {
	db  *badger.DB
	seq uint64
}

func OpenBadgerJournal(path string) (*BadgerJournal, error) {
	options := badger.DefaultOptions(path)
	if path == "" {
		options = options.WithInMemory(true)
	}
	options = options.WithLogger(nil)
	db, err := badger.Open(options)
	if err != nil {
		return nil, err
	}
	j := &BadgerJournal{db: db}

	// Resume the sequence after the highest existing key.
	err = db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()
		it.Rewind()
		if it.Valid() {
			j.seq = GetSeqFromKey(it.Item().Key())
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return j, nil
}

func (j *BadgerJournal) Append(event bus.Event) error {
	buf, err := json.Marshal(event)
	if err != nil {
		return err
	}
	key := GetKey(atomic.AddUint64(&j.seq, 1))
	return j.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, buf)
	})
}

func (j *BadgerJournal) Scan(fn func(event bus.Event) error) error {
	return j.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			var event bus.Event
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &event)
			})
			if err != nil {
				return err
			}
			if err := fn(event); err != nil {
				return err
			}
		}
		return nil
	})
}

func (j *BadgerJournal) Close() error {
	return j.db.Close()
}
