package storage

import (
	"encoding/binary"

	"coldtrack/bus"
)

// Journal is an append-only record of published events. Appends preserve
// publish order; Scan visits events in that order.
type Journal interface {
	Append(event bus.Event) error
	Scan(fn func(event bus.Event) error) error
	Close() error
}

// Keys are <8 bytes sequence number>, big-endian so lexicographic key order
// matches append order when iterating the backing store.
func GetKey(seq uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	return buf
}

func GetSeqFromKey(buf []byte) uint64 {
	return binary.BigEndian.Uint64(buf)
}
