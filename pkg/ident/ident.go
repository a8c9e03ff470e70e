// Package ident generates process-wide element identifiers.
//
// IDs are handed out from a single atomic counter that starts at 1 and is
// never reset. Two IDs are only ever compared for equality; their order
// carries no meaning beyond debugging.
package ident

import (
	"strconv"
	"sync/atomic"
)

// ID identifies an element for the life of the process.
type ID uint64

// Zero is never returned by Next.
const Zero ID = 0

var counter atomic.Uint64

// Next returns a fresh ID. Safe for concurrent use.
func Next() ID {
	return ID(counter.Add(1))
}

func (id ID) String() string {
	return "el-" + strconv.FormatUint(uint64(id), 10)
}
