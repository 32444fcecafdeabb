package bus

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange  = errors.New("address outside region")
	ErrNotWritable = errors.New("region not writable")
)

// AddressError is returned by a Region for an access it cannot serve.
type AddressError struct {
	Region Area
	Addr   uint16
	Op     string // "read" or "write"
	Err    error
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%v %s %04X: %v", e.Region, e.Op, e.Addr, e.Err)
}

func (e *AddressError) Unwrap() error { return e.Err }

// RoutingError is the panic value the Bus raises when a region rejects an
// access. The CPU has no way to recover from it.
type RoutingError struct {
	Addr uint16
	Op   string
	Err  error
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("bus: %s %04X: %v", e.Op, e.Addr, e.Err)
}

func (e *RoutingError) Unwrap() error { return e.Err }

func outOfRange(a Area, op string, addr uint16) error {
	return &AddressError{Region: a, Addr: addr, Op: op, Err: ErrOutOfRange}
}
