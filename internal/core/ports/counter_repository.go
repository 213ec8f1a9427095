package ports

import "context"

// CounterRepository defines the contract for durable named sequences used to
// mint order numbers.
type CounterRepository interface {
	// Next increments the named counter by exactly one and returns the new
	// value, atomically with respect to all concurrent callers: two calls for
	// the same name never observe the same value. A counter that does not
	// exist yet starts at zero, so the first call returns 1.
	//
	// The increment is its own unit of work. A failed order save after a
	// successful increment leaves a permanently skipped number, which is an
	// accepted gap.
	Next(ctx context.Context, name string) (int64, error)
}
