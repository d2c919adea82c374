/*
Package history defines the contract for recording dated entries in a
contribution history.

A contribution history is anything which, for a given calendar date, can be
made to contain a number of additional entries. The canonical implementation
creates empty, back-dated git commits (see sub-package gitcli). Package
history itself provides an in-memory Recorder, useful for previews and tests,
and a Stamper which spreads entries over a day.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/npillmayer/graffiti/core/calendar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'graffiti.history'.
func tracer() tracing.Trace {
	return tracing.Select("graffiti.history")
}

// Backend creates entries in a contribution history.
//
// CreateEntries creates count entries dated on the calendar day of date.
// Entries are created in order; a backend stops at the first entry it fails
// to create and returns an error. Clients should use Created to find out how
// many entries made it into the history before the failure.
type Backend interface {
	CreateEntries(ctx context.Context, date time.Time, count int) error
}

// ErrBackend is the root cause of all entry creation failures reported by
// EntryError.
var ErrBackend = errors.New("cannot create history entry")

// EntryError reports a failure to create all requested entries for a date.
type EntryError struct {
	Date      time.Time // calendar date of the entries
	Requested int       // number of entries requested
	Created   int       // number of entries created before the failure
	Err       error     // underlying failure
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s: %d of %d entries created: %v",
		e.Date.Format(calendar.DateLayout), e.Created, e.Requested, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// Is makes every EntryError match ErrBackend.
func (e *EntryError) Is(target error) bool {
	return target == ErrBackend
}

// Created returns the number of entries which have been created for a
// request of count entries, given the error returned by CreateEntries.
func Created(err error, count int) int {
	if err == nil {
		return count
	}
	var eerr *EntryError
	if errors.As(err, &eerr) {
		return eerr.Created
	}
	return 0
}
