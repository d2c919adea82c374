package history

import (
	"errors"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/npillmayer/graffiti/core/calendar"
)

// Entries for a single day are placed at distinct seconds. We prefer office
// hours, 10:00:00 to 19:59:59, and use the whole day only if office hours
// do not offer enough seconds.
const (
	OfficeStart   = 10 * time.Hour
	OfficeEnd     = 20 * time.Hour
	secondsPerDay = 24 * 60 * 60
)

// ErrTooManyEntries is returned if more entries are requested for a day
// than it has seconds.
var ErrTooManyEntries = errors.New("too many entries for a single day")

// Stamper assigns timestamps to the entries of a day. Timestamps are
// random, but reproducible for a given seed.
// A Stamper is safe for concurrent use.
type Stamper struct {
	mx  sync.Mutex
	rnd *rand.Rand
}

// NewStamper creates a stamper seeded with seed.
func NewStamper(seed int64) *Stamper {
	return &Stamper{rnd: rand.New(rand.NewSource(seed))}
}

// Stamps returns count strictly increasing timestamps on the calendar day
// of date, in UTC.
func (st *Stamper) Stamps(date time.Time, count int) ([]time.Time, error) {
	if count <= 0 {
		return nil, nil
	}
	if count > secondsPerDay {
		return nil, ErrTooManyEntries
	}
	day := calendar.Truncate(date)
	from, n := int(OfficeStart/time.Second), int((OfficeEnd-OfficeStart)/time.Second)
	if count > n {
		from, n = 0, secondsPerDay
	}
	st.mx.Lock()
	secs := st.sample(n, count)
	st.mx.Unlock()
	stamps := make([]time.Time, count)
	for i, s := range secs {
		stamps[i] = day.Add(time.Duration(from+s) * time.Second)
	}
	return stamps, nil
}

// sample draws k distinct values from [0…n), sorted.
func (st *Stamper) sample(n, k int) []int {
	var secs []int
	if k*4 > n {
		secs = st.rnd.Perm(n)[:k]
	} else {
		seen := make(map[int]struct{}, k)
		secs = make([]int, 0, k)
		for len(secs) < k {
			s := st.rnd.Intn(n)
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				secs = append(secs, s)
			}
		}
	}
	sort.Ints(secs)
	return secs
}
