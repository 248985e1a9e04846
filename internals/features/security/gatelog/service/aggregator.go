package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jinzhu/now"
	"golang.org/x/sync/singleflight"

	"hostel_admin_backend/internals/features/security/gatelog/export"
	"hostel_admin_backend/internals/features/security/gatelog/model"
	"hostel_admin_backend/internals/features/security/gatelog/notify"
	"hostel_admin_backend/internals/features/security/gatelog/resolver"
)

// loadTimeout bounds a shared fetch once it is detached from its callers.
const loadTimeout = 30 * time.Second

// FetchFunc returns the current records of one view.
type FetchFunc func(ctx context.Context) ([]model.LeaveRequest, error)

// DateRangePatch is merged into the held range. A nil field leaves that bound
// as it is, an empty string clears it.
type DateRangePatch struct {
	From *string `json:"from,omitempty"`
	To   *string `json:"to,omitempty"`
}

// DateRange is the held calendar-day range, "YYYY-MM-DD" or empty.
type DateRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Surface is what a view needs to render.
type Surface struct {
	Label   string               `json:"label"`
	Data    []model.LeaveRequest `json:"data"`
	Loading bool                 `json:"loading"`
	Search  string               `json:"search,omitempty"`
	Range   DateRange            `json:"range"`
}

type Option func(*Aggregator)

func WithLocation(loc *time.Location) Option {
	return func(a *Aggregator) {
		if loc != nil {
			a.loc = loc
		}
	}
}

func WithNotifier(n notify.Notifier) Option {
	return func(a *Aggregator) {
		if n != nil {
			a.notifier = n
		}
	}
}

func WithResolver(r resolver.Resolver) Option {
	return func(a *Aggregator) { a.resolver = r }
}

func WithSink(s export.Sink) Option {
	return func(a *Aggregator) { a.sink = s }
}

// WithEncoder replaces the encoder built from the resolver, sink and notifier.
func WithEncoder(e *export.Encoder) Option {
	return func(a *Aggregator) { a.encoder = e }
}

// Aggregator holds one generation of records for a view and derives the
// filtered list from the search term and date range.
type Aggregator struct {
	fetch    FetchFunc
	label    string
	loc      *time.Location
	notifier notify.Notifier
	resolver resolver.Resolver
	sink     export.Sink
	encoder  *export.Encoder

	group singleflight.Group

	mu       sync.RWMutex
	records  []model.LeaveRequest
	search   string
	rng      DateRange
	fromAt   *time.Time
	toAt     *time.Time
	inflight int
	settled  bool
	closed   bool
}

func NewAggregator(fetch FetchFunc, label string, opts ...Option) *Aggregator {
	a := &Aggregator{
		fetch:    fetch,
		label:    label,
		loc:      time.UTC,
		notifier: notify.LogNotifier{},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.resolver.Location == nil {
		a.resolver = resolver.New(a.loc, a.resolver.Strategy)
	}
	if a.encoder == nil {
		a.encoder = export.NewEncoder(a.resolver, a.sink, a.guardedNotifier())
	}
	return a
}

func (a *Aggregator) Label() string { return a.label }

// Resolver is the resolver shared by the table and the encoder.
func (a *Aggregator) Resolver() resolver.Resolver { return a.resolver }

// guardedNotifier drops notices once the aggregator is closed.
func (a *Aggregator) guardedNotifier() notify.Notifier {
	return notify.Func(func(kind notify.Kind, message string) {
		if a.isClosed() {
			return
		}
		a.notifier.Notify(kind, message)
	})
}

func (a *Aggregator) isClosed() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.closed
}

// Load fetches a new generation. Calls that overlap an in-flight fetch share
// its result. A failure keeps the previous records, logs, and sends one error
// notice; the bool reports whether the records were replaced.
//
// The shared fetch does not inherit the cancellation of whichever caller
// started it. A caller whose ctx ends stops waiting and gets false, the others
// still get the fetch result.
func (a *Aggregator) Load(ctx context.Context) bool {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return false
	}
	a.inflight++
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.inflight--
		a.mu.Unlock()
	}()

	ch := a.group.DoChan("load", func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		return a.loadOnce(fetchCtx), nil
	})
	select {
	case res := <-ch:
		return res.Val.(bool)
	case <-ctx.Done():
		return false
	}
}

func (a *Aggregator) loadOnce(ctx context.Context) bool {
	records, err := a.fetch(ctx)

	a.mu.Lock()
	a.settled = true
	if a.closed {
		a.mu.Unlock()
		return false
	}
	if err != nil {
		a.mu.Unlock()
		log.Printf("[ERROR] Error fetching %s: %v", a.label, err)
		a.notifier.Notify(notify.Error, fmt.Sprintf("Failed to load %s", a.label))
		return false
	}
	fresh := make([]model.LeaveRequest, len(records))
	copy(fresh, records)
	a.records = fresh
	a.mu.Unlock()
	return true
}

// Loading reports whether a fetch is in flight. A fresh aggregator counts as
// loading until its first fetch settles.
func (a *Aggregator) Loading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loadingLocked()
}

func (a *Aggregator) loadingLocked() bool {
	return a.inflight > 0 || !a.settled
}

func (a *Aggregator) SetSearchTerm(text string) {
	a.mu.Lock()
	a.search = text
	a.mu.Unlock()
}

// SetDateRange merges patch into the held range. An unparseable date leaves
// the range untouched and returns an error.
func (a *Aggregator) SetDateRange(patch DateRangePatch) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := a.rng
	fromAt, toAt := a.fromAt, a.toAt

	if patch.From != nil {
		v := strings.TrimSpace(*patch.From)
		if v == "" {
			next.From, fromAt = "", nil
		} else {
			day, err := a.parseDay(v)
			if err != nil {
				return fmt.Errorf("invalid from date %q: %w", v, err)
			}
			t := now.With(day).BeginningOfDay()
			next.From, fromAt = v, &t
		}
	}
	if patch.To != nil {
		v := strings.TrimSpace(*patch.To)
		if v == "" {
			next.To, toAt = "", nil
		} else {
			day, err := a.parseDay(v)
			if err != nil {
				return fmt.Errorf("invalid to date %q: %w", v, err)
			}
			t := now.With(day).EndOfDay()
			next.To, toAt = v, &t
		}
	}

	a.rng, a.fromAt, a.toAt = next, fromAt, toAt
	return nil
}

// parseDay accepts a calendar date or a full ISO timestamp; only the day in
// the aggregator's location is kept.
func (a *Aggregator) parseDay(v string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", v, a.loc); err == nil {
		return t, nil
	}
	t, ok := resolver.ParseTimestamp(v, a.loc)
	if !ok {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD")
	}
	return t.In(a.loc), nil
}

func (a *Aggregator) DateRange() DateRange {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.rng
}

// FilteredData applies the search and date predicates, keeping source order.
func (a *Aggregator) FilteredData() []model.LeaveRequest {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.filterLocked()
}

func (a *Aggregator) filterLocked() []model.LeaveRequest {
	term := strings.ToLower(a.search)
	out := make([]model.LeaveRequest, 0, len(a.records))
	for _, r := range a.records {
		if term != "" &&
			!strings.Contains(strings.ToLower(r.StudentInfo.Name), term) &&
			!strings.Contains(strings.ToLower(r.StudentEnrollmentNumber), term) {
			continue
		}
		if a.fromAt != nil && r.AppliedFrom.Before(*a.fromAt) {
			continue
		}
		if a.toAt != nil && r.AppliedFrom.After(*a.toAt) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Export hands the current filtered list to the encoder.
func (a *Aggregator) Export(format export.Format) bool {
	if a.isClosed() {
		return false
	}
	return a.encoder.Export(a.FilteredData(), a.label, format)
}

func (a *Aggregator) Surface() Surface {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return Surface{
		Label:   a.label,
		Data:    a.filterLocked(),
		Loading: a.loadingLocked(),
		Search:  a.search,
		Range:   a.rng,
	}
}

// Close stops the aggregator; results and notices of fetches still in flight
// are dropped.
func (a *Aggregator) Close() {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
}
