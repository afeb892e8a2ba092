package timeline

import (
	"sort"
	"sync"

	"vaultsync/internal/domain"
)

// DefaultCap is the activity view length used by the app.
const DefaultCap = 10

// Reconciler owns one merged activity view. All mutation goes through
// the internal mutex, giving the same serialization a single event
// loop would.
type Reconciler struct {
	mu  sync.Mutex
	cap int

	issued  uint64 // sequence of the most recently issued snapshot fetch
	applied uint64 // sequence of the snapshot the view reflects

	view []domain.TimelineEvent // non-increasing by EventTimestamp
	ids  map[string]struct{}

	// Events seen on the push stream, retained (bounded by cap) so a
	// wholesale snapshot replacement can re-merge instead of blindly
	// appending.
	pushes []domain.TimelineEvent
}

// NewReconciler returns a reconciler with the given view cap.
// A non-positive cap falls back to DefaultCap.
func NewReconciler(viewCap int) *Reconciler {
	if viewCap <= 0 {
		viewCap = DefaultCap
	}
	return &Reconciler{
		cap: viewCap,
		ids: make(map[string]struct{}),
	}
}

// Begin registers a snapshot fetch about to be issued and returns its
// sequence. A later Begin supersedes all earlier ones: their results
// will be discarded even if they resolve afterwards.
func (r *Reconciler) Begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.issued++
	return r.issued
}

// ApplySnapshot replaces the view with the merge of the snapshot and
// the retained pushes, deduplicated by ID, sorted by EventTimestamp
// descending and truncated to the cap. It reports whether the snapshot
// was applied; results of superseded fetches are dropped.
func (r *Reconciler) ApplySnapshot(seq uint64, events []domain.TimelineEvent) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != r.issued || seq == r.applied {
		return false
	}
	r.applied = seq

	merged := make([]domain.TimelineEvent, 0, len(events)+len(r.pushes))
	seen := make(map[string]struct{}, len(events)+len(r.pushes))
	for _, ev := range events {
		if _, dup := seen[ev.ID]; dup {
			continue
		}
		seen[ev.ID] = struct{}{}
		merged = append(merged, ev)
	}
	for _, ev := range r.pushes {
		if _, dup := seen[ev.ID]; dup {
			continue
		}
		seen[ev.ID] = struct{}{}
		merged = append(merged, ev)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].EventTimestamp > merged[j].EventTimestamp
	})
	if len(merged) > r.cap {
		merged = merged[:r.cap]
	}

	r.view = merged
	r.ids = make(map[string]struct{}, len(merged))
	for _, ev := range merged {
		r.ids[ev.ID] = struct{}{}
	}
	return true
}

// Fail records that the current snapshot fetch failed. The view
// degrades to empty rather than presenting stale data as fresh.
// Failures of superseded fetches are ignored.
func (r *Reconciler) Fail(seq uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != r.issued {
		return false
	}
	r.applied = seq
	r.view = nil
	r.ids = make(map[string]struct{})
	return true
}

// Push merges one live insert notification. Inserts are idempotent by
// ID; new events land at the position preserving timestamp descending
// order, with the newest arrival winning among equal timestamps. The
// view is truncated to the cap after every insert. It reports whether
// the event is present in the view afterwards.
func (r *Reconciler) Push(ev domain.TimelineEvent) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.ids[ev.ID]; dup {
		return false
	}

	r.retainPush(ev)

	i := sort.Search(len(r.view), func(i int) bool {
		return r.view[i].EventTimestamp <= ev.EventTimestamp
	})
	r.view = append(r.view, domain.TimelineEvent{})
	copy(r.view[i+1:], r.view[i:])
	r.view[i] = ev
	r.ids[ev.ID] = struct{}{}

	for len(r.view) > r.cap {
		last := r.view[len(r.view)-1]
		delete(r.ids, last.ID)
		r.view = r.view[:len(r.view)-1]
	}

	_, present := r.ids[ev.ID]
	return present
}

// Events returns a copy of the current view.
func (r *Reconciler) Events() []domain.TimelineEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.TimelineEvent, len(r.view))
	copy(out, r.view)
	return out
}

// retainPush remembers a pushed event for future snapshot re-merges,
// keeping only the cap most recent arrivals.
func (r *Reconciler) retainPush(ev domain.TimelineEvent) {
	for i, p := range r.pushes {
		if p.ID == ev.ID {
			r.pushes[i] = ev
			return
		}
	}
	r.pushes = append(r.pushes, ev)
	if len(r.pushes) > r.cap {
		r.pushes = r.pushes[len(r.pushes)-r.cap:]
	}
}
