package entry

import (
	"github.com/nspire-go/neda"
	"github.com/nspire-go/neda/eval"
)

// historySize is the fixed capacity of the result-history ring (§4.2.3).
const historySize = 5

// HistoryEntry pairs a source expression tree with its evaluated result,
// §3 "a fixed ring of the last N=5 (source_expression, evaluated_result)
// pairs".
type HistoryEntry struct {
	Source *neda.Tree
	Result eval.Value
}

// historyRing is a fixed-capacity ring buffer overwritten oldest-first,
// grounded on the teacher's windowed-viewport pattern in virtuallist.go
// (a fixed window sliding over a conceptually unbounded list), here
// inverted: the window IS the whole buffer and old entries fall off the
// back instead of scrolling out of view.
type historyRing struct {
	entries [historySize]HistoryEntry
	count   int // number of valid entries, caps at historySize
	next    int // index the next Push will write to
	view    int // navigation offset from the most recent entry, 0 = most recent
}

func (r *historyRing) push(e HistoryEntry) {
	r.entries[r.next] = e
	r.next = (r.next + 1) % historySize
	if r.count < historySize {
		r.count++
	}
	r.view = 0
}

// at returns the entry `back` steps before the most recent push (0 = most
// recent), ok false if there's no such entry.
func (r *historyRing) at(back int) (HistoryEntry, bool) {
	if back < 0 || back >= r.count {
		return HistoryEntry{}, false
	}
	idx := (r.next - 1 - back + historySize) % historySize
	return r.entries[idx], true
}

// older moves the navigation cursor one step further into the past,
// returning the entry landed on.
func (r *historyRing) older() (HistoryEntry, bool) {
	if r.view+1 >= r.count {
		return HistoryEntry{}, false
	}
	r.view++
	return r.at(r.view)
}

// newer moves the navigation cursor one step toward the present.
func (r *historyRing) newer() (HistoryEntry, bool) {
	if r.view == 0 {
		return HistoryEntry{}, false
	}
	r.view--
	return r.at(r.view)
}
