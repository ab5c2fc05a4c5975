package directory

import (
	"time"
)

// View is the explicit state for one directory browsing session: the
// loaded record set, the active filter, and the pagination window. State
// transitions are plain methods so the pipeline is testable without an
// HTTP harness.
type View struct {
	records  []Employee
	criteria Criteria
	page     int
	pageSize int
	failed   bool
	loadSeq  uint64
	doneSeq  uint64
	now      func() time.Time
}

const DefaultPageSize = 10

// NewView creates an empty view. nowFn is injectable for deterministic
// tests; pass nil for the wall clock.
func NewView(pageSize int, nowFn func() time.Time) *View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if nowFn == nil {
		nowFn = time.Now
	}
	return &View{page: 1, pageSize: pageSize, now: nowFn}
}

// BeginLoad marks the start of a fetch and returns its sequence number.
// Completions carrying an older sequence than the latest BeginLoad are
// discarded, so a slow stale response can never overwrite newer results.
func (v *View) BeginLoad() uint64 {
	v.loadSeq++
	return v.loadSeq
}

// CompleteLoad installs a fetch result. Stale completions are ignored. A
// failed fetch empties the record set rather than showing partial data.
func (v *View) CompleteLoad(seq uint64, records []Employee, err error) {
	if seq <= v.doneSeq {
		return
	}
	v.doneSeq = seq
	if err != nil {
		v.records = nil
		v.failed = true
		return
	}
	v.records = records
	v.failed = false
	v.clampPage()
}

// Failed reports whether the most recent load attempt failed.
func (v *View) Failed() bool {
	return v.failed
}

// SetFilter replaces the active criteria and returns to the first page.
// Changing any filter always puts the user back at the top of results.
func (v *View) SetFilter(criteria Criteria) {
	v.criteria = criteria
	v.page = 1
}

// Criteria returns the active filter selections.
func (v *View) Criteria() Criteria {
	return v.criteria
}

// SetPage clamps n into [1, TotalPages] instead of erroring on
// out-of-range input.
func (v *View) SetPage(n int) {
	v.page = n
	v.clampPage()
}

// Page returns the current page, 1-based.
func (v *View) Page() int {
	return v.page
}

// PageSize returns the fixed page size.
func (v *View) PageSize() int {
	return v.pageSize
}

// Filtered returns every record passing the active criteria, in load order.
func (v *View) Filtered() []Employee {
	now := v.now()
	out := make([]Employee, 0, len(v.records))
	for _, emp := range v.records {
		if v.criteria.Matches(emp, now) {
			out = append(out, emp)
		}
	}
	return out
}

// FilteredCount returns the total number of records passing the filter.
func (v *View) FilteredCount() int {
	return len(v.Filtered())
}

// TotalPages is at least 1 even when the filtered set is empty.
func (v *View) TotalPages() int {
	_, _, total := Paginate(v.Filtered(), v.page, v.pageSize)
	return total
}

// VisibleRecords returns the current page's window of the filtered set.
func (v *View) VisibleRecords() []Employee {
	window, _, _ := Paginate(v.Filtered(), v.page, v.pageSize)
	return window
}

func (v *View) clampPage() {
	_, page, _ := Paginate(v.Filtered(), v.page, v.pageSize)
	v.page = page
}

// Paginate clamps page into [1, totalPages] over records and returns that
// page's window. totalPages is at least 1 even for an empty set, so a page
// indicator always has something to show.
func Paginate(records []Employee, page, pageSize int) (window []Employee, clampedPage, totalPages int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages = 1
	if len(records) > 0 {
		totalPages = (len(records) + pageSize - 1) / pageSize
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return nil, page, totalPages
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end], page, totalPages
}
