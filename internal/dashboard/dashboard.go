// Package dashboard holds the filter, pagination and refresh state of the
// sales dashboard, independent of how it is drawn.
package dashboard

import (
	"github.com/Veraticus/salesdash/internal/sales"
)

// Filter selects what the dashboard fetches.
type Filter struct {
	Search string
	Month  sales.Month
	Page   int
}

// Generation numbers refresh rounds. Only the latest one may update state.
type Generation uint64

// Dashboard is the data-refresh and pagination state machine.
//
// Every mutator reports whether the filter changed; callers start a new
// refresh round with Begin when it did.
type Dashboard struct {
	series     sales.ChartSeries
	records    []sales.Record
	filter     Filter
	stats      sales.Statistics
	totalPages int
	latest     Generation
	applied    Generation
	loading    bool
}

// New returns a dashboard on page 1 of month with the given search term.
func New(month sales.Month, search string) Dashboard {
	if !month.Valid() {
		month = sales.DefaultMonth
	}
	return Dashboard{
		filter: Filter{
			Month:  month,
			Search: search,
			Page:   1,
		},
		totalPages: 1,
		records:    []sales.Record{},
		series:     sales.ChartSeries{},
	}
}

// Filter returns the current filter.
func (d *Dashboard) Filter() Filter {
	return d.filter
}

// Page returns the current page number.
func (d *Dashboard) Page() int {
	return d.filter.Page
}

// TotalPages returns the page count from the last applied records response.
func (d *Dashboard) TotalPages() int {
	return d.totalPages
}

// SetMonth replaces the month and resets the page to 1.
func (d *Dashboard) SetMonth(month sales.Month) bool {
	before := d.filter
	d.filter.Month = month
	d.filter.Page = 1
	return before != d.filter
}

// SetSearchTerm replaces the search term and resets the page to 1.
func (d *Dashboard) SetSearchTerm(term string) bool {
	before := d.filter
	d.filter.Search = term
	d.filter.Page = 1
	return before != d.filter
}

// HasNext reports whether NextPage would move.
func (d *Dashboard) HasNext() bool {
	return d.filter.Page < d.totalPages
}

// HasPrev reports whether PrevPage would move.
func (d *Dashboard) HasPrev() bool {
	return d.filter.Page > 1
}

// NextPage advances one page unless already on the last one.
func (d *Dashboard) NextPage() bool {
	if !d.HasNext() {
		return false
	}
	d.filter.Page++
	return true
}

// PrevPage goes back one page unless already on the first one.
func (d *Dashboard) PrevPage() bool {
	if !d.HasPrev() {
		return false
	}
	d.filter.Page--
	return true
}

// Begin opens a new refresh round for the current filter.
func (d *Dashboard) Begin() (Generation, Filter) {
	d.latest++
	d.loading = true
	return d.latest, d.filter
}

// Latest returns the most recently issued generation.
func (d *Dashboard) Latest() Generation {
	return d.latest
}

// Applied returns the generation whose results are currently shown.
func (d *Dashboard) Applied() Generation {
	return d.applied
}

// Loading reports whether the latest round is still outstanding.
func (d *Dashboard) Loading() bool {
	return d.loading
}

// Apply folds a finished round into the dashboard. Results from any round
// other than the latest are discarded and Apply returns false. A part that
// failed leaves its previous value untouched.
func (d *Dashboard) Apply(r Result) bool {
	if r.Generation != d.latest {
		return false
	}

	if r.RecordsErr == nil && r.Records != nil {
		d.records = r.Records.Records
		d.totalPages = r.Records.TotalPages
	}
	if r.StatisticsErr == nil && r.Statistics != nil {
		d.stats = *r.Statistics
	}
	if r.ChartErr == nil && r.Chart != nil {
		d.series = r.Chart
	}

	d.applied = r.Generation
	d.loading = false
	return true
}

// Records returns the records of the last applied page.
func (d *Dashboard) Records() []sales.Record {
	return d.records
}

// Statistics returns the last applied month totals.
func (d *Dashboard) Statistics() sales.Statistics {
	return d.stats
}

// Series returns the last applied chart series.
func (d *Dashboard) Series() sales.ChartSeries {
	return d.series
}
