package dashboard

import (
	"errors"
	"testing"

	"github.com/Veraticus/salesdash/internal/sales"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withPages returns a dashboard that has applied a records page with the
// given page count and then moved to page.
func withPages(t *testing.T, total, page int) Dashboard {
	t.Helper()
	d := New(sales.Month(3), "")
	gen, _ := d.Begin()
	require.True(t, d.Apply(Result{
		Generation: gen,
		Records:    &sales.RecordPage{Records: []sales.Record{}, TotalPages: total},
	}))
	for d.Page() < page {
		require.True(t, d.NextPage())
	}
	return d
}

func TestNew(t *testing.T) {
	d := New(sales.Month(5), "shirt")
	assert.Equal(t, Filter{Month: 5, Search: "shirt", Page: 1}, d.Filter())
	assert.Equal(t, 1, d.TotalPages())
	assert.False(t, d.Loading())
	assert.Empty(t, d.Records())
	assert.Empty(t, d.Series())

	invalid := New(sales.Month(0), "")
	assert.Equal(t, sales.DefaultMonth, invalid.Filter().Month)
}

func TestSetMonthAndSearchResetPage(t *testing.T) {
	d := withPages(t, 5, 4)
	require.Equal(t, 4, d.Page())

	assert.True(t, d.SetMonth(sales.Month(7)))
	assert.Equal(t, 1, d.Page())
	assert.Equal(t, sales.Month(7), d.Filter().Month)

	require.True(t, d.NextPage())
	require.True(t, d.NextPage())
	assert.True(t, d.SetSearchTerm("watch"))
	assert.Equal(t, 1, d.Page())
	assert.Equal(t, "watch", d.Filter().Search)

	sequence := []func() bool{
		func() bool { return d.SetMonth(sales.Month(1)) },
		func() bool { return d.SetSearchTerm("w") },
		func() bool { return d.SetSearchTerm("") },
		func() bool { return d.SetMonth(sales.Month(12)) },
	}
	for _, step := range sequence {
		d.NextPage()
		step()
		assert.Equal(t, 1, d.Page())
	}
}

func TestSetMonthUnchangedFilter(t *testing.T) {
	d := New(sales.Month(3), "")
	assert.False(t, d.SetMonth(sales.Month(3)), "same month on page 1 changes nothing")
	assert.False(t, d.SetSearchTerm(""))

	d = withPages(t, 3, 2)
	assert.True(t, d.SetMonth(sales.Month(3)), "same month still resets the page")
	assert.Equal(t, 1, d.Page())
}

func TestPaging(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		d := withPages(t, 5, 3)
		assert.True(t, d.NextPage())
		assert.Equal(t, 4, d.Page())

		d = withPages(t, 5, 3)
		assert.True(t, d.PrevPage())
		assert.Equal(t, 2, d.Page())
	})

	t.Run("next is a no-op on the last page", func(t *testing.T) {
		d := withPages(t, 5, 5)
		assert.False(t, d.HasNext())
		assert.False(t, d.NextPage())
		assert.Equal(t, 5, d.Page())
	})

	t.Run("prev is a no-op on the first page", func(t *testing.T) {
		d := withPages(t, 5, 1)
		assert.False(t, d.HasPrev())
		assert.False(t, d.PrevPage())
		assert.Equal(t, 1, d.Page())
	})

	t.Run("zero pages", func(t *testing.T) {
		d := withPages(t, 0, 1)
		assert.False(t, d.NextPage())
		assert.False(t, d.PrevPage())
		assert.Equal(t, 1, d.Page())
	})
}

func TestBeginIssuesIncreasingGenerations(t *testing.T) {
	d := New(sales.Month(3), "")
	g1, f1 := d.Begin()
	g2, _ := d.Begin()

	assert.Less(t, uint64(g1), uint64(g2))
	assert.Equal(t, g2, d.Latest())
	assert.Equal(t, d.Filter(), f1)
	assert.True(t, d.Loading())
}

func TestApplyDiscardsStaleGenerations(t *testing.T) {
	d := New(sales.Month(3), "")
	old, _ := d.Begin()
	d.SetMonth(sales.Month(4))
	current, _ := d.Begin()

	applied := d.Apply(Result{
		Generation: current,
		Records:    &sales.RecordPage{Records: []sales.Record{{ID: "new", Title: "April"}}, TotalPages: 2},
		Statistics: &sales.Statistics{TotalSaleAmount: 20},
		Chart:      sales.ChartSeries{"April": 1},
	})
	require.True(t, applied)
	assert.False(t, d.Loading())

	// The slower March round lands afterwards and must not win.
	applied = d.Apply(Result{
		Generation: old,
		Records:    &sales.RecordPage{Records: []sales.Record{{ID: "old", Title: "March"}}, TotalPages: 9},
		Statistics: &sales.Statistics{TotalSaleAmount: 10},
		Chart:      sales.ChartSeries{"March": 1},
	})
	assert.False(t, applied)

	assert.Equal(t, "April", d.Records()[0].Title)
	assert.Equal(t, 2, d.TotalPages())
	assert.Equal(t, 20.0, d.Statistics().TotalSaleAmount)
	assert.Equal(t, sales.ChartSeries{"April": 1}, d.Series())
	assert.Equal(t, current, d.Applied())
}

func TestApplyKeepsLoadingUntilLatestArrives(t *testing.T) {
	d := New(sales.Month(3), "")
	old, _ := d.Begin()
	d.NextPage()
	_, _ = d.Begin()

	assert.False(t, d.Apply(Result{Generation: old}))
	assert.True(t, d.Loading())
}

func TestApplyPartialFailure(t *testing.T) {
	d := New(sales.Month(3), "")
	gen, _ := d.Begin()
	require.True(t, d.Apply(Result{
		Generation: gen,
		Records:    &sales.RecordPage{Records: []sales.Record{{ID: "1"}}, TotalPages: 1},
		Statistics: &sales.Statistics{TotalSaleAmount: 5, TotalSoldItems: 1},
		Chart:      sales.ChartSeries{"Toys": 1},
	}))

	gen, _ = d.Begin()
	require.True(t, d.Apply(Result{
		Generation:    gen,
		Records:       &sales.RecordPage{Records: []sales.Record{{ID: "2"}}, TotalPages: 3},
		StatisticsErr: errors.New("boom"),
		Chart:         sales.ChartSeries{"Toys": 2, "Electronics": 4},
	}))

	assert.Equal(t, sales.RecordID("2"), d.Records()[0].ID)
	assert.Equal(t, 3, d.TotalPages())
	assert.Equal(t, sales.ChartSeries{"Toys": 2, "Electronics": 4}, d.Series())
	assert.Equal(t, sales.Statistics{TotalSaleAmount: 5, TotalSoldItems: 1}, d.Statistics(), "failed part keeps its previous value")
	assert.False(t, d.Loading())
}
