package dashboard

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Veraticus/salesdash/internal/sales"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	recordsErr error
	statsErr   error
	chartErr   error
	inFlight   atomic.Int32
	maxFlight  atomic.Int32
	delay      time.Duration
}

func (f *fakeSource) enter() func() {
	n := f.inFlight.Add(1)
	for {
		cur := f.maxFlight.Load()
		if n <= cur || f.maxFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	time.Sleep(f.delay)
	return func() { f.inFlight.Add(-1) }
}

func (f *fakeSource) Records(_ context.Context, search string, page int, month sales.Month) (sales.RecordPage, error) {
	defer f.enter()()
	if f.recordsErr != nil {
		return sales.RecordPage{}, f.recordsErr
	}
	return sales.RecordPage{
		Records:    []sales.Record{{ID: "1", Title: search + " " + month.Code(), Price: float64(page)}},
		TotalPages: 5,
	}, nil
}

func (f *fakeSource) Statistics(_ context.Context, _ sales.Month) (sales.Statistics, error) {
	defer f.enter()()
	if f.statsErr != nil {
		return sales.Statistics{}, f.statsErr
	}
	return sales.Statistics{TotalSaleAmount: 1000.5, TotalSoldItems: 7, TotalUnsoldItems: 3}, nil
}

func (f *fakeSource) BarChart(ctx context.Context, _ sales.Month) (sales.ChartSeries, error) {
	defer f.enter()()
	if f.chartErr != nil {
		return nil, f.chartErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sales.ChartSeries{"Electronics": 4, "Toys": 2}, nil
}

func TestFetcher_AllParts(t *testing.T) {
	source := &fakeSource{delay: 20 * time.Millisecond}
	f := NewFetcher(source, nil, time.Second)

	filter := Filter{Month: 3, Search: "bag", Page: 2}
	result := f.Fetch(context.Background(), 7, filter)

	assert.Equal(t, Generation(7), result.Generation)
	assert.Equal(t, filter, result.Filter)
	require.NoError(t, result.Err())
	require.NotNil(t, result.Records)
	assert.Equal(t, "bag 03", result.Records.Records[0].Title)
	assert.Equal(t, 5, result.Records.TotalPages)
	require.NotNil(t, result.Statistics)
	assert.Equal(t, 7, result.Statistics.TotalSoldItems)
	assert.Equal(t, sales.ChartSeries{"Electronics": 4, "Toys": 2}, result.Chart)
	assert.Equal(t, int32(3), source.maxFlight.Load(), "the three queries run concurrently")
}

func TestFetcher_StatisticsFailureIsIsolated(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	source := &fakeSource{statsErr: errors.New("statistics down")}
	f := NewFetcher(source, logger, 0)

	result := f.Fetch(context.Background(), 1, Filter{Month: 3, Page: 1})

	assert.EqualError(t, result.StatisticsErr, "statistics down")
	assert.Nil(t, result.Statistics)
	assert.NoError(t, result.RecordsErr)
	assert.NoError(t, result.ChartErr)
	assert.NotNil(t, result.Records)
	assert.Len(t, result.Chart, 2)
	assert.Contains(t, logs.String(), "Error fetching statistics")
	assert.Contains(t, logs.String(), "statistics down")

	d := New(sales.Month(3), "")
	gen, _ := d.Begin()
	result.Generation = gen
	require.True(t, d.Apply(result))
	assert.Len(t, d.Records(), 1)
	assert.Len(t, d.Series(), 2)
	assert.Equal(t, sales.Statistics{}, d.Statistics())
}

func TestFetcher_AllPartsFail(t *testing.T) {
	boom := errors.New("connection refused")
	f := NewFetcher(&fakeSource{recordsErr: boom, statsErr: boom, chartErr: boom}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), 0)

	result := f.Fetch(context.Background(), 1, Filter{Month: 3, Page: 1})

	assert.ErrorIs(t, result.Err(), boom)
	assert.Nil(t, result.Records)
	assert.Nil(t, result.Statistics)
	assert.Nil(t, result.Chart)
}

func TestFetcher_Timeout(t *testing.T) {
	f := NewFetcher(&fakeSource{delay: 30 * time.Millisecond}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), 5*time.Millisecond)

	result := f.Fetch(context.Background(), 1, Filter{Month: 3, Page: 1})

	assert.ErrorIs(t, result.ChartErr, context.DeadlineExceeded)
}
