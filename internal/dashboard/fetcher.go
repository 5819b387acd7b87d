package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/Veraticus/salesdash/internal/sales"
	"golang.org/x/sync/errgroup"
)

// Source is the remote sales service.
type Source interface {
	Records(ctx context.Context, search string, page int, month sales.Month) (sales.RecordPage, error)
	Statistics(ctx context.Context, month sales.Month) (sales.Statistics, error)
	BarChart(ctx context.Context, month sales.Month) (sales.ChartSeries, error)
}

// Result is the outcome of one refresh round. Each part carries either a
// value or its own error.
type Result struct {
	RecordsErr    error
	StatisticsErr error
	ChartErr      error
	Records       *sales.RecordPage
	Statistics    *sales.Statistics
	Chart         sales.ChartSeries
	Filter        Filter
	Generation    Generation
}

// Err returns the first part error, if any.
func (r Result) Err() error {
	switch {
	case r.RecordsErr != nil:
		return r.RecordsErr
	case r.StatisticsErr != nil:
		return r.StatisticsErr
	default:
		return r.ChartErr
	}
}

// Fetcher runs the three queries of a refresh round concurrently.
type Fetcher struct {
	source  Source
	logger  *slog.Logger
	timeout time.Duration
}

// NewFetcher creates a fetcher. A zero timeout means the caller's context
// alone bounds a round.
func NewFetcher(source Source, logger *slog.Logger, timeout time.Duration) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		source:  source,
		logger:  logger,
		timeout: timeout,
	}
}

// Fetch issues the records, statistics and chart queries together and
// returns once all three have finished. Failures are logged and reported
// per part; they never stop the other parts.
func (f *Fetcher) Fetch(ctx context.Context, gen Generation, filter Filter) Result {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	result := Result{
		Generation: gen,
		Filter:     filter,
	}
	log := f.logger.With(
		"generation", uint64(gen),
		"month", filter.Month.Code(),
		"search", filter.Search,
		"page", filter.Page,
	)

	// A plain Group: one failing part must not cancel its siblings.
	var g errgroup.Group

	g.Go(func() error {
		page, err := f.source.Records(ctx, filter.Search, filter.Page, filter.Month)
		if err != nil {
			log.Error("Error fetching transactions", "error", err)
			result.RecordsErr = err
			return nil
		}
		result.Records = &page
		return nil
	})

	g.Go(func() error {
		stats, err := f.source.Statistics(ctx, filter.Month)
		if err != nil {
			log.Error("Error fetching statistics", "error", err)
			result.StatisticsErr = err
			return nil
		}
		result.Statistics = &stats
		return nil
	})

	g.Go(func() error {
		series, err := f.source.BarChart(ctx, filter.Month)
		if err != nil {
			log.Error("Error fetching bar chart data", "error", err)
			result.ChartErr = err
			return nil
		}
		result.Chart = series
		return nil
	})

	_ = g.Wait()

	log.Debug("Refresh round finished", "failed", result.Err() != nil)
	return result
}
