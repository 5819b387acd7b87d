package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/salesdash/internal/export"
	"github.com/schollz/progressbar/v3"
)

// PageProgress draws a progress bar while record pages are fetched. The
// bar is created on the first report, once the page count is known.
type PageProgress struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
	done   int
}

// NewPageProgress creates a page progress bar writing to w.
func NewPageProgress(w io.Writer) *PageProgress {
	return &PageProgress{writer: w}
}

// Report records that done of total pages have been fetched.
func (p *PageProgress) Report(done, total int) {
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.writer),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("[cyan][bold]Fetching pages...[reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				if _, err := fmt.Fprintln(p.writer); err != nil {
					slog.Warn("Failed to write newline after progress bar", "error", err)
				}
			}),
		)
	}

	p.done = done
	if err := p.bar.Set(done); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// Done returns the number of pages reported so far.
func (p *PageProgress) Done() int {
	return p.done
}

// Func adapts p to export.Collect.
func (p *PageProgress) Func() export.PageProgress {
	return p.Report
}
