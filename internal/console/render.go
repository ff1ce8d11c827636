// Package console renders monitoring results to a terminal, coloring
// each row by whether the USD strengthened or weakened against the
// currency since the stored baseline.
package console

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/mikeoc61/currency-monitor/pkg/domain"
	"github.com/mikeoc61/currency-monitor/pkg/service/monitor"
)

const timeLayout = "06-01-02 15:04 MST"

// Renderer writes monitoring results to a terminal.
type Renderer struct {
	out    io.Writer
	green  *color.Color
	red    *color.Color
	yellow *color.Color
}

// New creates a renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
	}
}

// Timestamp formats a time the way the console output expects it.
func Timestamp(t time.Time) string {
	return t.Local().Format(timeLayout)
}

// RenderResult writes one row per basket currency: the rate both as
// XXX/USD and USD/XXX, plus the percent change when a baseline exists.
func (r *Renderer) RenderResult(res *monitor.Result) {
	fmt.Fprintf(r.out, "%s Rates as of %s\n", Timestamp(time.Now()), Timestamp(res.FetchedAt))
	for _, d := range res.Deltas {
		r.renderDelta(d)
	}
}

func (r *Renderer) renderDelta(d domain.Delta) {
	if d.Unavailable {
		r.yellow.Fprintf(r.out, "%s/USD: unavailable\n", d.Currency)
		return
	}

	q := domain.Quote{Currency: d.Currency, Rate: d.Rate}
	row := fmt.Sprintf("%s/USD: %8.5f   USD/%s: %9.5f",
		d.Currency, q.Inverse(), d.Currency, d.Rate)

	if !d.HasChange() {
		fmt.Fprintln(r.out, row)
		return
	}

	c := r.yellow
	switch d.Direction {
	case domain.Up:
		c = r.green
	case domain.Down:
		c = r.red
	}
	c.Fprintf(r.out, "%s   %+5.2f%% (%s)\n", row, d.ChangePct, d.Direction)
}

// RenderError reports a failed pass without stopping the poller loop.
func (r *Renderer) RenderError(err error) {
	r.red.Fprintf(r.out, "%s Update failed: %v\n", Timestamp(time.Now()), err)
}

// Countdown rewrites a single line showing time remaining until the next
// update, ticking once per second. It returns when the duration elapses
// or done is closed.
func (r *Renderer) Countdown(done <-chan struct{}, d time.Duration) {
	deadline := time.Now().Add(d)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		remaining := time.Until(deadline).Round(time.Second)
		if remaining <= 0 {
			fmt.Fprintf(r.out, "\r%-40s\r", "")
			return
		}
		fmt.Fprintf(r.out, "\rNext update in %-24s", remaining)

		select {
		case <-done:
			fmt.Fprintln(r.out)
			return
		case <-ticker.C:
		}
	}
}
