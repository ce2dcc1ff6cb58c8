// Package progress reports page-fetch progress for aggregated listings.
//
// Purpose:
//
//	Show how far a fetch-all customer listing has progressed while the
//	client walks the result pages. Output goes to stderr so it never
//	interferes with the rendered result on stdout.
package progress

import (
	"fmt"
	"io"
	"os"
)

// Indicator tracks progress across sequential page fetches.
type Indicator struct {
	writer  io.Writer
	enabled bool
}

// NewIndicator creates an indicator writing to w. A nil w defaults to
// stderr.
func NewIndicator(w io.Writer) *Indicator {
	if w == nil {
		w = os.Stderr
	}
	return &Indicator{writer: w, enabled: true}
}

// Disable suppresses all output, for scripted or quiet runs.
func (p *Indicator) Disable() {
	p.enabled = false
}

// PageFetched reports one completed page. It matches the page callback
// signature of the provisioning client.
func (p *Indicator) PageFetched(fetched, total int64) {
	if !p.enabled || total == 0 {
		return
	}
	percent := float64(fetched) / float64(total) * 100
	fmt.Fprintf(p.writer, "\rfetching customers: %.1f%% (%d/%d)", percent, fetched, total)
	if fetched >= total {
		fmt.Fprintln(p.writer)
	}
}
