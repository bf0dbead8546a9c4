package cmd

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// startInlineSpinner starts a simple inline spinner animation on a single
// line, updating at the given interval. The returned function stops the
// spinner and clears the line.
func startInlineSpinner(w io.Writer, text string, interval time.Duration) func() {
	frames := []string{"|", "/", "-", "\\"}
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// Clear the spinner line completely, then return
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], text)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}

// renderTable prints rows as a pterm table with a header row.
func renderTable(header []string, rows [][]string) {
	data := pterm.TableData{header}
	data = append(data, rows...)
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// money formats an amount for table cells.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// qty trims trailing zeros from quantities.
func qty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
