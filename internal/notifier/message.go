package notifier

import (
	"fmt"
	"html"
	"strings"

	"CanslimScanner/internal/model"
)

// FormatRunSummary renders the top n symbols of a snapshot as a Telegram HTML message.
func FormatRunSummary(snap *model.Snapshot, n int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>CANSLIM Scanner</b> | %s\n", snap.LastUpdated.Format("2006-01-02 15:04 MST")))
	b.WriteString(fmt.Sprintf("Run <code>%s</code>, %d stocks rated\n\n", html.EscapeString(snap.RunID), len(snap.Stocks)))

	if len(snap.Stocks) == 0 {
		b.WriteString("No stocks rated in this run.")
		return b.String()
	}
	if n > len(snap.Stocks) {
		n = len(snap.Stocks)
	}
	if n <= 0 {
		return strings.TrimRight(b.String(), "\n")
	}

	b.WriteString("<pre>")
	b.WriteString("#   Sym    Comp EPS RS  A/D SMR I/G\n")
	for i, s := range snap.Stocks[:n] {
		row := fmt.Sprintf("%-3d %-6s %4d %3d %3d %3s %3s %3s (%d/4)\n",
			i+1, s.Symbol, s.CompositeRating, s.EPSRating, s.RSRating,
			s.AccDisRating, s.SMRRating, s.InstGrowthGrade, s.InstGrowthPassed)
		b.WriteString(html.EscapeString(row))
	}
	b.WriteString("</pre>")
	return b.String()
}
