package report

import (
	"fmt"
	"strings"

	"CanslimScanner/internal/model"
)

const ruleWidth = 100

// FormatLeaderboard renders the top n ranked symbols as a fixed-width table.
func FormatLeaderboard(stocks []model.RatedSymbol, n int) string {
	if n > len(stocks) {
		n = len(stocks)
	}
	var b strings.Builder

	heavy := strings.Repeat("═", ruleWidth)
	b.WriteString(heavy + "\n")
	b.WriteString(fmt.Sprintf("TOP %d CANSLIM LEADERS WITH INSTITUTIONAL/GROWTH SCORES\n", n))
	b.WriteString(heavy + "\n")
	b.WriteString("Rank | Symbol | Comp | EPS | RS  | A/D | SMR | Grp | I/G Grade | InstTr% | EPSq% | Short% | EPSnxtY%\n")
	b.WriteString(strings.Repeat("─", ruleWidth) + "\n")

	for i, s := range stocks[:n] {
		b.WriteString(fmt.Sprintf("%4d | %-6s | %4d | %3d | %3d | %3s | %3s | %3d | %5s (%d/4) |%s |%s |%s |%s\n",
			i+1, s.Symbol, s.CompositeRating, s.EPSRating, s.RSRating,
			s.AccDisRating, s.SMRRating, s.GroupRank,
			s.InstGrowthGrade, s.InstGrowthPassed,
			formatPct(s.InstTrans), formatPct(s.EPSQoQ), formatPct(s.ShortFloat), formatPct(s.EPSNextY)))
	}

	b.WriteString(heavy + "\n")
	return b.String()
}

// FormatSaved is the closing line of a run.
func FormatSaved(count int, path string) string {
	return fmt.Sprintf("Saved %d stocks to %s\n", count, path)
}

func formatPct(v *float64) string {
	if v == nil {
		return "   N/A"
	}
	return fmt.Sprintf("%6.1f", *v)
}
