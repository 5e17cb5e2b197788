package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotPage = `<html><body>
<table class="snapshot-table2">
<tr>
<td class="snapshot-td2-cp">Inst Trans</td><td class="snapshot-td2"><b>12.40%</b></td>
<td class="snapshot-td2-cp">EPS Q/Q</td><td class="snapshot-td2"><b><span class="is-positive">60.50%</span></b></td>
<td class="snapshot-td2-cp">EPS next Y</td><td class="snapshot-td2"><b>35.00%</b></td>
</tr>
<tr>
<td class="snapshot-td2-cp">Short Float</td><td class="snapshot-td2"><b>22.1%</b></td>
<td class="snapshot-td2-cp">Short Ratio</td><td class="snapshot-td2"><b>1.85</b></td>
<td class="snapshot-td2-cp">Insider Trans</td><td class="snapshot-td2"><b>(3.25%)</b></td>
</tr>
<tr>
<td class="snapshot-td2-cp">ROE</td><td class="snapshot-td2"><b>-</b></td>
<td class="snapshot-td2-cp">Profit Margin</td><td class="snapshot-td2"><b>48.85%</b></td>
<td class="snapshot-td2-cp">Perf YTD</td><td class="snapshot-td2"><b>-12.06%</b></td>
</tr>
</table>
</body></html>`

func TestExtractFields_SnapshotTable(t *testing.T) {
	f := ExtractFields(snapshotPage)

	require.NotNil(t, f.InstTrans)
	assert.InDelta(t, 12.4, *f.InstTrans, 1e-9)
	require.NotNil(t, f.EPSQoQ)
	assert.InDelta(t, 60.5, *f.EPSQoQ, 1e-9)
	require.NotNil(t, f.EPSNextY)
	assert.InDelta(t, 35.0, *f.EPSNextY, 1e-9)
	require.NotNil(t, f.ShortFloat)
	assert.InDelta(t, 22.1, *f.ShortFloat, 1e-9)
	require.NotNil(t, f.ShortRatio)
	assert.InDelta(t, 1.85, *f.ShortRatio, 1e-9)
	require.NotNil(t, f.InsiderTrans)
	assert.InDelta(t, -3.25, *f.InsiderTrans, 1e-9)
	require.NotNil(t, f.ProfitMargin)
	assert.InDelta(t, 48.85, *f.ProfitMargin, 1e-9)
	require.NotNil(t, f.PerfYTD)
	assert.InDelta(t, -12.06, *f.PerfYTD, 1e-9)

	assert.Nil(t, f.ROE, "dash means absent")
	assert.Nil(t, f.EPSPast5Y, "missing label")
	assert.Nil(t, f.PerfWeek)
}

func TestExtractFields_RegexFallback(t *testing.T) {
	// Not a table: the DOM lookup cannot pair cells, so the text patterns apply.
	page := `<div>EPS past 5Y</td><td width="8%"><b>18.2%</b></div>`
	f := ExtractFields(page)
	require.NotNil(t, f.EPSPast5Y)
	assert.InDelta(t, 18.2, *f.EPSPast5Y, 1e-9)
	assert.Nil(t, f.InstTrans)
}

func TestExtractFields_EmptyDocument(t *testing.T) {
	f := ExtractFields("")
	for _, target := range f.Targets() {
		assert.Nil(t, *target.Dst, target.Label)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"12.5%", ptr(12.5)},
		{"-4.10%", ptr(-4.1)},
		{"(3.2%)", ptr(-3.2)},
		{"(7)", ptr(-7)},
		{"1.85", ptr(1.85)},
		{"1,234.5", ptr(1234.5)},
		{"2.41B", ptr(2.41)},
		{"0.00", nil},
		{"0.00%", ptr(0)},
		{"-", nil},
		{"", nil},
		{"  ", nil},
		{"N/A", nil},
		{"abc%", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseValue(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func ptr(v float64) *float64 { return &v }
