package collector

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"CanslimScanner/internal/model"
)

// labelPatterns are tried in order when the DOM lookup finds nothing.
var labelPatterns = []string{
	`(?i)<td[^>]*>\s*%s\s*</td>\s*<td[^>]*class="snapshot-td2"[^>]*>([^<]+)<`,
	`(?i)>%s</td>\s*<td[^>]*>([^<]+)<`,
	`(?i)%s</td><td[^>]*><b>([^<]+)</b>`,
}

var (
	patternCache sync.Map // label -> []*regexp.Regexp
	leadingNum   = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

func patternsFor(label string) []*regexp.Regexp {
	if cached, ok := patternCache.Load(label); ok {
		return cached.([]*regexp.Regexp)
	}
	quoted := regexp.QuoteMeta(label)
	res := make([]*regexp.Regexp, len(labelPatterns))
	for i, p := range labelPatterns {
		res[i] = regexp.MustCompile(fmt.Sprintf(p, quoted))
	}
	patternCache.Store(label, res)
	return res
}

// ExtractFields parses every snapshot field out of an HTML page.
// Each field is located independently; a miss leaves only that field nil.
func ExtractFields(html string) *model.ScrapedFields {
	fields := &model.ScrapedFields{}

	cells := map[string]string{}
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		doc.Find("td").Each(func(_ int, cell *goquery.Selection) {
			label := strings.TrimSpace(cell.Text())
			if _, seen := cells[label]; seen || label == "" {
				return
			}
			next := cell.Next()
			if next.Length() == 0 || !next.Is("td") {
				return
			}
			cells[label] = strings.TrimSpace(next.Text())
		})
	}

	for _, target := range fields.Targets() {
		raw, ok := cells[target.Label]
		if !ok {
			raw, ok = matchLabel(html, target.Label)
		}
		if !ok {
			continue
		}
		*target.Dst = ParseValue(raw)
	}
	return fields
}

func matchLabel(html, label string) (string, bool) {
	for _, re := range patternsFor(label) {
		if m := re.FindStringSubmatch(html); m != nil && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

// ParseValue converts a snapshot cell into a number.
// "-" and blanks are absent, "12.5%" is 12.5, "(3.2%)" is -3.2.
// A plain number that parses to zero is treated as absent.
func ParseValue(raw string) *float64 {
	v := strings.TrimSpace(raw)
	if v == "" || v == "-" {
		return nil
	}

	if strings.HasSuffix(v, "%") {
		return parseLeading(strings.TrimSuffix(v, "%"))
	}
	if strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		n := parseLeading(strings.TrimSuffix(strings.TrimSpace(v[1:len(v)-1]), "%"))
		if n == nil {
			return nil
		}
		return model.Float(-*n)
	}

	n := parseLeading(v)
	if n == nil || *n == 0 {
		return nil
	}
	return n
}

func parseLeading(s string) *float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	m := leadingNum.FindString(s)
	if m == "" {
		return nil
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &n
}
