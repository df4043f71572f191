// Package extract recovers shipping parameters from free text with regex
// heuristics. It is best-effort prefill for presentation shells and is not on
// the agent resolution path; any field may stay unset.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// ShippingInfo holds whatever fields could be recovered. Zero values mean the
// field was not found.
type ShippingInfo struct {
	WeightGrams float64 `json:"weight,omitempty"`
	ItemValue   float64 `json:"item_value,omitempty"`
	Origin      string  `json:"origin,omitempty"`
	Destination string  `json:"destination,omitempty"`
}

type weightPattern struct {
	re      *regexp.Regexp
	inKilos bool
}

var weightPatterns = []weightPattern{
	{re: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*kg`), inKilos: true},
	{re: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*kilogram`), inKilos: true},
	{re: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*gram`)},
	{re: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*g\b`)},
}

var valuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`rp\s*(\d+(?:,\d+)*(?:\.\d+)?)`),
	regexp.MustCompile(`rupiah\s*(\d+(?:,\d+)*(?:\.\d+)?)`),
	regexp.MustCompile(`(\d+(?:,\d+)*(?:\.\d+)?)\s*rupiah`),
}

type locationPattern struct {
	re       *regexp.Regexp
	isOrigin bool
}

// The keyword alternation is fragile for multi-word city names; a location is
// captured lazily up to the next direction keyword or end of text.
var locationPatterns = buildLocationPatterns()

func buildLocationPatterns() []locationPattern {
	origin := map[string]bool{"dari": true, "from": true, "asal": true}
	patterns := make([]locationPattern, 0, 6)
	for _, kw := range []string{"dari", "from", "ke", "to", "menuju", "asal"} {
		patterns = append(patterns, locationPattern{
			re:       regexp.MustCompile(kw + `\s+([a-z\s]+?)(?:\s+(?:ke|to|menuju)|$)`),
			isOrigin: origin[kw],
		})
	}
	return patterns
}

// ShippingInfoFrom scans text for weight, item value, and origin/destination
// hints. Weight is normalized to grams; thousands separators are stripped from
// values.
func ShippingInfoFrom(text string) ShippingInfo {
	lower := strings.ToLower(text)
	info := ShippingInfo{}

	for _, p := range weightPatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if p.inKilos {
			value *= 1000
		}
		info.WeightGrams = value
		break
	}

	for _, re := range valuePatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		info.ItemValue = value
		break
	}

	for _, p := range locationPatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		location := strings.TrimSpace(m[1])
		if location == "" {
			continue
		}
		if p.isOrigin {
			info.Origin = location
		} else {
			info.Destination = location
		}
	}

	return info
}
