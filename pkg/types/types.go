package types

import "sort"

// ColorObservation is one dominant color found in a single image, together
// with the share of the image's pixels assigned to it.
type ColorObservation struct {
	Color      string  `json:"color"`      // "#rrggbb", lower-case, zero-padded
	Percentage float64 `json:"percentage"` // area share in [0,100], 2 decimal places
}

// ColorStat aggregates a single color across the images of one collection.
type ColorStat struct {
	Count             int     `json:"count"`
	AveragePercentage float64 `json:"average_percentage"`
}

// CollectionColorStats maps a hex color to its aggregated statistics for one
// designer collection.
type CollectionColorStats map[string]ColorStat

// RankedColor is a hex color paired with its collection statistics, used when
// a deterministic ordering is needed.
type RankedColor struct {
	Color string
	Stat  ColorStat
}

// Ranked returns the collection colors sorted by count descending, then
// average percentage descending, then hex ascending. Colors that appear in
// many images rank above colors that are merely dominant in one.
func (s CollectionColorStats) Ranked() []RankedColor {
	ranked := make([]RankedColor, 0, len(s))
	for hex, stat := range s {
		ranked = append(ranked, RankedColor{Color: hex, Stat: stat})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Stat.Count != ranked[j].Stat.Count {
			return ranked[i].Stat.Count > ranked[j].Stat.Count
		}
		if ranked[i].Stat.AveragePercentage != ranked[j].Stat.AveragePercentage {
			return ranked[i].Stat.AveragePercentage > ranked[j].Stat.AveragePercentage
		}
		return ranked[i].Color < ranked[j].Color
	})
	return ranked
}

// SeasonColorStats maps a designer name to that collection's color statistics.
// Serialized as color_analysis.json at the season directory level.
type SeasonColorStats map[string]CollectionColorStats

// DictionaryColor is one entry in the per-designer color dictionary.
type DictionaryColor struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// DictionaryEntry summarizes one designer collection for the season color
// dictionary: total images analyzed and the retained top colors.
type DictionaryEntry struct {
	TotalImages int                        `json:"total_images"`
	Colors      map[string]DictionaryColor `json:"colors"`
}

// ColorDictionary maps a designer name to its dictionary entry. Serialized as
// color_dictionary.json at the season directory level.
type ColorDictionary map[string]DictionaryEntry

// LabelResult is the parsed response of the vision model for one runway look.
type LabelResult struct {
	Category   string   `json:"category"`
	Attributes []string `json:"attributes"`
	Colors     []string `json:"colors"`
	Confidence float64  `json:"confidence"`
}

// CollectionLabelStats aggregates garment label frequencies over one
// designer collection.
type CollectionLabelStats struct {
	TotalImages int            `json:"total_images"`
	Categories  map[string]int `json:"categories"`
	Attributes  map[string]int `json:"attributes"`
}
