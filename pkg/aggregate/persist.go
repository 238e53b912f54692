package aggregate

import (
	"encoding/json"
	"os"

	"github.com/trendlens/runway-color/internal/utils"
	"github.com/trendlens/runway-color/pkg/types"
)

// writeJSON marshals v and writes it atomically, so readers never observe a
// partially written file. Failures surface as *PersistenceError.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	if err := utils.WriteFileAtomic(path, data, 0644); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	return nil
}

// LoadColorAnalysis reads a season analysis previously written by
// AnalyzeSeason.
func LoadColorAnalysis(path string) (types.SeasonColorStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var season types.SeasonColorStats
	if err := json.Unmarshal(data, &season); err != nil {
		return nil, err
	}
	return season, nil
}

// LoadColorDictionary reads a dictionary previously written by
// CreateColorDictionary.
func LoadColorDictionary(path string) (types.ColorDictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var dict types.ColorDictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, err
	}
	return dict, nil
}
