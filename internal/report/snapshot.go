package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"CanslimScanner/internal/model"
	"CanslimScanner/internal/strategy"
)

// BuildSnapshot assembles the output artifact from the ranked list, keeping at most topN records.
func BuildSnapshot(runID string, sources []string, ranked []model.RatedSymbol, topN int) *model.Snapshot {
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	weights := make(map[string]string, len(strategy.Weights))
	for _, w := range strategy.Weights {
		weights[w.Key] = fmt.Sprintf("%.0f%%", w.Weight*100)
	}
	stocks := make([]model.RatedSymbol, len(ranked))
	copy(stocks, ranked)
	return &model.Snapshot{
		RunID:          runID,
		LastUpdated:    time.Now().UTC(),
		DataSources:    sources,
		FinvizCriteria: strategy.CriteriaDescriptions(),
		RatingWeights:  weights,
		Stocks:         stocks,
	}
}

// LoadSnapshot reads a snapshot written by SaveSnapshot. Returns nil without error if the file doesn't exist.
func LoadSnapshot(filePath string) (*model.Snapshot, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", filePath, err)
	}
	return &snap, nil
}

// SaveSnapshot writes the snapshot as indented JSON, replacing any previous
// file. The data goes to a temp file in the same directory which is then
// renamed over filePath, so readers never see a partial file.
func SaveSnapshot(filePath string, snap *model.Snapshot) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod snapshot: %w", err)
	}
	if err := os.Rename(tmpName, filePath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
