// Package report serialises ranked frequency tables: CSV tables and
// optional word-cloud images.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/custodia-labs/lexfreq-cli/internal/core/domain"
	"github.com/custodia-labs/lexfreq-cli/internal/core/ports/driven"
)

// Ensure CSVSink implements the interface.
var _ driven.ReportSink = (*CSVSink)(nil)

// CSVSink writes rankings as two-column CSV files.
type CSVSink struct{}

// NewCSVSink creates a new CSV sink.
func NewCSVSink() *CSVSink {
	return &CSVSink{}
}

// WriteRanking writes the ranking to dest with a "term,freq" header
// and one row per entry. An empty ranking writes nothing so empty
// tables never produce degenerate artifacts.
func (s *CSVSink) WriteRanking(ranking domain.Ranking, dest string) error {
	if len(ranking) == 0 {
		return nil
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}

	w := csv.NewWriter(f)
	rows := make([][]string, 0, len(ranking)+1)
	rows = append(rows, []string{"term", "freq"})
	for _, entry := range ranking {
		rows = append(rows, []string{entry.Key, strconv.Itoa(entry.Count)})
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	return f.Close()
}
