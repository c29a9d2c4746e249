package driven

import "github.com/custodia-labs/lexfreq-cli/internal/core/domain"

// ReportSink serialises a ranked frequency table to a destination.
type ReportSink interface {
	// WriteRanking writes the ranking as two-column tabular data with
	// a header row. An empty ranking writes nothing.
	WriteRanking(ranking domain.Ranking, dest string) error
}

// CloudRenderer renders a ranked frequency table as a visual word
// cloud with proportional term sizes.
type CloudRenderer interface {
	// Render writes an image for the ranking to dest. An empty
	// ranking is skipped entirely and writes nothing.
	Render(ranking domain.Ranking, dest string) error
}
