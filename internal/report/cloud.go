package report

import (
	"fmt"
	"image/color"
	"image/png"
	"os"

	"github.com/psykhi/wordclouds"

	"github.com/custodia-labs/lexfreq-cli/internal/core/domain"
	"github.com/custodia-labs/lexfreq-cli/internal/core/ports/driven"
)

// Ensure WordCloud implements the interface.
var _ driven.CloudRenderer = (*WordCloud)(nil)

// cloudColors is the palette terms cycle through.
var cloudColors = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
}

// WordCloud renders rankings as PNG word clouds with term sizes
// proportional to frequency.
type WordCloud struct {
	fontPath string
	width    int
	height   int
}

// NewWordCloud creates a renderer using the TTF font at fontPath.
// It fails when the font file is not readable, so callers can fall
// back to CSV-only output.
func NewWordCloud(fontPath string) (*WordCloud, error) {
	if fontPath == "" {
		return nil, fmt.Errorf("font path: %w", domain.ErrInvalidInput)
	}
	if _, err := os.Stat(fontPath); err != nil {
		return nil, fmt.Errorf("font file: %w", err)
	}
	return &WordCloud{
		fontPath: fontPath,
		width:    1600,
		height:   900,
	}, nil
}

// Render draws the ranking as a word cloud and writes it to dest as
// PNG. An empty ranking is skipped entirely and writes nothing.
func (r *WordCloud) Render(ranking domain.Ranking, dest string) error {
	if len(ranking) == 0 {
		return nil
	}

	counts := make(map[string]int, len(ranking))
	for _, entry := range ranking {
		counts[entry.Key] = entry.Count
	}

	cloud := wordclouds.NewWordcloud(
		counts,
		wordclouds.FontFile(r.fontPath),
		wordclouds.FontMaxSize(120),
		wordclouds.FontMinSize(14),
		wordclouds.Width(r.width),
		wordclouds.Height(r.height),
		wordclouds.Colors(cloudColors),
		wordclouds.BackgroundColor(color.White),
	)

	img := cloud.Draw()

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
