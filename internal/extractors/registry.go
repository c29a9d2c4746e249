package extractors

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/lexfreq-cli/internal/core/domain"
	"github.com/custodia-labs/lexfreq-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexfreq-cli/internal/extractors/docx"
	"github.com/custodia-labs/lexfreq-cli/internal/extractors/pdf"
	"github.com/custodia-labs/lexfreq-cli/internal/extractors/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps lowercased file extensions to extractors.
type Registry struct {
	byExt map[string]driven.Extractor
}

// NewRegistry builds a registry from the given extractors. Later
// extractors win extension conflicts.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	byExt := make(map[string]driven.Extractor)
	for _, e := range extractors {
		for _, ext := range e.SupportedExtensions() {
			byExt[strings.ToLower(ext)] = e
		}
	}
	return &Registry{byExt: byExt}
}

// Default returns a registry with the standard extractors for
// .txt, .pdf and .docx files.
func Default() *Registry {
	return NewRegistry(
		plaintext.New(),
		pdf.New(),
		docx.New(),
	)
}

// ForPath returns the extractor for the file's extension.
// The match is case-insensitive.
func (r *Registry) ForPath(path string) (driven.Extractor, error) {
	ext := strings.ToLower(filepath.Ext(path))
	e, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, ext)
	}
	return e, nil
}

// Supported reports whether any registered extractor handles the file.
func (r *Registry) Supported(path string) bool {
	_, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return ok
}
