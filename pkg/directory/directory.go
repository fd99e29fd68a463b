// Package directory resolves a phone number to a contact display name.
// Resolution is best-effort: a miss or any internal failure yields no name,
// never an error, and the caller falls back to a default.
package directory

import (
	"context"
	"strings"

	"github.com/onereply/onereply/pkg/logger"
)

// Source is a single name source tried in order by Lookup.
type Source interface {
	// ResolveName returns the display name for number, or ("", false)
	// when the source has no match or failed.
	ResolveName(ctx context.Context, number string) (string, bool)
}

// Lookup tries its sources in order and returns the first hit.
type Lookup struct {
	sources []Source
}

func NewLookup(sources ...Source) *Lookup {
	return &Lookup{sources: sources}
}

func (l *Lookup) ResolveName(ctx context.Context, number string) (string, bool) {
	for _, src := range l.sources {
		if name, ok := src.ResolveName(ctx, number); ok {
			return name, true
		}
	}
	logger.DebugCF("directory", "No name found", map[string]interface{}{
		"number": number,
	})
	return "", false
}

// NormalizeNumber strips the leading + and all internal spaces so that
// "+1 555 123" and "1555123" compare equal.
func NormalizeNumber(number string) string {
	number = strings.TrimPrefix(strings.TrimSpace(number), "+")
	return strings.ReplaceAll(number, " ", "")
}

// SameNumber reports whether two phone numbers match exactly or after
// normalization.
func SameNumber(a, b string) bool {
	if a == b {
		return true
	}
	return NormalizeNumber(a) == NormalizeNumber(b)
}
