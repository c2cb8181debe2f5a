// Package scanner loads source files from disk for analysis.
package scanner

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/smellscan/smellscan/internal/contract"
	"github.com/smellscan/smellscan/schema"
)

// DefaultMaxFileBytes caps how large a single file may be before the
// walker skips it with a warning. Minified bundles and generated blobs
// past this size drown the duplication pass without telling us anything.
const DefaultMaxFileBytes = 1 << 20

// genericSourceExts covers languages the pattern library has no dedicated
// signature set for but whose text metrics are still worth computing.
var genericSourceExts = map[string]struct{}{
	".rs":    {},
	".swift": {},
	".scala": {},
	".sh":    {},
	".bash":  {},
	".pl":    {},
	".lua":   {},
	".sql":   {},
	".vue":   {},
	".dart":  {},
}

// WalkLoader reads source units by walking the filesystem under the
// configured root. It implements contract.SourceLoader.
type WalkLoader struct {
	// MaxFileBytes overrides DefaultMaxFileBytes when positive.
	MaxFileBytes int64
}

// NewWalkLoader builds a loader with default limits.
func NewWalkLoader() *WalkLoader {
	return &WalkLoader{MaxFileBytes: DefaultMaxFileBytes}
}

// Load walks cfg.RootPath and returns one SourceUnit per readable source
// file. Unreadable or oversized files become warnings, not errors; only a
// broken root aborts the walk.
func (l *WalkLoader) Load(ctx context.Context, cfg *contract.Config) ([]schema.SourceUnit, []schema.Warning, error) {
	maxBytes := l.MaxFileBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxFileBytes
	}

	var units []schema.SourceUnit
	var warnings []schema.Warning

	err := filepath.WalkDir(cfg.RootPath, func(path string, d fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rel, relErr := filepath.Rel(cfg.RootPath, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if walkErr != nil {
			if path == cfg.RootPath {
				return fmt.Errorf("scan root %s: %w", cfg.RootPath, walkErr)
			}
			warnings = append(warnings, schema.Warning{Path: rel, Detail: walkErr.Error()})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if contract.ShouldIgnore(rel+"/", cfg.Excludes) {
				return filepath.SkipDir
			}
			return nil
		}

		if contract.ShouldIgnore(rel, cfg.Excludes) {
			return nil
		}
		if cfg.PathFilter != "" && !strings.HasPrefix(rel, cfg.PathFilter) {
			return nil
		}
		if !isSourceFile(path) {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			warnings = append(warnings, schema.Warning{Path: rel, Detail: infoErr.Error()})
			return nil
		}
		if info.Size() > maxBytes {
			warnings = append(warnings, schema.Warning{
				Path:   rel,
				Detail: fmt.Sprintf("skipped: %d bytes exceeds the %d byte limit", info.Size(), maxBytes),
			})
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			warnings = append(warnings, schema.Warning{Path: rel, Detail: readErr.Error()})
			return nil
		}
		if isBinary(data) {
			return nil
		}

		text := string(data)
		units = append(units, schema.SourceUnit{
			Path:      rel,
			Language:  schema.LanguageForExtension(strings.ToLower(filepath.Ext(path))),
			Text:      text,
			LineCount: countLines(text),
		})
		return nil
	})
	if err != nil {
		return nil, warnings, err
	}
	return units, warnings, nil
}

// isSourceFile reports whether the path carries a recognized source
// extension, either one the pattern library knows or a generic one.
func isSourceFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	if schema.LanguageForExtension(ext) != schema.GenericLang {
		return true
	}
	_, ok := genericSourceExts[ext]
	return ok
}

// isBinary sniffs for a null byte in the leading chunk of the file.
func isBinary(data []byte) bool {
	probe := data
	if len(probe) > 8000 {
		probe = probe[:8000]
	}
	return bytes.IndexByte(probe, 0) >= 0
}

// countLines counts newline-terminated lines plus a trailing partial line.
func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
