package levels

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	logger *log.Logger
}

// NewLoader creates a new level loader. A nil logger discards output.
func NewLoader(root string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Root: root, logger: logger}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped with a warning. Levels are ordered by their
// order key, then by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsLevelFile(path) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			l.logger.Warn("skipping level file", "path", path, "error", err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		if levels[i].Order != levels[j].Order {
			return levels[i].Order < levels[j].Order
		}
		return levels[i].ID < levels[j].ID
	})

	l.logger.Debug("loaded level pack", "root", l.Root, "count", len(levels))
	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	level, err := Parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}
	level.FilePath = path
	return level, nil
}

// Plans returns just the plans of the given levels, in order.
func Plans(levels []Level) [][]string {
	plans := make([][]string, len(levels))
	for i, lvl := range levels {
		plans[i] = lvl.Plan
	}
	return plans
}

// IsLevelFile reports whether path has a supported extension.
func IsLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
