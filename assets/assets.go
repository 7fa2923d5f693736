// Package assets embeds the sandbox levels.
package assets

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

// LevelDir is the directory of the embedded TMX files.
const LevelDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS

	// FS holds the levels under LevelDir.
	FS = assetFS
)

// LevelNames lists the embedded levels in load order.
func LevelNames() ([]string, error) {
	entries, err := assetFS.ReadDir(LevelDir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", LevelDir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".tmx" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}
