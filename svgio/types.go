package svgio

import (
	"path/filepath"
	"strings"

	"github.com/optimlaser/lasercore/colour"
)

// Catalogue is the persisted colour/speed catalogue (spec §6
// "Persisted catalogue"). The core reads Colors to build a
// colour.Palette; Speeds and LastUsed are opaque to it and exist only
// so round-tripping the file doesn't drop UI-owned data.
type Catalogue struct {
	Colors    []string               `json:"colors"`
	Speeds    map[string]interface{} `json:"speeds,omitempty"`
	LastUsed  map[string]interface{} `json:"last_used,omitempty"`
}

// Palette parses Colors (hex strings, order significant) into a
// colour.Palette, skipping entries that fail to parse rather than
// aborting the whole catalogue load (spec §7 is silent on this case;
// treated like MalformedCommand — skip the offender, keep going).
func (c Catalogue) Palette() colour.Palette {
	out := make(colour.Palette, 0, len(c.Colors))
	for _, hex := range c.Colors {
		col, err := colour.ParseHex(hex)
		if err != nil {
			continue
		}
		out = append(out, col)
	}
	return out
}

// CuttingOutputPath derives the "<basename> - decoupe<ext>" sibling
// path spec §6 names for the save_as_cutting convention, next to the
// original source path.
func CuttingOutputPath(sourcePath string) string {
	dir := filepath.Dir(sourcePath)
	ext := filepath.Ext(sourcePath)
	base := strings.TrimSuffix(filepath.Base(sourcePath), ext)
	return filepath.Join(dir, base+" - decoupe"+ext)
}
