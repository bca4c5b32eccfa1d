// Package builder maps preset names to constructors for callers that pick a
// topology by name (HTTP API, CLI).
package builder

import (
	"fmt"
	"sort"
	"strings"
)

// PresetKind names a constructor selectable at runtime.
type PresetKind string

// Supported presets.
const (
	PresetRandom   PresetKind = "random"
	PresetPath     PresetKind = "path"
	PresetCycle    PresetKind = "cycle"
	PresetStar     PresetKind = "star"
	PresetComplete PresetKind = "complete"
)

var presets = map[PresetKind]func(n int) Constructor{
	PresetRandom:   Random,
	PresetPath:     Path,
	PresetCycle:    Cycle,
	PresetStar:     Star,
	PresetComplete: Complete,
}

// Preset resolves kind (case-insensitive) to a Constructor over n nodes.
func Preset(kind string, n int) (Constructor, error) {
	mk, ok := presets[PresetKind(strings.ToLower(strings.TrimSpace(kind)))]
	if !ok {
		return nil, fmt.Errorf("%s: %q (want one of %s): %w",
			methodPreset, kind, strings.Join(PresetNames(), ", "), ErrUnknownPreset)
	}

	return mk(n), nil
}

// PresetNames lists the supported preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, string(k))
	}
	sort.Strings(names)

	return names
}
