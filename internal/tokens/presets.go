package tokens

import "fmt"

// Preset names a built-in palette.
type Preset string

const (
	PresetCustom Preset = "custom"
	PresetOcean  Preset = "ocean"
	PresetForest Preset = "forest"
	PresetMono   Preset = "mono"
	PresetAsmis  Preset = "asmis"
)

// Presets lists every preset in menu order. PresetCustom contributes no tokens.
var Presets = []Preset{PresetCustom, PresetOcean, PresetForest, PresetMono, PresetAsmis}

// presetPalette holds the seven colour tokens of one mode, in ColorTokens order.
type presetPalette [7]string

var presetTable = map[Preset]map[Mode]presetPalette{
	PresetOcean: {
		Light: {"#e0f2fe", "#e0f2fe", "#0c4a6e", "#7dd3fc", "#f0f9ff", "#0c4a6e", "#0284c7"},
		Dark:  {"#082032", "#082f49", "#e0f2fe", "#0369a1", "#e0f2fe", "#082f49", "#38bdf8"},
	},
	PresetForest: {
		Light: {"#dcfce7", "#ecfdf5", "#14532d", "#86efac", "#f0fdf4", "#14532d", "#16a34a"},
		Dark:  {"#052e16", "#052e16", "#dcfce7", "#15803d", "#dcfce7", "#052e16", "#4ade80"},
	},
	PresetMono: {
		Light: {"#e5e5e5", "#f5f5f5", "#171717", "#a3a3a3", "#fafafa", "#171717", "#404040"},
		Dark:  {"#171717", "#262626", "#f5f5f5", "#525252", "#f5f5f5", "#171717", "#d4d4d4"},
	},
	PresetAsmis: {
		Light: {"#d9d9d9", "#f2f2f2", "#1f2329", "#9aa0a6", "#f8f8f8", "#2f3338", "#f2be2e"},
		Dark:  {"#25282d", "#3a3d42", "#f5f6f7", "#6f767d", "#f5f6f7", "#2f3338", "#f2be2e"},
	},
}

// ParsePreset resolves a preset name.
func ParsePreset(s string) (Preset, error) {
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown preset %q", s)
}

// Tokens returns the preset's tokens for mode. Custom and unknown presets return an empty set.
func (p Preset) Tokens(mode Mode) *Set {
	out := NewSet()
	palette, ok := presetTable[p][mode]
	if !ok {
		return out
	}
	for i, value := range palette {
		out.Put(ColorTokens[i], value)
	}
	return out
}
