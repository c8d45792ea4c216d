package tokens

import (
	"strings"

	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	"github.com/alexisbeaulieu97/layoutkit/internal/store"
	lkerrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

// Layer names, in the order NewPipeline arranges them.
const (
	LayerSaved       = "saved"
	LayerBase        = "base"
	LayerPreset      = "preset"
	LayerOverrides   = "overrides"
	LayerDerived     = "derived"
	LayerCorrections = "corrections"
)

// Layer is one named step of the merge. Apply mutates the set built so far.
type Layer struct {
	Name  string
	Apply func(*Set)
}

// Pipeline is an ordered list of layers. Later layers win on name collisions.
type Pipeline []Layer

// Build runs every layer in order on a fresh set.
func (p Pipeline) Build() *Set {
	out := NewSet()
	for _, layer := range p {
		if layer.Apply != nil {
			layer.Apply(out)
		}
	}
	return out
}

// Names returns the layer names in execution order.
func (p Pipeline) Names() []string {
	names := make([]string, len(p))
	for i, layer := range p {
		names[i] = layer.Name
	}
	return names
}

// Sources are the inputs of the standard pipeline.
type Sources struct {
	Store      store.Store
	StorageKey string
	LoadSaved  bool

	Base      *Set
	Preset    Preset
	Mode      Mode
	Overrides string

	Derive bool
	Seed   string

	// Corrections, when set, receives the changes made by the correction layer.
	Corrections *[]Correction
	Log         *logger.Logger
}

// NewPipeline arranges the standard layers: saved, base, preset, overrides, derived,
// corrections. Disabled layers stay in the list as no-ops so the order is always visible.
func NewPipeline(src Sources) Pipeline {
	saved := Layer{Name: LayerSaved}
	if src.LoadSaved {
		saved = SavedLayer(src.Store, src.StorageKey, src.Log)
	}
	derived := Layer{Name: LayerDerived}
	if src.Derive {
		derived = DeriveLayer(src.Seed, src.Mode, src.Log)
	}

	return Pipeline{
		saved,
		BaseLayer(src.Base),
		PresetLayer(src.Preset, src.Mode),
		OverridesLayer(src.Overrides, src.Log),
		derived,
		CorrectionLayer(src.Mode, src.Corrections, src.Log),
	}
}

// MergeLayer overwrites the set with a fixed token set.
func MergeLayer(name string, tokens *Set) Layer {
	return Layer{Name: name, Apply: func(s *Set) { s.Merge(tokens) }}
}

// BaseLayer applies the explicitly configured tokens.
func BaseLayer(base *Set) Layer {
	return MergeLayer(LayerBase, base)
}

// PresetLayer applies a preset's palette for mode.
func PresetLayer(preset Preset, mode Mode) Layer {
	return MergeLayer(LayerPreset, preset.Tokens(mode))
}

// SavedLayer applies the set previously persisted under key. Any failure yields no tokens.
func SavedLayer(st store.Store, key string, log *logger.Logger) Layer {
	return Layer{Name: LayerSaved, Apply: func(s *Set) {
		s.Merge(Load(st, key, log))
	}}
}

// OverridesLayer applies a JSON object of overrides. Malformed JSON yields no tokens.
func OverridesLayer(raw string, log *logger.Logger) Layer {
	return Layer{Name: LayerOverrides, Apply: func(s *Set) {
		overrides, err := DecodeOverrides(raw)
		if err != nil {
			log.Warn(err, "ignoring token overrides")
		}
		s.Merge(overrides)
	}}
}

// DeriveLayer replaces the colour tokens with those derived from seed. An unparseable
// seed leaves the set untouched.
func DeriveLayer(seed string, mode Mode, log *logger.Logger) Layer {
	return Layer{Name: LayerDerived, Apply: func(s *Set) {
		derived, ok := Derive(seed, mode)
		if !ok {
			log.Warn(nil, "seed colour is not a hex colour, skipping derivation", "seed", seed)
			return
		}
		s.Merge(derived)
	}}
}

// CorrectionLayer runs AutoCorrect. When report is non-nil the corrections are
// appended to it.
func CorrectionLayer(mode Mode, report *[]Correction, log *logger.Logger) Layer {
	return Layer{Name: LayerCorrections, Apply: func(s *Set) {
		changes := AutoCorrect(s, mode)
		for _, c := range changes {
			log.Debug("corrected low-contrast token", "token", c.Token, "from", c.From, "to", c.To, "ratio", c.Ratio)
		}
		if report != nil {
			*report = append(*report, changes...)
		}
	}}
}

// ParseOverrides decodes override JSON, returning an empty set for malformed input.
func ParseOverrides(raw string) *Set {
	s, _ := DecodeOverrides(raw)
	return s
}

// DecodeOverrides decodes override JSON. It always returns a usable set: on error the
// set is empty and err is a *errors.ParseError. Blank input is not an error.
func DecodeOverrides(raw string) (*Set, error) {
	if strings.TrimSpace(raw) == "" {
		return NewSet(), nil
	}
	s, err := DecodeSet([]byte(raw))
	if err != nil {
		return NewSet(), lkerrors.NewParseError(raw, 0, err)
	}
	return s, nil
}
