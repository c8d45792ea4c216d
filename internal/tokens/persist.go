package tokens

import (
	"encoding/json"
	"errors"

	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	"github.com/alexisbeaulieu97/layoutkit/internal/store"
)

// Load reads the set stored under key. A missing entry, a store failure or a
// malformed document all produce an empty set; failures are logged, never returned.
func Load(st store.Store, key string, log *logger.Logger) *Set {
	if st == nil || key == "" {
		return NewSet()
	}

	log = log.With("store_key", key)
	raw, err := st.Get(key)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug("no saved theme")
		return NewSet()
	}
	if err != nil {
		log.Warn(err, "failed to read saved theme")
		return NewSet()
	}

	s, err := DecodeSet([]byte(raw))
	if err != nil {
		log.Warn(err, "ignoring malformed saved theme")
		return NewSet()
	}
	return s
}

// Save writes s under key as JSON. It reports whether the write succeeded; failures are
// logged and otherwise ignored.
func Save(st store.Store, key string, s *Set, log *logger.Logger) bool {
	if st == nil || key == "" {
		return false
	}

	log = log.With("store_key", key)
	data, err := json.Marshal(s)
	if err != nil {
		log.Warn(err, "failed to encode theme")
		return false
	}

	if err := st.Set(key, string(data)); err != nil {
		log.Warn(err, "failed to persist theme")
		return false
	}

	log.Debug("theme persisted", "tokens", s.Len())
	return true
}
