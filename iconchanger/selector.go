package iconchanger

import (
	"math/rand/v2"
	"sync"
)

// FaviconSetter is implemented by status documents that carry a server icon.
type FaviconSetter interface {
	SetFavicon(uri string)
}

// Selector answers which icon to show for the next status query.
type Selector struct {
	icons Collection
	mode  Mode

	mu     sync.Mutex
	cursor int
	rng    *rand.Rand
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithRand makes random mode draw from r instead of the global source.
func WithRand(r *rand.Rand) SelectorOption {
	return func(s *Selector) {
		s.rng = r
	}
}

// NewSelector returns a selector over icons. The mode cannot change afterwards.
func NewSelector(icons Collection, mode Mode, opts ...SelectorOption) *Selector {
	s := &Selector{icons: icons, mode: mode}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode returns the mode the selector was built with.
func (s *Selector) Mode() Mode {
	return s.mode
}

// Next returns the next icon, or false when there are no icons at all.
func (s *Selector) Next() (*Icon, bool) {
	n := len(s.icons)
	if n == 0 {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModeSequential {
		icon := s.icons[s.cursor]
		s.cursor++
		if s.cursor >= n {
			s.cursor = 0
		}
		return icon, true
	}
	if s.rng != nil {
		return s.icons[s.rng.IntN(n)], true
	}
	return s.icons[rand.IntN(n)], true
}

// Apply sets the favicon of md to the next icon. md is left untouched when
// there are no icons.
func (s *Selector) Apply(md FaviconSetter) (*Icon, bool) {
	icon, ok := s.Next()
	if !ok {
		return nil, false
	}
	md.SetFavicon(icon.DataURI())
	return icon, true
}
