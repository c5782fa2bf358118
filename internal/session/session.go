// Package session owns the per-run interactive state: the query text,
// the filtered view of the corpus, and the running flag. It is the state
// machine behind the TUI and knows nothing about rendering; the launch
// primitive is injected so the package tests without OS collaborators.
package session

import (
	"github.com/studiowebux/bullet/internal/config"
	"github.com/studiowebux/bullet/internal/match"
	"github.com/studiowebux/bullet/internal/types"
)

// Launcher attempts to open a resolved shortcut. launch.Run satisfies it.
type Launcher func(types.Shortcut) error

// Session is the mutable run-time state. Exactly one exists per process
// and it is owned by the event loop; nothing mutates it concurrently.
//
// States: browsing (loadErr == nil), loading-failed (loadErr != nil),
// terminated (running == false). Loading-failed can only be left by
// quitting; browsing terminates on quit or on a successful launch.
type Session struct {
	corpus  []types.Shortcut
	loadErr *config.LoadError
	launch  Launcher

	query    string
	filtered []types.Shortcut
	running  bool
	lastErr  error // most recent launch failure, surfaced in the UI
}

// New builds the initial session: browsing over the full corpus, or
// loading-failed with an empty view when the config could not be loaded.
func New(cfg *types.Config, loadErr *config.LoadError, launch Launcher) *Session {
	s := &Session{loadErr: loadErr, launch: launch, running: true}
	if loadErr == nil && cfg != nil {
		s.corpus = cfg.Shortcuts
		s.filtered = cfg.Shortcuts
	}
	return s
}

// Running reports whether the session is still alive.
func (s *Session) Running() bool { return s.running }

// LoadErr returns the typed config failure, or nil in the browsing state.
func (s *Session) LoadErr() *config.LoadError { return s.loadErr }

// Query returns the current query text.
func (s *Session) Query() string { return s.query }

// Filtered returns the current filtered subset, in corpus order.
func (s *Session) Filtered() []types.Shortcut { return s.filtered }

// LaunchErr returns the most recent launch failure, or nil. It resets on
// the next query edit.
func (s *Session) LaunchErr() error { return s.lastErr }

// Quit terminates the session. Valid from any state.
func (s *Session) Quit() { s.running = false }

// SetQuery processes one text-edit event: it refilters the full corpus,
// asks the resolver for a launch decision, and attempts the launch when
// there is one. A successful launch terminates the session; a failed
// launch (including an unresolvable path prefix) keeps the current view
// and records the failure. Ignored in the loading-failed state.
func (s *Session) SetQuery(query string) {
	if s.loadErr != nil || !s.running {
		return
	}

	s.query = query
	s.lastErr = nil
	s.filtered = match.Filter(s.corpus, query)

	target, ok := match.Resolve(s.filtered, query)
	if !ok {
		return
	}
	if err := s.launch(target); err != nil {
		s.lastErr = err
		return
	}
	s.running = false
}

// Candidate returns the shortcut the current state would launch, if the
// filtered view resolves to one. It performs no launch; the TUI uses it
// for the copy-target action.
func (s *Session) Candidate() (types.Shortcut, bool) {
	if s.loadErr != nil {
		return types.Shortcut{}, false
	}
	return match.Resolve(s.filtered, s.query)
}
