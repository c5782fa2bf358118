// Package cli implements the non-interactive front ends: one-shot
// launching, listing, and config validation. Output is plain text so it
// composes with scripts.
package cli

import (
	"fmt"
	"io"

	"github.com/studiowebux/bullet/internal/config"
	"github.com/studiowebux/bullet/internal/launch"
	"github.com/studiowebux/bullet/internal/match"
	"github.com/studiowebux/bullet/internal/types"
)

var kindOrder = []types.Kind{types.KindApp, types.KindDir, types.KindFile, types.KindUrl}

// Run resolves query against the configuration exactly once and
// launches on an unambiguous match. Ambiguity and no-match are errors:
// unlike the TUI there is no further typing to disambiguate with.
func Run(query string) error {
	cfg, loadErr := config.Load()
	if loadErr != nil {
		return loadErr
	}

	filtered := match.Filter(cfg.Shortcuts, query)
	sc, ok := match.Resolve(filtered, query)
	if !ok {
		if len(filtered) == 0 {
			return fmt.Errorf("no shortcut matches %q", query)
		}
		return fmt.Errorf("%q is ambiguous: %d candidates (%s)", query, len(filtered), aliasList(filtered))
	}

	return launch.Run(sc)
}

// List prints the configured shortcuts grouped by kind, in config order
// within each group.
func List(w io.Writer) error {
	cfg, loadErr := config.Load()
	if loadErr != nil {
		return loadErr
	}

	for _, kind := range kindOrder {
		for _, s := range cfg.Shortcuts {
			if s.Kind != kind {
				continue
			}
			detail := s.Description
			if s.Kind == types.KindDir || s.Kind == types.KindFile {
				detail = s.Path
				if s.PathPrefix != types.PrefixNone {
					detail = string(s.PathPrefix) + "/" + s.Path
				}
			}
			fmt.Fprintf(w, "%-4s %-14s %s\n", s.Kind, s.DisplaySeq(), detail)
		}
	}
	return nil
}

// Validate loads the configuration and reports entries a user would
// otherwise discover the hard way: empty alias lists (unreachable
// entries) and aliases claimed by more than one shortcut.
func Validate(w io.Writer) error {
	cfg, loadErr := config.Load()
	if loadErr != nil {
		return loadErr
	}

	problems := 0
	seen := make(map[string]int) // alias -> first shortcut index

	for i, s := range cfg.Shortcuts {
		if len(s.Seq) == 0 {
			fmt.Fprintf(w, "shortcut %d (%s): empty seq, entry is unreachable\n", i, s.Path)
			problems++
		}
		for _, alias := range s.Seq {
			if first, dup := seen[alias]; dup {
				fmt.Fprintf(w, "shortcut %d (%s): alias %q already used by shortcut %d\n", i, s.Path, alias, first)
				problems++
				continue
			}
			seen[alias] = i
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	fmt.Fprintf(w, "%d shortcuts OK\n", len(cfg.Shortcuts))
	return nil
}

func aliasList(shortcuts []types.Shortcut) string {
	out := ""
	for i, s := range shortcuts {
		if i > 0 {
			out += ", "
		}
		out += s.DisplaySeq()
	}
	return out
}
