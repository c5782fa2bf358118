// Package launch turns a resolved shortcut into an OS "open" call. It is
// the only place that consults platform directories: prefix expansion
// happens here, at launch time, never during config loading.
package launch

import (
	"fmt"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"

	"github.com/studiowebux/bullet/internal/config"
	"github.com/studiowebux/bullet/internal/types"
)

// PrefixError reports that a path prefix has no resolvable base
// directory on this platform.
type PrefixError struct {
	Prefix types.PathPrefix
	Err    error
}

func (e *PrefixError) Error() string {
	return fmt.Sprintf("cannot resolve path prefix %q: %v", e.Prefix, e.Err)
}

func (e *PrefixError) Unwrap() error { return e.Err }

// ResolvePrefix expands a path prefix to its base directory, with
// forward-slash separators regardless of platform.
func ResolvePrefix(p types.PathPrefix) (string, error) {
	var dir string
	var err error
	switch p {
	case types.PrefixDocuments:
		dir, err = config.DocumentsDir()
	case types.PrefixAppdata:
		dir, err = config.AppDataDir()
	default:
		return "", &PrefixError{Prefix: p, Err: fmt.Errorf("unknown prefix")}
	}
	if err != nil {
		return "", &PrefixError{Prefix: p, Err: err}
	}
	return filepath.ToSlash(dir), nil
}

// Target returns the launchable string for a shortcut: its path, with
// the prefix base directory joined in front when one is configured.
func Target(s types.Shortcut) (string, error) {
	if s.PathPrefix == types.PrefixNone {
		return s.Path, nil
	}
	base, err := ResolvePrefix(s.PathPrefix)
	if err != nil {
		return "", err
	}
	return path.Join(base, s.Path), nil
}

// Open asks the OS default handler to open target (a path or URI),
// detached from the current process. Only spawn failure is reported;
// whatever the handler does afterwards is its own business.
func Open(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	return cmd.Process.Release()
}

// Run expands and opens a shortcut in one step. This is the launch
// primitive handed to the session.
func Run(s types.Shortcut) error {
	target, err := Target(s)
	if err != nil {
		return err
	}
	return Open(target)
}
