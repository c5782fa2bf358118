package launch

import (
	"errors"
	"strings"
	"testing"

	"github.com/studiowebux/bullet/internal/types"
)

func TestTarget_NoPrefix(t *testing.T) {
	s := types.Shortcut{Path: "https://news.ycombinator.com", Kind: types.KindUrl}

	target, err := Target(s)
	if err != nil {
		t.Fatalf("Target failed: %v", err)
	}
	if target != s.Path {
		t.Errorf("Target = %q, want the path untouched", target)
	}
}

func TestTarget_DocumentsPrefix(t *testing.T) {
	t.Setenv("HOME", "/home/someone")

	s := types.Shortcut{Path: "notes", Kind: types.KindDir, PathPrefix: types.PrefixDocuments}

	target, err := Target(s)
	if err != nil {
		t.Fatalf("Target failed: %v", err)
	}
	if target != "/home/someone/Documents/notes" {
		t.Errorf("Target = %q, want /home/someone/Documents/notes", target)
	}
	if strings.Contains(target, "\\") {
		t.Errorf("Target %q contains backslashes, want forward slashes only", target)
	}
}

func TestResolvePrefix_Appdata(t *testing.T) {
	t.Setenv("HOME", "/home/someone")
	t.Setenv("XDG_CONFIG_HOME", "/home/someone/.config")

	dir, err := ResolvePrefix(types.PrefixAppdata)
	if err != nil {
		t.Fatalf("ResolvePrefix failed: %v", err)
	}
	if dir == "" || strings.Contains(dir, "\\") {
		t.Errorf("ResolvePrefix = %q, want a forward-slash directory", dir)
	}
}

func TestResolvePrefix_UnknownIsPrefixError(t *testing.T) {
	_, err := ResolvePrefix(types.PathPrefix("temp"))
	if err == nil {
		t.Fatal("ResolvePrefix accepted an unknown prefix")
	}
	var pe *PrefixError
	if !errors.As(err, &pe) {
		t.Errorf("error type = %T, want *PrefixError", err)
	}
}
