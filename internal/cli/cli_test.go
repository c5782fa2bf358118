package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/studiowebux/bullet/internal/config"
)

func setupConfig(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, "Documents", "bullet")
	if err := os.MkdirAll(dir, config.DirPermissions); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), config.FilePermissions); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestRun_NoMatch(t *testing.T) {
	setupConfig(t, `{"shortcuts":[{"seq":["ff"],"kind":"app","path":"firefox"}]}`)

	err := Run("zzz")
	if err == nil || !strings.Contains(err.Error(), "no shortcut matches") {
		t.Errorf("Run(zzz) = %v, want a no-match error", err)
	}
}

func TestRun_Ambiguous(t *testing.T) {
	setupConfig(t, `{"shortcuts":[
		{"seq":["git"],"kind":"url","path":"https://git-scm.com"},
		{"seq":["github"],"kind":"url","path":"https://github.com"}
	]}`)

	err := Run("gi")
	if err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("Run(gi) = %v, want an ambiguity error", err)
	}
	if err != nil && !strings.Contains(err.Error(), "git") {
		t.Errorf("ambiguity error should name the candidates: %v", err)
	}
}

func TestRun_MissingConfigSurfacesLoadError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := Run("ff")
	if err == nil {
		t.Fatal("Run succeeded with no config")
	}
	le, ok := err.(*config.LoadError)
	if !ok {
		t.Fatalf("error type = %T, want *config.LoadError", err)
	}
	if le.Kind != config.ErrKindAbsent {
		t.Errorf("error kind = %d, want ErrKindAbsent", le.Kind)
	}
}

func TestList_GroupsByKindInFixedOrder(t *testing.T) {
	setupConfig(t, `{"shortcuts":[
		{"seq":["hn"],"kind":"url","path":"https://news.ycombinator.com","description":"Hacker News"},
		{"seq":["notes"],"kind":"dir","path":"notes","path_prefix":"documents"},
		{"seq":["ff"],"kind":"app","path":"firefox","description":"Browser"}
	]}`)

	var out strings.Builder
	if err := List(&out); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out.String())
	}
	// App before dir before url, regardless of config order.
	if !strings.HasPrefix(lines[0], "app") || !strings.HasPrefix(lines[1], "dir") || !strings.HasPrefix(lines[2], "url") {
		t.Errorf("wrong group order:\n%s", out.String())
	}
	if !strings.Contains(lines[1], "documents/notes") {
		t.Errorf("dir row should show prefix/path: %s", lines[1])
	}
}

func TestValidate_ReportsProblems(t *testing.T) {
	setupConfig(t, `{"shortcuts":[
		{"seq":[],"kind":"app","path":"ghost"},
		{"seq":["x"],"kind":"app","path":"one"},
		{"seq":["x","y"],"kind":"app","path":"two"}
	]}`)

	var out strings.Builder
	err := Validate(&out)
	if err == nil {
		t.Fatal("Validate passed a config with problems")
	}
	report := out.String()
	if !strings.Contains(report, "unreachable") {
		t.Errorf("report misses the empty-seq entry:\n%s", report)
	}
	if !strings.Contains(report, "already used") {
		t.Errorf("report misses the duplicate alias:\n%s", report)
	}
}

func TestValidate_CleanConfig(t *testing.T) {
	setupConfig(t, `{"shortcuts":[{"seq":["ff"],"kind":"app","path":"firefox"}]}`)

	var out strings.Builder
	if err := Validate(&out); err != nil {
		t.Errorf("Validate failed on a clean config: %v", err)
	}
	if !strings.Contains(out.String(), "OK") {
		t.Errorf("expected an OK summary, got:\n%s", out.String())
	}
}
