package types

// Kind categorizes what a shortcut launches. It drives both the
// presentation grouping and whether a path prefix applies.
type Kind string

const (
	KindApp  Kind = "app"
	KindDir  Kind = "dir"
	KindFile Kind = "file"
	KindUrl  Kind = "url"
)

// Valid reports whether k is one of the known shortcut kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindApp, KindDir, KindFile, KindUrl:
		return true
	}
	return false
}

// PathPrefix selects a well-known base directory that is prepended to a
// shortcut's path at launch time. Expansion is deferred until launch so
// that loading a config never depends on platform directory lookup.
type PathPrefix string

const (
	PrefixNone      PathPrefix = ""
	PrefixDocuments PathPrefix = "documents"
	PrefixAppdata   PathPrefix = "appdata"
)

// Valid reports whether p is empty or one of the known prefixes.
func (p PathPrefix) Valid() bool {
	switch p {
	case PrefixNone, PrefixDocuments, PrefixAppdata:
		return true
	}
	return false
}

// Shortcut is one launchable entry from the user's configuration.
// The meaning of Path depends on Kind: an application identifier, a
// filesystem path (possibly relative to PathPrefix), or a URL.
type Shortcut struct {
	Path        string     `json:"path" yaml:"path" toml:"path"`
	Seq         []string   `json:"seq" yaml:"seq" toml:"seq"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Kind        Kind       `json:"kind" yaml:"kind" toml:"kind"`
	PathPrefix  PathPrefix `json:"path_prefix,omitempty" yaml:"path_prefix,omitempty" toml:"path_prefix,omitempty"`
}

// DisplaySeq returns the canonical alias shown for the shortcut: the
// first entry of Seq, or "" for a (misconfigured) empty alias list.
func (s Shortcut) DisplaySeq() string {
	if len(s.Seq) == 0 {
		return ""
	}
	return s.Seq[0]
}

// HasAlias reports whether one of the shortcut's aliases equals q exactly.
func (s Shortcut) HasAlias(q string) bool {
	for _, seq := range s.Seq {
		if seq == q {
			return true
		}
	}
	return false
}

// Config is the user's full shortcut list, in file order. It is loaded
// once at startup and never mutated afterwards.
type Config struct {
	Shortcuts []Shortcut `json:"shortcuts" yaml:"shortcuts" toml:"shortcuts"`
}
