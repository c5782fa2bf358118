/*
Package types defines the core data structures shared across bullet.

A Shortcut is one launchable entry: an application, directory, file, or
URL, addressable by one or more alias sequences the user can type. Kind
is a closed tag; the two places that dispatch on it (row rendering and
path-prefix eligibility) switch over it exhaustively.

All types carry JSON, YAML, and TOML tags so a config file can be
written in any of the three formats.
*/
package types
