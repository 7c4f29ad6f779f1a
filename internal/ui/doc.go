// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a two-view workflow for the song library:
//  1. [LibraryView] : Browse the persisted songs
//  2. [AddView] : Enter a new song's name and album and save it
//
// The [Model] implements bubbletea's standard Init/Update/View pattern. Saves
// and reloads run as [tea.Cmd] functions so the interface never blocks on the
// database.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, a, r, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
