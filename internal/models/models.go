// package models defines the data model for the songbook library
package models

import (
	"fmt"

	"songbook/internal/shared"
)

// Song represents a single song mapped to a row of the songs table.
//
// The identifier is unexported so it cannot be mutated after the persistence
// layer assigns it. Name and Album are plain columns with no constraints.
type Song struct {
	id    int64
	saved bool

	Name  string
	Album string
}

// NewSong constructs an unpersisted Song with the given name and album.
func NewSong(name, album string) *Song {
	return &Song{Name: name, Album: album}
}

// NewPersistedSong rebuilds a Song from a database row that already has an identifier.
func NewPersistedSong(id int64, name, album string) *Song {
	return &Song{id: id, saved: true, Name: name, Album: album}
}

// ID returns the row identifier assigned on save, or zero for an unpersisted song.
func (s *Song) ID() int64 { return s.id }

// Persisted reports whether the song has been written to the database.
func (s *Song) Persisted() bool { return s.saved }

// SetID assigns the row identifier. The identifier is assigned exactly once;
// a second call fails with [shared.ErrAlreadySaved].
func (s *Song) SetID(id int64) error {
	if s.saved {
		return fmt.Errorf("%w: id %d already assigned", shared.ErrAlreadySaved, s.id)
	}
	s.id = id
	s.saved = true
	return nil
}

// String renders the song for log output and plain listings.
func (s *Song) String() string {
	label := s.Name
	if s.Album != "" {
		label = fmt.Sprintf("%s (%s)", s.Name, s.Album)
	}
	if !s.saved {
		return label
	}
	return fmt.Sprintf("#%d %s", s.id, label)
}
