// Package models defines the domain entities for the songbook library.
//
// The central type is [Song], a database-backed record mapped onto the songs
// table. A Song is constructed in memory without an identifier and acquires
// one exactly once, from the storage engine's auto-increment row id, when the
// persistence layer first saves it. [NewPersistedSong] rebuilds a Song from a
// row that already carries an identifier.
package models
