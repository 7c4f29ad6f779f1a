// Package repositories implements SQLite persistence for the songbook library.
//
// [SongRepository] maps [models.Song] records onto rows of the songs table.
// The mapping is deliberately minimal: EnsureTable creates the backing table
// when missing, Save inserts a record and captures the auto-increment row id,
// and Create combines construction with a save. Read-back is provided by Get,
// List and Count.
//
// Storage errors are wrapped with context and propagated; the package defines
// no error taxonomy of its own beyond the sentinels in the shared package.
package repositories
