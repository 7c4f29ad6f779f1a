package repositories

import (
	"database/sql"
	"fmt"

	"songbook/internal/models"
	"songbook/internal/shared"
)

// createSongsTable is the canonical schema for the songs table.
// id aliases the SQLite ROWID, so the engine assigns it on insert.
const createSongsTable = `
	CREATE TABLE IF NOT EXISTS songs (
		id INTEGER PRIMARY KEY,
		name TEXT,
		album TEXT
	)
`

// SongRepository maps [models.Song] records onto rows of the songs table.
type SongRepository struct {
	db *sql.DB
}

// NewSongRepository creates a new SongRepository with the given database connection
func NewSongRepository(db *sql.DB) *SongRepository {
	return &SongRepository{db: db}
}

// EnsureTable creates the songs table if it does not already exist.
// Safe to call repeatedly.
func (r *SongRepository) EnsureTable() error {
	if _, err := r.db.Exec(createSongsTable); err != nil {
		return fmt.Errorf("failed to create songs table: %w", err)
	}
	return nil
}

// Save inserts an unpersisted [models.Song] and assigns it the row id the
// storage engine generated. Saving a song that already has an id fails with
// [shared.ErrAlreadySaved].
func (r *SongRepository) Save(song *models.Song) error {
	if song.Persisted() {
		return fmt.Errorf("%w: id %d", shared.ErrAlreadySaved, song.ID())
	}

	result, err := r.db.Exec("INSERT INTO songs (name, album) VALUES (?, ?)", song.Name, song.Album)
	if err != nil {
		return fmt.Errorf("failed to insert song: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted row id: %w", err)
	}

	return song.SetID(id)
}

// Create builds a [models.Song] from name and album and saves it in one step.
func (r *SongRepository) Create(name, album string) (*models.Song, error) {
	song := models.NewSong(name, album)
	if err := r.Save(song); err != nil {
		return nil, err
	}
	return song, nil
}

// Get retrieves a song by its row id
func (r *SongRepository) Get(id int64) (*models.Song, error) {
	row := r.db.QueryRow("SELECT id, name, album FROM songs WHERE id = ?", id)
	return r.scanOne(row, id)
}

// List retrieves all songs ordered by row id
func (r *SongRepository) List() ([]*models.Song, error) {
	rows, err := r.db.Query("SELECT id, name, album FROM songs ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	var songs []*models.Song
	for rows.Next() {
		song, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return songs, nil
}

// Count returns the number of songs in the library
func (r *SongRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM songs").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count songs: %w", err)
	}
	return count, nil
}

// scanOne scans a single [sql.Row] into a [models.Song]
func (r *SongRepository) scanOne(row *sql.Row, id int64) (*models.Song, error) {
	var (
		rowID int64
		name  sql.NullString
		album sql.NullString
	)

	err := row.Scan(&rowID, &name, &album)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: id %d", shared.ErrSongNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan song: %w", err)
	}

	return models.NewPersistedSong(rowID, name.String, album.String), nil
}

// scanRow scans a row from [sql.Rows] into a [models.Song]
func (r *SongRepository) scanRow(rows *sql.Rows) (*models.Song, error) {
	var (
		id    int64
		name  sql.NullString
		album sql.NullString
	)

	if err := rows.Scan(&id, &name, &album); err != nil {
		return nil, fmt.Errorf("failed to scan song: %w", err)
	}

	return models.NewPersistedSong(id, name.String, album.String), nil
}
