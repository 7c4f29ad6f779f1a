// package formatter provides functions to export the song library to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"songbook/internal/models"
	"songbook/internal/shared"
)

// Snapshot wraps an exported song list with identifying metadata.
//
// Every export carries a generated snapshot ID and a timestamp so repeated
// exports of the same library can be told apart.
type Snapshot struct {
	SnapshotID string    `json:"snapshot_id"`
	ExportedAt time.Time `json:"exported_at"`
	Count      int       `json:"count"`
	Songs      []Row     `json:"songs"`
}

// Row is the flat JSON representation of a persisted song.
type Row struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Album string `json:"album"`
}

// NewSnapshot builds a Snapshot of the given songs, stamped with a fresh ID.
func NewSnapshot(songs []*models.Song) *Snapshot {
	rows := make([]Row, len(songs))
	for i, song := range songs {
		rows[i] = Row{ID: song.ID(), Name: song.Name, Album: song.Album}
	}

	return &Snapshot{
		SnapshotID: shared.GenerateID(),
		ExportedAt: time.Now().UTC(),
		Count:      len(songs),
		Songs:      rows,
	}
}

// ExportToCSV converts a song list to CSV format with columns: ID, Name, Album
func ExportToCSV(songs []*models.Song) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Album"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range songs {
		record := []string{
			strconv.FormatInt(song.ID(), 10),
			song.Name,
			song.Album,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a song list to Markdown format
func ExportToMarkdown(songs []*models.Song) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Songbook Library\n\n")
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(songs)))

	buf.WriteString("## Songs\n\n")
	for i, song := range songs {
		albumPart := ""
		if song.Album != "" {
			albumPart = fmt.Sprintf(" (%s)", song.Album)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s\n", i+1, song.Name, albumPart))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a song list to plain text format
func ExportToText(songs []*models.Song) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", len(songs)))
	for _, song := range songs {
		buf.WriteString(song.String() + "\n")
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a song list to an indented JSON [Snapshot]
func ExportToJSON(songs []*models.Song) ([]byte, error) {
	data, err := shared.MarshalJSON(NewSnapshot(songs), true)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// extensions maps export formats to file extensions.
var extensions = map[string]string{
	"csv":  ".csv",
	"md":   ".md",
	"txt":  ".txt",
	"json": ".json",
}

// WriteExport renders songs in the given format (csv, md, txt or json) and
// writes the result under dir. Returns the path of the written file.
//
// The filename defaults to library_{timestamp}{ext} inside dir.
func WriteExport(songs []*models.Song, format, dir string) (string, error) {
	ext, ok := extensions[format]
	if !ok {
		return "", fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidFlag, format)
	}

	var data []byte
	var err error

	switch format {
	case "csv":
		data, err = ExportToCSV(songs)
	case "md":
		data, err = ExportToMarkdown(songs)
	case "txt":
		data, err = ExportToText(songs)
	case "json":
		data, err = ExportToJSON(songs)
	}
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	filename := fmt.Sprintf("library_%s%s", time.Now().UTC().Format("20060102T150405"), ext)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
