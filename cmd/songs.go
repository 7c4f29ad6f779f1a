package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"songbook/internal/formatter"
	"songbook/internal/shared"
)

// Add persists a new song and prints the row id the database assigned.
func (r *Runner) Add(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: song name", shared.ErrMissingArgument)
	}

	album := cmd.String("album")

	db, repo, err := r.openRepository(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	song, err := repo.Create(name, album)
	if err != nil {
		return fmt.Errorf("failed to save song: %w", err)
	}

	r.logger.Info("song saved", "id", song.ID(), "name", song.Name, "album", song.Album)

	if cmd.Bool("json") {
		return r.writeJSON(formatter.Row{ID: song.ID(), Name: song.Name, Album: song.Album}, true)
	}

	return r.writePlain("added %s\n", song)
}

// List prints every song in the library.
func (r *Runner) List(ctx context.Context, cmd *cli.Command) error {
	db, repo, err := r.openRepository(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	songs, err := repo.List()
	if err != nil {
		return fmt.Errorf("failed to list songs: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(formatter.NewSnapshot(songs), cmd.Bool("pretty"))
	}

	if len(songs) == 0 {
		return r.writePlain("library is empty\n")
	}

	for _, song := range songs {
		if err := r.writePlain("%s\n", song); err != nil {
			return err
		}
	}

	return r.writePlain("%d song(s)\n", len(songs))
}

// Get looks up a single song by its row id.
func (r *Runner) Get(ctx context.Context, cmd *cli.Command) error {
	idArg := cmd.StringArg("id")
	if idArg == "" {
		return fmt.Errorf("%w: song id", shared.ErrMissingArgument)
	}

	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a valid id", shared.ErrInvalidArgument, idArg)
	}

	db, repo, err := r.openRepository(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	song, err := repo.Get(id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(formatter.Row{ID: song.ID(), Name: song.Name, Album: song.Album}, true)
	}

	return r.writePlain("%s\n", song)
}

// Export writes a snapshot of the library to disk in the requested format.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	config, err := r.resolveConfig(cmd)
	if err != nil {
		return err
	}

	db, repo, err := r.openRepository(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	songs, err := repo.List()
	if err != nil {
		return fmt.Errorf("failed to list songs: %w", err)
	}

	dir := cmd.String("output")
	if dir == "" {
		dir = config.Export.Directory
	}

	path, err := formatter.WriteExport(songs, cmd.String("format"), dir)
	if err != nil {
		return fmt.Errorf("failed to export library: %w", err)
	}

	r.logger.Info("library exported", "path", path, "songs", len(songs))
	return r.writePlain("exported %d song(s) to %s\n", len(songs), path)
}
