// Package splitter runs the export pipeline: load the concatenated PGN file,
// segment it into games, derive a filename per game, write each game to the
// output directory and record the run in the manifest.
package splitter

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/smitusov/pgnsplit/internal/config"
	apperrors "github.com/smitusov/pgnsplit/internal/errors"
	"github.com/smitusov/pgnsplit/internal/filename"
	"github.com/smitusov/pgnsplit/internal/logger"
	"github.com/smitusov/pgnsplit/internal/manifest"
	"github.com/smitusov/pgnsplit/internal/namematch"
	"github.com/smitusov/pgnsplit/internal/pgn"
)

// Summary reports what a run produced.
type Summary struct {
	Exported  int
	OutputDir string
}

// Splitter holds everything a run needs. The manifest store may be nil, which
// disables export recording.
type Splitter struct {
	cfg     config.Config
	aliases namematch.AliasSet
	store   *manifest.Store
}

// New creates a Splitter for the given configuration.
func New(cfg config.Config, store *manifest.Store) *Splitter {
	return &Splitter{
		cfg:     cfg,
		aliases: namematch.NewAliasSet(cfg.Aliases),
		store:   store,
	}
}

// Run executes the pipeline. Any I/O failure aborts the run; there is no
// partial-success accounting.
func (s *Splitter) Run(ctx context.Context) (Summary, error) {
	log := logger.FromContext(ctx).WithPrefix("splitter")

	data, err := os.ReadFile(s.cfg.InputPath)
	if err != nil {
		return Summary{}, apperrors.NewInputError(s.cfg.InputPath, err)
	}

	records := pgn.Split(string(data))
	log.Info("found %d game records in %s", len(records), s.cfg.InputPath)

	if err := os.MkdirAll(s.cfg.OutputDir, 0755); err != nil {
		return Summary{}, apperrors.NewOutputError(s.cfg.OutputDir, err)
	}

	exports := make([]manifest.Export, 0, len(records))
	for i, record := range records {
		seq := i + 1
		export := s.describe(seq, record)

		path := filepath.Join(s.cfg.OutputDir, export.Filename)
		content := strings.TrimRight(record, " \t\r\n") + "\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return Summary{}, apperrors.NewOutputError(path, err)
		}
		log.Debug("wrote %s", export.Filename)

		exports = append(exports, export)
	}

	if s.store != nil {
		if err := s.store.InsertExports(ctx, exports); err != nil {
			return Summary{}, apperrors.NewDBError(err)
		}
		log.Debug("manifest updated: %d rows", len(exports))
	}

	return Summary{Exported: len(records), OutputDir: s.cfg.OutputDir}, nil
}

// describe derives the filename and manifest row for one record.
func (s *Splitter) describe(seq int, record string) manifest.Export {
	h := pgn.Headers(record)
	white, black := h["White"], h["Black"]
	result := pgn.ParseResult(h["Result"])
	eco := h["ECO"]

	var who string
	sides, matched := s.aliases.DeriveSides(white, black)
	if matched {
		who = filename.Who(sides.Self, sides.Opponent)
	} else {
		who = filename.Who(white, black)
	}

	export := manifest.Export{
		Seq:      seq,
		Filename: filename.Build(seq, who, h["Date"], eco, result.Label()),
		White:    white,
		Black:    black,
		PlayedAs: sides.PlayedAs,
		Opponent: sides.Opponent,
		Date:     h["Date"],
		Result:   result.Label(),
		ECO:      eco,
	}

	// Manifest-only enrichment; the filename never uses derived data.
	if s.store != nil {
		export.Plies = pgn.MainlinePlies(record)
		code, title := pgn.DetectOpening(record)
		export.OpeningName = title
		if export.ECO == "" {
			export.ECO = code
		}
	}
	return export
}
