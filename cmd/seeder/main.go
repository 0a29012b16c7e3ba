// Command seeder loads dictionary entries from a JSON file and imports them
// as verified entries. It is intended to be run offline against an existing
// database, not as part of the main server.
//
// Flags:
//
//	--file         path to the JSON file with entries (required)
//	--admin-email  email of the admin user to attribute entries to (required)
//	--dry-run      validate the file without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/maayplatform/afmaay-backend/internal/adapter/postgres"
	"github.com/maayplatform/afmaay-backend/internal/adapter/postgres/entry"
	"github.com/maayplatform/afmaay-backend/internal/adapter/postgres/suggestion"
	"github.com/maayplatform/afmaay-backend/internal/adapter/postgres/user"
	"github.com/maayplatform/afmaay-backend/internal/app"
	"github.com/maayplatform/afmaay-backend/internal/config"
	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/internal/service/dictionary"
	"github.com/maayplatform/afmaay-backend/pkg/ctxutil"
)

// seedRow is a single entry in the seed file.
type seedRow struct {
	MaayWord       string  `json:"maay_word"`
	Translation    string  `json:"translation"`
	PartOfSpeech   string  `json:"part_of_speech"`
	SoundGroup     *string `json:"sound_group,omitempty"`
	ExampleMaay    *string `json:"example_maay,omitempty"`
	ExampleEnglish *string `json:"example_english,omitempty"`
	AudioURL       *string `json:"audio_url,omitempty"`
}

func (r seedRow) toInput() dictionary.CreateInput {
	input := dictionary.CreateInput{
		MaayWord:       r.MaayWord,
		Translation:    r.Translation,
		PartOfSpeech:   domain.PartOfSpeech(r.PartOfSpeech),
		ExampleMaay:    r.ExampleMaay,
		ExampleEnglish: r.ExampleEnglish,
		AudioURL:       r.AudioURL,
	}
	if r.SoundGroup != nil {
		sg := domain.SoundGroup(*r.SoundGroup)
		input.SoundGroup = &sg
	}
	return input
}

func main() {
	fileFlag := flag.String("file", "", "path to the JSON file with entries")
	adminEmailFlag := flag.String("admin-email", "", "email of the admin user to attribute entries to")
	dryRunFlag := flag.Bool("dry-run", false, "validate the file without writing to DB")
	flag.Parse()

	if *fileFlag == "" || *adminEmailFlag == "" {
		log.Fatal("both --file and --admin-email are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	rows, err := readSeedFile(*fileFlag)
	if err != nil {
		logger.Error("read seed file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("seed file parsed",
		slog.String("file", *fileFlag),
		slog.Int("rows", len(rows)),
	)

	if *dryRunFlag {
		for i, row := range rows {
			if err := row.toInput().Validate(); err != nil {
				logger.Error("invalid row",
					slog.Int("row", i),
					slog.String("error", err.Error()),
				)
				os.Exit(1)
			}
		}
		logger.Info("dry run: all rows valid, nothing written")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	admin, err := user.New(pool).GetByEmail(ctx, *adminEmailFlag)
	if err != nil {
		logger.Error("look up admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if admin.Role != domain.UserRoleAdmin {
		logger.Error("user is not an admin", slog.String("email", *adminEmailFlag))
		os.Exit(1)
	}

	ctx = ctxutil.WithUserID(ctx, admin.ID)
	ctx = ctxutil.WithRole(ctx, admin.Role.String())

	svc := dictionary.NewService(logger,
		entry.New(pool),
		suggestion.New(pool),
		postgres.NewTxManager(pool),
		cfg.Dict,
	)

	imported := 0
	for start := 0; start < len(rows); start += cfg.Dict.BulkImportMaxRows {
		end := min(start+cfg.Dict.BulkImportMaxRows, len(rows))

		batch := dictionary.BulkImportInput{
			Entries: make([]dictionary.CreateInput, 0, end-start),
		}
		for _, row := range rows[start:end] {
			batch.Entries = append(batch.Entries, row.toInput())
		}

		result, err := svc.BulkImport(ctx, batch)
		if err != nil {
			logger.Error("bulk import failed",
				slog.Int("batch_start", start),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		imported += result.Imported
	}

	logger.Info("seeding completed", slog.Int("imported", imported))
}

func readSeedFile(path string) ([]seedRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []seedRow
	if err := json.NewDecoder(f).Decode(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}
