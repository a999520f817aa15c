package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/regextract/regextract-go/pkg/regextract"
)

// app is the state shared by the extract and follow commands.
type app struct {
	settings settings
	log      *slog.Logger
	ex       *regextract.Extractor
	order    []regextract.Category
	close    func()
}

// newApp loads settings from v and builds the logger and extractor.
// The caller must call Close when done.
func newApp(cmd *cobra.Command, v *viper.Viper) (*app, error) {
	s, err := loadSettings(v)
	if err != nil {
		return nil, err
	}

	logger, closeLog := newLogger(s.LogFile, s.Verbose, cmd.ErrOrStderr())

	ex, err := buildExtractor(s.Patterns, s.ChunkSize, logger)
	if err != nil {
		closeLog()
		return nil, err
	}

	order, err := selectCategories(ex, s.Types)
	if err != nil {
		closeLog()
		return nil, err
	}

	return &app{settings: s, log: logger, ex: ex, order: order, close: closeLog}, nil
}

// Close releases the log file, if any.
func (a *app) Close() {
	a.close()
}

func (a *app) write(cmd *cobra.Command, rec record) error {
	return writeRecord(cmd.OutOrStdout(), a.settings.Format, rec, a.order)
}
