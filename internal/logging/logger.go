package logging

import (
	"log/slog"
	"os"
)

// Setup installs the process-wide slog default: JSON records on stdout at
// INFO and above. The Postgres error sink is layered on from main once the
// database connection exists.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
