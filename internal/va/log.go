package va

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ConfigureLogging reads LIBVA_V4L2_LOG and returns a logger writing to
// the destination it selects: "1" selects stderr, any other non-empty
// value is a file path opened for append, and an unset or empty
// variable means no logging at all (a driver loaded in-process by
// libva has no business writing to stderr by default). The returned
// close func releases the opened file, if any, and is always safe to
// call.
func ConfigureLogging() (*slog.Logger, func() error, error) {
	v := os.Getenv("LIBVA_V4L2_LOG")
	switch v {
	case "":
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	case "1":
		return slog.New(slog.NewTextHandler(os.Stderr, nil)), func() error { return nil }, nil
	default:
		f, err := os.OpenFile(v, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("va: open log file %q: %w", v, err)
		}
		return slog.New(slog.NewTextHandler(f, nil)), f.Close, nil
	}
}
