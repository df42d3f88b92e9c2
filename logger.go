package bankxterm

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger from cfg. The returned closer releases
// the log file, if any.
func NewLogger(cfg *Config) (*zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if cfg.Log.File != "" {
		fl, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w, closer = fl, fl
	}

	logger := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return &logger, closer, nil
}
