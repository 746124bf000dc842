package utils

import (
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/text"
	"github.com/pkg/errors"
)

// SetupLogging installs the process-wide log handler. Output goes to the
// config's log file when set, to w otherwise, and nowhere when w is nil.
// The returned closer must be called on shutdown.
func SetupLogging(config Config, w io.Writer) (io.Closer, error) {
	level := log.InfoLevel
	if config.Verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	if config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "[SetupLogging] failed to open log file: %+v", config.LogFile)
		}
		log.SetHandler(text.New(f))
		return f, nil
	}

	if w == nil {
		log.SetHandler(discard.New())
		return nopCloser{}, nil
	}
	log.SetHandler(text.New(w))
	return nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
