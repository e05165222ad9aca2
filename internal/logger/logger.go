package logger

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger.
func Setup(w io.Writer, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(w)
	log.SetLevel(lvl)
	return nil
}
