// Package logging builds the CLI logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	Level      string
	Format     string // "text" or "json"
	File       string // empty logs to stderr
	MaxSize    int    // megabytes
	MaxBackups int
	MaxAge     int // days
}

// New returns a logger and the writer it logs to. Callers close the writer
// when done.
func New(opts Options) (*logrus.Logger, io.WriteCloser, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(orDefault(opts.Level, "info"))
	if err != nil {
		return nil, nil, err
	}
	log.SetLevel(level)

	if strings.EqualFold(opts.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: opts.File == ""})
	}

	var out io.WriteCloser = nopCloser{os.Stderr}
	if opts.File != "" {
		out = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSize,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAge,
		}
	}
	log.SetOutput(out)
	return log, out, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
