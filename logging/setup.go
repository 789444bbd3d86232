package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	slogmulti "github.com/samber/slog-multi"
	"gitlab.com/greyxor/slogor"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Verbose bool
	// LogFile, when set, receives a JSON copy of every record with rotation.
	LogFile string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

// FileWriter returns a size-rotated log file.
func FileWriter(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
}

// NewHandler builds the console handler and, with a log file, a JSON file
// handler next to it. Both see the attributes added with AppendCtx.
func NewHandler(w io.Writer, opts Options) (slog.Handler, io.Closer) {
	console := slogor.NewHandler(w,
		slogor.SetLevel(level(opts.Verbose)),
		slogor.SetTimeFormat(time.DateTime),
		slogor.ShowSource())

	if opts.LogFile == "" {
		return ContextHandler{console}, nopCloser{}
	}

	file := FileWriter(opts.LogFile)
	jsonHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level(opts.Verbose), AddSource: true})

	return ContextHandler{slogmulti.Fanout(console, jsonHandler)}, file
}

// Setup installs the default logger. The returned closer flushes the log file.
func Setup(opts Options) io.Closer {
	handler, closer := NewHandler(os.Stderr, opts)
	slog.SetDefault(slog.New(handler))

	return closer
}
