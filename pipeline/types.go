package pipeline

import (
	"log/slog"

	"github.com/optimlaser/lasercore/drawing"
)

// Options configures one Run invocation.
type Options struct {
	Config drawing.Config

	// Logger receives the end-of-run summary and non-fatal distance-
	// computation failures (spec §4.3.3). Defaults to slog.Default().
	Logger *slog.Logger

	// Original is the byte-exact source the caller read before phase
	// 1. Restore, if non-nil, is invoked with Original when
	// cancellation is observed (spec §5, §7 "Cancelled"); Run itself
	// never touches the filesystem.
	Original []byte
	Restore  func(original []byte) error
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
