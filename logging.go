package pathregexp

import (
	"io"
	"log/slog"
)

// noopLogger discards everything. It is the Router default so callers
// that never configure WithLogger pay no logging cost and never see a
// nil-pointer panic from an unconfigured logger.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
