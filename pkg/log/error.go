package log

import (
	"fmt"
	"log/slog"
)

// Error returns an attribute holding the error and, when available, its stack.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}

	return slog.String("error", fmt.Sprintf("%+v", err))
}
