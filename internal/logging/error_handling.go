package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// SafeCloseWithLogging closes a resource and logs any errors that occur
func SafeCloseWithLogging(closer io.Closer, logger *slog.Logger, operation string) {
	if closer == nil {
		return
	}

	if err := closer.Close(); err != nil {
		LogError(logger, "failed to close resource", err,
			slog.String("operation", operation),
			slog.String("component", "resource_management"))
	}
}

// StartupError logs a failure that prevents the service from starting and
// returns it wrapped with message, for the caller to exit on.
func StartupError(logger *slog.Logger, message string, err error, attrs ...slog.Attr) error {
	attrs = append(attrs, slog.String("component", "startup"))
	LogError(logger, message, err, attrs...)
	return fmt.Errorf("%s: %w", message, err)
}
