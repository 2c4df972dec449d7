// Package logger builds *slog.Logger values from functional options and
// provides helper constructors for the attributes used across the module.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "formdemo"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("field validated", logger.Field("username"), logger.Event("changed"))
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
