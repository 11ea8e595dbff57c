// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers so field names stay consistent across packages.
//
// New selects a JSON or text handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which adds attributes pulled from the
// context (such as the run id) to every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "sillynames"),
//	    logger.WithRunIDFromContext(),
//	)
//
//	ctx := logger.WithRunID(context.Background(), uuid.NewString())
//	log.InfoContext(ctx, "dataset anonymized",
//	    logger.Column("ride_name"),
//	    logger.Count("rows", 120),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
