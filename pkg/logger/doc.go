// Package logger builds the site's *slog.Logger.
//
// New takes functional options; WithEnvironment picks text output at debug
// level for development and JSON at info level elsewhere. Context extractors
// copy request-scoped values, such as the request ID, onto every record
// logged with a context:
//
//	log := logger.New(
//		logger.WithEnvironment(env, "lares"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			environment.LoggerExtractor(),
//		),
//	)
//	log.ErrorContext(ctx, "directus request failed",
//		logger.Component("directus"),
//		logger.Endpoint("pages"),
//		logger.Error(err),
//	)
//
// The attribute helpers keep key names consistent. Error, RequestID and
// ClientIP return an empty Attr for zero input, which slog drops.
package logger
