// Package logger builds the service's *slog.Logger.
//
// New applies functional options on top of production-safe defaults (JSON,
// info level, stdout) and wraps the handler with a decorator that injects
// request-scoped attributes, such as the request id, pulled from the context
// on every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Name),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "form checked", logger.Form("dream"), logger.Valid(true))
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty attribute for nil errors, which slog drops.
package logger
