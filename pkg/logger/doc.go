// Package logger builds *slog.Logger instances with per-environment defaults
// and request-scoped attributes.
//
// New applies Option functions, picks a JSON or text handler and, when
// ContextExtractor callbacks are registered, wraps it so every record logged
// with a context gains those attributes (request_id, client_ip, ...).
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        clientip.LoggerExtractor(),
//	    ),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "honeypot tripped", logger.Team(reg.TeamName))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
