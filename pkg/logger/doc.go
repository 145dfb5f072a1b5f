// Package logger builds configured *slog.Logger instances for the
// entitlement engine and its collaborators.
//
// The factory favors safe production defaults (JSON, info level) and
// exposes options for development use:
//
//	log := logger.New(
//		logger.WithDevelopment("quotekit"),
//		logger.WithAttr(slog.String("component", "entitlement")),
//	)
//	logger.SetAsDefault(log)
//
// Context extractors let request-scoped values (request id, account id)
// ride along on every record without threading them through call sites.
package logger
