// Package logger builds *slog.Logger values for guardrail and its callers.
//
// New takes functional options for format, level, output, static attributes
// and context extractors. The resulting handler is wrapped in
// LogHandlerDecorator, which adds attributes pulled from the record context.
// FromEnv reads the same settings from GUARDRAIL_LOG_LEVEL,
// GUARDRAIL_LOG_FORMAT, GUARDRAIL_ENV and GUARDRAIL_SERVICE.
//
// Attribute helpers keep key names consistent across packages:
//
//	log.Debug("directives registered",
//	    logger.Component("directive"),
//	    logger.Target(target),
//	    logger.Directives("IsInt", "IsIntRange"),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed without a nil check. Nop returns a logger that discards everything;
// the directive registry uses it until a logger is supplied.
package logger
