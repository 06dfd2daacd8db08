// Package handler adapts third-party logging front-ends to writelog.
//
// Each adapter turns the front-end's record into a core.Record and
// delivers it to a logger.Log, usually a *logger.WriteLogger or the
// installed global logger from logger.Active. Level checks are answered
// by the destination logger, so a front-end never builds a record the
// logger would discard.
//
// Built-in adapters:
//
//   - SlogHandler implements log/slog.Handler.
//   - ZapCore implements zapcore.Core for go.uber.org/zap.
//   - LogrusHook implements logrus.Hook for github.com/sirupsen/logrus.
//
// writelog has no structured output, so attributes and fields are
// appended to the message text as key=value pairs, sorted by key where
// the front-end does not define an order.
package handler
