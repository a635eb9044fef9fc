package app

import (
	"go.uber.org/zap/zapcore"

	"go.ytsaurus.tech/library/go/core/log"
	"go.ytsaurus.tech/library/go/core/log/nop"
	logzap "go.ytsaurus.tech/library/go/core/log/zap"
	"go.ytsaurus.tech/library/go/core/xerrors"
)

// NewLogger returns a stderr console logger, or a no-op logger if level is empty.
func NewLogger(level string) (log.Logger, error) {
	if level == "" {
		return &nop.Logger{}, nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, xerrors.Errorf("invalid log level: %w", err)
	}

	conf := logzap.ConsoleConfig(lvl)
	conf.OutputPaths = []string{"stderr"}
	conf.DisableStacktrace = true
	conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := logzap.New(conf)
	if err != nil {
		return nil, xerrors.Errorf("failed to configure logger: %w", err)
	}
	return l, nil
}
