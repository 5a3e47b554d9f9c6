package main

import (
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setup loads the dotenv file and routes library logs to stderr.
func setup(ctx *cli.Context) error {
	if err := loadEnv(ctx.String(envFileFlag.Name)); err != nil {
		// Keep going, the environment may be complete without it
		logrus.Warnf("%v", err)
	}

	useColor := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	level := log.FromLegacyLevel(ctx.Int(verbosityFlag.Name))
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(colorable.NewColorableStderr(), level, useColor)))
	return nil
}

// newOutput builds the logger the command reports results with: colored
// text on a terminal, JSON lines into a rotated file when one is configured.
func newOutput(ctx *cli.Context, cfg logConfig) *logrus.Logger {
	logger := logrus.New()

	file := cfg.File
	if ctx.IsSet(logFileFlag.Name) {
		file = ctx.String(logFileFlag.Name)
	}
	if file != "" {
		logger.SetOutput(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    orDefault(cfg.MaxSizeMB, 100),
			MaxBackups: orDefault(cfg.MaxBackups, 3),
			MaxAge:     orDefault(cfg.MaxAgeDays, 28),
			Compress:   cfg.Compress,
		})
		logger.SetFormatter(&logrus.JSONFormatter{})
		return logger
	}

	logger.SetOutput(colorable.NewColorableStdout())
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:   isatty.IsTerminal(os.Stdout.Fd()),
		FullTimestamp: true,
	})
	return logger
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
