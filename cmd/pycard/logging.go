package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// logLevel is set twice during startup: provisionally from the raw
// --debug flag before the configuration file is read, then again once
// the merged debug setting is known.
var logLevel = new(slog.LevelVar)

func setupLogging(debug bool) {
	h := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      logLevel,
		TimeFormat: "15:04:05.000",
	})
	slog.SetDefault(slog.New(h))
	setLogLevel(debug)
}

func setLogLevel(debug bool) {
	if debug {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}
