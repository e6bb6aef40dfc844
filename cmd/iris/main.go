// Package main provides the iris command: the HTTP service and offline
// queries against a workbook.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		slog.Error("iris failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
