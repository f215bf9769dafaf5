package main

import (
	"os"

	"github.com/dmitrymomot/xkcdpass/pkg/logger"
)

func main() {
	a := &app{log: logger.New(logger.WithTextFormatter())}
	if err := newRootCmd(a).Execute(); err != nil {
		a.log.Error("xkcdpass failed", logger.Error(err))
		os.Exit(1)
	}
}
