package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	env, cleanup, err := newEnv(logger, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	width, height := terminalSize()
	return tui.Run(env, "", width, height)
}
