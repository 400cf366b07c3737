package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/hinshun/termwin/command"
	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
}

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "termwin: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ih := command.NewInterruptHandler(cancel, syscall.SIGINT, syscall.SIGTERM)
	defer ih.Close()

	// Commands redirect this logger to --log-file before drawing.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	return command.App().RunContext(ctx, args)
}
