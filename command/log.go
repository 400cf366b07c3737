package command

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	cli "github.com/urfave/cli/v2"
)

// withLogFile redirects the context logger to the file named by --log-file.
// Stdout belongs to the canvas, so nothing is logged there.
func withLogFile(c *cli.Context) (context.Context, func() error, error) {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", c.String("log-level"), err)
	}

	logs, err := os.OpenFile(c.String("log-file"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open log file: %w", err)
	}

	ctx := c.Context
	logger := zerolog.Ctx(ctx).Output(zerolog.ConsoleWriter{Out: logs, NoColor: true}).Level(level)
	return logger.WithContext(ctx), logs.Close, nil
}
