package command

import (
	cli "github.com/urfave/cli/v2"
)

func App() *cli.App {
	app := cli.NewApp()
	app.Name = "termwin"
	app.Usage = "compose bordered text windows on the terminal"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "print unknown border masks as their decoded sides",
			EnvVars: []string{"TERMWIN_DEBUG"},
		},
		&cli.StringFlag{
			Name:    "style",
			Usage:   "border style of the background window",
			Value:   "double",
			EnvVars: []string{"TERMWIN_STYLE"},
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "file to write logs to",
			Value:   "termwin.log",
			EnvVars: []string{"TERMWIN_LOG_FILE"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "minimum level of logs written",
			Value:   "info",
			EnvVars: []string{"TERMWIN_LOG_LEVEL"},
		},
	}
	app.Flags = append(app.Flags, demoFlags()...)
	app.Action = Demo
	app.Commands = []*cli.Command{
		demoCommand,
		snapshotCommand,
	}
	return app
}
