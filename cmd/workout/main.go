package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/bzimmer/workout"
)

func config(c *cli.Context) (*workout.Config, error) {
	var err error
	var val []byte
	switch c.IsSet("config") {
	case true:
		log.Info().Str("file", c.String("config")).Msg("config")
		var fp *os.File
		fp, err = os.Open(c.String("config"))
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		val, err = io.ReadAll(fp)
		if err != nil {
			return nil, err
		}
	case false:
		log.Info().Str("file", "etc/packages.json").Msg("config")
		val, err = workout.Content.ReadFile("etc/packages.json")
		if err != nil {
			return nil, err
		}
	}
	var cfg workout.Config
	err = json.Unmarshal(val, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func run(c *cli.Context) error {
	cfg, err := config(c)
	if err != nil {
		return err
	}
	encoding := "text"
	if c.Bool("json") {
		encoding = "json"
	}
	enc, err := workout.NewEncoder(c.App.Writer, encoding)
	if err != nil {
		return err
	}
	reports, err := workout.Reports(cfg.Packages)
	if err != nil {
		return err
	}
	for _, r := range reports {
		if err = enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "workout",
		HelpName: "workout",
		Usage:    "Workout statistics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "file with workout packages",
			},
			&cli.BoolFlag{
				Name:  "json",
				Value: false,
				Usage: "encode reports as json",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Value:   false,
				Usage:   "enable debug logging",
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			log.Error().Err(err).Msg(c.App.Name)
		},
		Before: func(c *cli.Context) error {
			level := zerolog.InfoLevel
			if c.Bool("verbose") {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			zerolog.DurationFieldUnit = time.Millisecond
			zerolog.DurationFieldInteger = false
			log.Logger = log.Output(
				zerolog.ConsoleWriter{
					Out:        c.App.ErrWriter,
					NoColor:    false,
					TimeFormat: time.RFC3339,
				},
			)
			return nil
		},
		Action: run,
	}
}

func main() {
	if err := newApp().RunContext(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}
