package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"marble-solitaire/internal/config"
	"marble-solitaire/internal/game"
	"marble-solitaire/internal/session"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	boardFlags := []cli.Flag{
		&cli.IntFlag{Name: "size", Aliases: []string{"s"}, Usage: "arm size (english/european) or side length (triangular)"},
		&cli.IntSliceFlag{Name: "hole", Usage: "starting empty cell as ROW,COL (1-based)"},
	}

	return &cli.App{
		Name:  "marble-solitaire",
		Usage: "play peg solitaire in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file", EnvVars: []string{"SOLITAIRE_CONFIG"}},
			&cli.StringFlag{Name: "log-level", Usage: "override the configured log level"},
		},
		Before: setup,
		Commands: []*cli.Command{
			{Name: "english", Usage: "cross-shaped board", Flags: boardFlags, Action: playAction(game.English)},
			{Name: "european", Usage: "octagon board", Flags: boardFlags, Action: playAction(game.European)},
			{Name: "triangular", Aliases: []string{"triangle"}, Usage: "triangle board with diagonal jumps", Flags: boardFlags, Action: playAction(game.Triangle)},
		},
		Action: playAction(nil),
	}
}

// setup loads the config and configures the global logger before any command runs.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)
	if cfg.LogFormat == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	c.App.Metadata = map[string]interface{}{"config": cfg}
	return nil
}

// playAction builds the board for topo (or the configured one when topo is
// nil) and hands stdin/stdout to a session.
func playAction(topo *game.Topology) cli.ActionFunc {
	return func(c *cli.Context) error {
		b, err := buildBoard(c, topo)
		if err != nil {
			return cli.Exit(err, 2)
		}

		s := session.New(b, c.App.Reader, c.App.Writer, log.Logger)
		if err := s.Play(); err != nil {
			if errors.Is(err, session.ErrInputExhausted) {
				log.Warn().Str("session", s.ID).Msg("input closed before the game ended")
				return nil
			}
			return err
		}
		return nil
	}
}

func buildBoard(c *cli.Context, topo *game.Topology) (*game.Board, error) {
	cfg, _ := c.App.Metadata["config"].(*config.Config)
	if cfg == nil {
		cfg = &config.Config{Topology: "english"}
	}

	var opts []game.Option
	if topo == nil {
		t, o, err := cfg.Board()
		if err != nil {
			return nil, err
		}
		topo, opts = t, o
	} else if cfg.Size > 0 && cfg.Topology == topo.Name {
		opts = append(opts, game.WithSize(cfg.Size))
	}

	if c.IsSet("size") {
		opts = append(opts, game.WithSize(c.Int("size")))
	}
	if hole := c.IntSlice("hole"); len(hole) > 0 {
		if len(hole) != 2 {
			return nil, fmt.Errorf("%w: --hole takes ROW,COL", game.ErrInvalidConfiguration)
		}
		opts = append(opts, game.WithEmpty(hole[0]-1, hole[1]-1))
	}

	b, err := game.New(topo, opts...)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("board", topo.Name).
		Int("size", b.ArmSize()).
		Int("score", b.Score()).
		Msg("board ready")
	return b, nil
}
