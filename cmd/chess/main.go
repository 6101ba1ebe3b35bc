// chess is a two-player chess game on a text board. It also counts move
// paths (perft) to check the rules engine against known results.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	if err := run(flag.Args(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "chess: %v\n", err)
		os.Exit(1)
	}
}

// run loads the configuration and starts the subcommand named by args.
func run(args []string, in io.Reader, out io.Writer) error {
	cfg, err := loadConfig(*configFile)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	setupLogger(cfg)

	game, err := newGameFromConfig(cfg)
	if err != nil {
		return err
	}

	cmd := "play"
	if len(args) > 0 {
		cmd = args[0]
	}
	slog.Debug("starting", "command", cmd, "to_move", game.Turn().String())

	switch cmd {
	case "play":
		return runPlay(game, in, out, newRenderer(cfg.Display, out))
	case "perft":
		return runPerft(game, cfg.Perft, out)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

// loadConfig reads path over the defaults, or returns the defaults when
// path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.NewConfig(), nil
	}
	return config.LoadFile(path)
}

// setupLogger installs the text logger on stderr at the configured level.
func setupLogger(cfg *config.Config) {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// newGameFromConfig builds the starting position.
func newGameFromConfig(cfg *config.Config) (*engine.Game, error) {
	toMove, err := cfg.ToMoveColour()
	if err != nil {
		return nil, err
	}
	return engine.NewGameFromLayout(cfg.Game.Layout, toMove)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options] [play|perft]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game on a text board.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  play   interactive game (default); type 'help' for its commands\n")
	fmt.Fprintf(os.Stderr, "  perft  count move paths to the configured depth\n")
	fmt.Fprintf(os.Stderr, "\nLayout rows run from rank 8 to rank 1, uppercase for White, '-' for empty.\n")
}
