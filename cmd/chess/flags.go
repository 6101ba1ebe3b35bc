// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	configFile = flag.String("config", "", "TOML configuration file")

	// Game options
	layoutFlag = flag.String("layout", "", "64-square board layout, rank 8 first ('-' for empty)")
	toMoveFlag = flag.String("to-move", "", "Side to move: white or black")

	// Display options
	colourFlag = flag.String("colour", "", "Board colours: auto, always, never")
	flipFlag   = flag.Bool("flip", false, "Draw the board from Black's side")

	// Logging
	logLevelFlag = flag.String("log-level", "", "Log level: debug, info, warn, error")

	// Perft options
	depthFlag   = flag.Int("depth", 0, "Perft depth")
	workersFlag = flag.Int("workers", 0, "Perft worker goroutines (0 = one per physical core)")

	// Info
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("help", false, "Show help")
)

// applyFlags copies the flags given on the command line into cfg. Flags
// left unset keep the value from the defaults or the config file.
func applyFlags(cfg *config.Config) error {
	return applySetFlags(flag.CommandLine, cfg)
}

func applySetFlags(fs *flag.FlagSet, cfg *config.Config) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		value := getter.Get()
		switch f.Name {
		case "layout":
			cfg.Game.Layout = value.(string)
		case "to-move":
			cfg.Game.ToMove = value.(string)
		case "colour":
			cfg.Display.Colour, err = config.ParseColourMode(value.(string))
		case "flip":
			cfg.Display.Flip = value.(bool)
		case "log-level":
			cfg.Log.Level = value.(string)
		case "depth":
			cfg.Perft.Depth = value.(int)
		case "workers":
			cfg.Perft.Workers = value.(int)
		}
	})
	return err
}
