// Package cmd implements the nw command line application.
package cmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

// Config holds the global configuration, shared by every subcommand.
type Config struct {
	AssetsFile string `env:"NW_ASSETS_FILE" envDefault:"assets.jsonl"`
	Currency   string `env:"NW_CURRENCY"    envDefault:"AUD"`
	Style      string `env:"NW_STYLE"       envDefault:"auto"`
	Verbose    bool   `env:"NW_VERBOSE"`
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use a global variable.

// Global is the resolved configuration: environment first, then global flags.
var Global = Config{AssetsFile: "assets.jsonl", Currency: "AUD", Style: "auto"}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RegisterFlags loads Global from the environment and binds the global flags
// to it, so that flags take precedence.
func RegisterFlags(f *flag.FlagSet) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	Global = cfg
	f.StringVar(&Global.AssetsFile, "assets", Global.AssetsFile, "Path to the assets file (JSONL format)")
	f.StringVar(&Global.Currency, "currency", Global.Currency, "Currency of every amount")
	f.StringVar(&Global.Style, "style", Global.Style, "Markdown style: auto, dark, light, notty or raw")
	f.BoolVar(&Global.Verbose, "v", Global.Verbose, "Log extra information")
	return nil
}

// Commands returns every subcommand, by group.
func Commands() map[string][]subcommands.Command {
	return map[string][]subcommands.Command{
		"reports":  {&netCmd{}, &affordCmd{}, &lsCmd{}, &queryCmd{}},
		"assets":   {&addCmd{}, &updateCmd{}, &rmCmd{}, &fmtCmd{}},
		"examples": {&examplesCmd{}, &useCmd{}},
		"help":     {&topicCmd{}},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for group, cmds := range Commands() {
		for _, cmd := range cmds {
			c.Register(cmd, group)
		}
	}
}

// verbosef logs only in verbose mode.
func verbosef(format string, v ...any) {
	if Global.Verbose {
		log.Printf(format, v...)
	}
}

// DecodeAssets decodes the assets file. A missing file is not an error: the
// default example is returned instead.
func DecodeAssets() (networth.Assets, error) {
	f, err := os.Open(Global.AssetsFile)
	if errors.Is(err, fs.ErrNotExist) {
		e := networth.DefaultExample(Global.Currency)
		log.Printf("warning, assets file %q does not exist, starting from the %q example instead", Global.AssetsFile, e.Label)
		return e.Assets, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	assets, err := networth.DecodeAssets(f, Global.Currency)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", Global.AssetsFile, err)
	}
	verbosef("loaded %d assets from %q", len(assets), Global.AssetsFile)
	return assets, nil
}

// EncodeAssets writes assets into the assets file, replacing its content.
func EncodeAssets(assets networth.Assets) error {
	if err := assets.Validate(); err != nil {
		return err
	}
	var b bytes.Buffer
	if err := networth.EncodeAssets(&b, assets); err != nil {
		return err
	}
	if err := os.WriteFile(Global.AssetsFile, b.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %q: %w", Global.AssetsFile, err)
	}
	verbosef("saved %d assets to %q", len(assets), Global.AssetsFile)
	return nil
}
