package cmd

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli"

	"github.com/df07/go-scene-description/pkg/engine"
)

// DefaultConfigPath is read when --config is not given. A missing file at
// this path is not an error.
const DefaultConfigPath = "~/.scenedesc.toml"

// Engine names accepted in the config file and on the command line
const (
	EngineFile    = "file"
	EngineCommand = "command"
)

// Config holds the settings shared by every command
type Config struct {
	Engine    string `toml:"engine"`     // "file" or "command"
	Command   string `toml:"command"`    // renderer command line for the command engine
	OutputDir string `toml:"output_dir"` // overrides each project's settings.output_dir
	ScenesDir string `toml:"scenes_dir"` // scanned for project documents
	LogLevel  string `toml:"log_level"`
	Jobs      int    `toml:"jobs"` // parallel submissions, one per CPU when 0
	Seed      int64  `toml:"seed"` // seed of the procedural built-in scenes
}

// DefaultConfig returns the settings used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Engine:    EngineFile,
		ScenesDir: "scenes",
		LogLevel:  "notice",
		Seed:      42,
	}
}

// LoadConfig reads a TOML config file over the defaults. When required is
// false a missing file yields the defaults.
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := DefaultConfig()

	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path %q: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the engine selection
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineFile:
	case EngineCommand:
		if c.Command == "" {
			return fmt.Errorf("engine %q requires a command", EngineCommand)
		}
	default:
		return fmt.Errorf("unknown engine %q", c.Engine)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	return nil
}

// NewEngine creates the submission engine the config selects
func (c *Config) NewEngine() (engine.Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	files := &engine.FileEngine{OutputDir: c.OutputDir}
	if c.Engine == EngineCommand {
		e := engine.NewCommandEngine(c.Command)
		e.Files = files
		return e, nil
	}
	return files, nil
}

// loadConfig reads the global --config file and applies command line
// overrides of the current command
func loadConfig(ctx *cli.Context) (*Config, error) {
	path, required := DefaultConfigPath, false
	if ctx.GlobalIsSet("config") {
		path, required = ctx.GlobalString("config"), true
	}
	cfg, err := LoadConfig(path, required)
	if err != nil {
		return nil, err
	}

	if ctx.IsSet("engine") {
		cfg.Engine = ctx.String("engine")
	}
	if ctx.IsSet("command") {
		cfg.Command = ctx.String("command")
		if !ctx.IsSet("engine") {
			cfg.Engine = EngineCommand
		}
	}
	if ctx.IsSet("output-dir") {
		cfg.OutputDir = ctx.String("output-dir")
	}
	if ctx.GlobalIsSet("scenes-dir") {
		cfg.ScenesDir = ctx.GlobalString("scenes-dir")
	}
	if ctx.IsSet("jobs") {
		cfg.Jobs = ctx.Int("jobs")
	}
	if ctx.GlobalIsSet("seed") {
		cfg.Seed = ctx.GlobalInt64("seed")
	}

	setupLogging(ctx, cfg)
	return cfg, cfg.Validate()
}
