package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const configFileName = "pancake.toml"

// projectConfig mirrors pancake.toml. Every key is optional.
type projectConfig struct {
	Output outputConfig `toml:"output"`
	Parse  parseConfig  `toml:"parse"`
	Cache  cacheConfig  `toml:"cache"`
}

type outputConfig struct {
	Color  string `toml:"color"`
	Format string `toml:"format"`
}

type parseConfig struct {
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Jobs           int      `toml:"jobs"`
	Extensions     []string `toml:"extensions"`
}

type cacheConfig struct {
	Enabled bool `toml:"enabled"`
}

// loadedConfig keeps the decode metadata: only keys present in the file
// override flag defaults.
type loadedConfig struct {
	Path   string
	Config projectConfig
	meta   toml.MetaData
}

func (c *loadedConfig) defined(key ...string) bool {
	return c != nil && c.meta.IsDefined(key...)
}

// extensions returns the configured source suffixes, or nil for the driver defaults.
func (c *loadedConfig) extensions() []string {
	if !c.defined("parse", "extensions") {
		return nil
	}
	return c.Config.Parse.Extensions
}

var formatChoices = map[string][]string{
	"tokenize": {"pretty", "json"},
	"parse":    {"pretty", "json", "tree"},
}

func findProjectConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectConfig(path string) (*loadedConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("output", "color") {
		if _, err := readColorMode(cfg.Output.Color); err != nil {
			return nil, fmt.Errorf("%s: [output].color: %w", path, err)
		}
	}
	if meta.IsDefined("output", "format") && !slices.Contains(formatChoices["parse"], cfg.Output.Format) {
		return nil, fmt.Errorf("%s: [output].format must be pretty, json or tree, got %q", path, cfg.Output.Format)
	}
	if cfg.Parse.MaxDiagnostics < 0 {
		return nil, fmt.Errorf("%s: [parse].max_diagnostics must not be negative", path)
	}
	if cfg.Parse.Jobs < 0 {
		return nil, fmt.Errorf("%s: [parse].jobs must not be negative", path)
	}
	for _, ext := range cfg.Parse.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return nil, fmt.Errorf("%s: [parse].extensions: %q must look like .js", path, ext)
		}
	}
	return &loadedConfig{Path: path, Config: cfg, meta: meta}, nil
}

// resolveProjectConfig loads the file named by --config, or the nearest
// pancake.toml above the working directory. No file is not an error.
func resolveProjectConfig(cmd *cobra.Command) (*loadedConfig, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if explicit != "" {
		return loadProjectConfig(explicit)
	}
	path, ok, err := findProjectConfig(".")
	if err != nil || !ok {
		return nil, err
	}
	return loadProjectConfig(path)
}

// applyProjectConfig переносит значения из файла во флаги, не заданные явно.
func applyProjectConfig(cmd *cobra.Command, cfg *loadedConfig) error {
	if cfg == nil {
		return nil
	}
	c := cfg.Config
	if cfg.defined("output", "color") {
		if err := setFlagDefault(cmd, "color", c.Output.Color); err != nil {
			return err
		}
	}
	if cfg.defined("output", "format") && slices.Contains(formatChoices[cmd.Name()], c.Output.Format) {
		if err := setFlagDefault(cmd, "format", c.Output.Format); err != nil {
			return err
		}
	}
	if cfg.defined("parse", "max_diagnostics") {
		if err := setFlagDefault(cmd, "max-diagnostics", strconv.Itoa(c.Parse.MaxDiagnostics)); err != nil {
			return err
		}
	}
	if cfg.defined("parse", "jobs") {
		if err := setFlagDefault(cmd, "jobs", strconv.Itoa(c.Parse.Jobs)); err != nil {
			return err
		}
	}
	if cfg.defined("cache", "enabled") {
		if err := setFlagDefault(cmd, "cache", strconv.FormatBool(c.Cache.Enabled)); err != nil {
			return err
		}
	}
	return nil
}

// setFlagDefault sets a flag the command has but the user did not pass.
func setFlagDefault(cmd *cobra.Command, name, value string) error {
	flag := cmd.Flags().Lookup(name)
	if flag == nil || flag.Changed {
		return nil
	}
	if err := flag.Value.Set(value); err != nil {
		return fmt.Errorf("config value for --%s: %w", name, err)
	}
	return nil
}
