package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"passwidget/internal/utils"

	"github.com/joho/godotenv"
)

const homeEnv = "PASSWIDGET_HOME"

// AppConfig holds the generator preferences restored on start-up. Generated
// passwords are never written here. DataDir is resolved from the environment
// on every load and is not stored.
type AppConfig struct {
	DataDir        string `json:"-"`
	Length         int    `json:"length"`
	IncludeDigits  bool   `json:"include_digits"`
	IncludeSymbols bool   `json:"include_symbols"`
}

func Default() AppConfig {
	g := utils.DefaultGeneratorConfig()
	return AppConfig{
		DataDir:        "~/.passwidget",
		Length:         g.Length,
		IncludeDigits:  g.IncludeDigits,
		IncludeSymbols: g.IncludeSymbols,
	}
}

// Generator returns the preferences as a generator config with the length
// clamped to the slider range.
func (c AppConfig) Generator() utils.GeneratorConfig {
	return utils.GeneratorConfig{
		Length:         utils.ClampLength(c.Length),
		IncludeDigits:  c.IncludeDigits,
		IncludeSymbols: c.IncludeSymbols,
	}
}

// WithGenerator copies g's settings into c.
func (c AppConfig) WithGenerator(g utils.GeneratorConfig) AppConfig {
	c.Length = g.Length
	c.IncludeDigits = g.IncludeDigits
	c.IncludeSymbols = g.IncludeSymbols
	return c
}

func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

var loadEnv = sync.OnceFunc(func() { _ = godotenv.Load() })

// Home is the directory holding config.json and the log file. A .env file in
// the working directory may set PASSWIDGET_HOME; it is read once per process.
func Home() string {
	loadEnv()
	if dir := os.Getenv(homeEnv); dir != "" {
		return ExpandPath(dir)
	}
	return ExpandPath(Default().DataDir)
}

func LogPath() string {
	return filepath.Join(Home(), "passwidget.log")
}

func configPath() string {
	return filepath.Join(Home(), "config.json")
}

// Load reads the saved preferences without touching the file. Missing or
// invalid files yield the defaults.
func Load() AppConfig {
	cfg := Default()
	cfg.DataDir = Home()

	data, err := os.ReadFile(configPath())
	if err == nil {
		var loaded AppConfig
		if json.Unmarshal(data, &loaded) == nil {
			if loaded.Length != 0 {
				cfg.Length = utils.ClampLength(loaded.Length)
			}
			cfg.IncludeDigits = loaded.IncludeDigits
			cfg.IncludeSymbols = loaded.IncludeSymbols
		}
	}
	return cfg
}

// LoadOrInit is Load followed by writing the result back, so a first run
// leaves a config file with the defaults.
func LoadOrInit() AppConfig {
	cfg := Load()
	_ = Save(cfg)
	return cfg
}

func Save(cfg AppConfig) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
