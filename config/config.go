package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/codebreaker/constants"
	"github.com/lixenwraith/codebreaker/core"
	"github.com/lixenwraith/codebreaker/engine"
)

// EnvPrefix namespaces every environment key
const EnvPrefix = "CODEBREAKER_"

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// ErrInvalidValue is wrapped by every rejected setting
var ErrInvalidValue = errors.New("invalid config value")

// Config is the resolved program configuration
// Sources in increasing precedence: defaults, .env file, environment, flags
type Config struct {
	Attempts int
	Spacing  int
	Debug    bool
	Seed     int64 // 0 seeds from the clock
	Mute     bool
	Headless bool
	Secret   string // Fixed secret for every round, empty for random
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Attempts: constants.DefaultAttempts,
		Spacing:  constants.DefaultSpacing,
	}
}

// Load resolves configuration for args (without the program name)
// lookup reads one environment variable; nil uses os.LookupEnv
func Load(args []string, lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var f Config
	flags := flag.NewFlagSet("codebreaker", flag.ContinueOnError)
	envFile := flags.String("env", DefaultEnvFile, "Path of the .env file")
	flags.IntVar(&f.Attempts, "attempts", 0, "Guesses per round")
	flags.IntVar(&f.Spacing, "spacing", 0, "Gap between board cells")
	flags.BoolVar(&f.Debug, "debug", false, "Reveal the secret and write logs/codebreaker.log")
	flags.Int64Var(&f.Seed, "seed", 0, "Random seed for secrets (0: time based)")
	flags.BoolVar(&f.Mute, "mute", false, "Start with sound muted")
	flags.BoolVar(&f.Headless, "headless", false, "Line mode on stdin/stdout instead of the terminal UI")
	flags.StringVar(&f.Secret, "secret", "", "Fixed secret such as rgby")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()

	vars, err := godotenv.Read(*envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read %s: %w", *envFile, err)
		}
		vars = map[string]string{}
	}
	for _, key := range envKeys {
		if v, ok := lookup(key); ok {
			vars[key] = v
		}
	}
	if err := cfg.applyEnv(vars); err != nil {
		return Config{}, err
	}

	flags.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "attempts":
			cfg.Attempts = f.Attempts
		case "spacing":
			cfg.Spacing = f.Spacing
		case "debug":
			cfg.Debug = f.Debug
		case "seed":
			cfg.Seed = f.Seed
		case "mute":
			cfg.Mute = f.Mute
		case "headless":
			cfg.Headless = f.Headless
		case "secret":
			cfg.Secret = f.Secret
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

const (
	keyAttempts = EnvPrefix + "ATTEMPTS"
	keySpacing  = EnvPrefix + "SPACING"
	keyDebug    = EnvPrefix + "DEBUG"
	keySeed     = EnvPrefix + "SEED"
	keyMute     = EnvPrefix + "MUTE"
	keyHeadless = EnvPrefix + "HEADLESS"
	keySecret   = EnvPrefix + "SECRET"
)

var envKeys = []string{keyAttempts, keySpacing, keyDebug, keySeed, keyMute, keyHeadless, keySecret}

func (c *Config) applyEnv(vars map[string]string) error {
	for key, raw := range vars {
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		val := strings.TrimSpace(raw)

		var err error
		switch key {
		case keyAttempts:
			c.Attempts, err = strconv.Atoi(val)
		case keySpacing:
			c.Spacing, err = strconv.Atoi(val)
		case keyDebug:
			c.Debug, err = strconv.ParseBool(val)
		case keySeed:
			c.Seed, err = strconv.ParseInt(val, 10, 64)
		case keyMute:
			c.Mute, err = strconv.ParseBool(val)
		case keyHeadless:
			c.Headless, err = strconv.ParseBool(val)
		case keySecret:
			c.Secret = val
		}
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, raw)
		}
	}
	return nil
}

// Validate checks ranges that do not depend on the screen
func (c Config) Validate() error {
	if c.Attempts < 1 || c.Attempts > constants.MaxAttempts {
		return fmt.Errorf("%w: attempts %d not in 1..%d", ErrInvalidValue, c.Attempts, constants.MaxAttempts)
	}
	if c.Spacing < 0 {
		return fmt.Errorf("%w: spacing %d", ErrInvalidValue, c.Spacing)
	}
	if c.Secret != "" {
		if _, err := core.ParseCode(c.Secret); err != nil {
			return fmt.Errorf("%w: secret: %v", ErrInvalidValue, err)
		}
	}
	return nil
}

// Engine builds the round configuration for a board of width x height cells
func (c Config) Engine(width, height int) engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Attempts = c.Attempts
	cfg.Spacing = c.Spacing
	cfg.Debug = c.Debug
	return cfg
}

// Generator returns the secret source: the fixed secret if set, else seeded random
func (c Config) Generator() core.SecretGenerator {
	if c.Secret != "" {
		code, err := core.ParseCode(c.Secret)
		if err != nil {
			panic("invariant violation: unvalidated secret reached Generator")
		}
		return core.FixedGenerator{Code: code}
	}
	return core.NewRandomGenerator(c.Seed)
}
