// Package config loads the CLI settings file.
//
// The file is TOML with three tables:
//
//	[playback]
//	speed = 2.0          # multiplier, > 0
//
//	[log]
//	level = "info"       # debug | info | warn | error
//
//	[palette]            # lipgloss colors per step event
//	found = "35"
//
// Missing keys keep their defaults. Unknown keys are rejected so typos do not
// pass silently.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/stepviz/trace"
)

var (
	// ErrUnknownKey indicates a key the Config does not define.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid indicates a value outside its allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

var validate = validator.New()

// Config is the decoded settings file.
type Config struct {
	Playback Playback `toml:"playback"`
	Log      Log      `toml:"log"`
	Palette  Palette  `toml:"palette"`
}

// Playback holds pacing settings.
type Playback struct {
	Speed float64 `toml:"speed" validate:"gt=0,lte=1000"`
}

// Log holds logger settings.
type Log struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

// Palette maps step events to lipgloss color strings (ANSI index or hex).
type Palette struct {
	Init      string `toml:"init" validate:"required"`
	Visit     string `toml:"visit" validate:"required"`
	Compare   string `toml:"compare" validate:"required"`
	Update    string `toml:"update" validate:"required"`
	Discard   string `toml:"discard" validate:"required"`
	Backtrack string `toml:"backtrack" validate:"required"`
	Found     string `toml:"found" validate:"required"`
	Done      string `toml:"done" validate:"required"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Playback: Playback{Speed: 1},
		Log:      Log{Level: "info"},
		Palette: Palette{
			Init:      "245",
			Visit:     "75",
			Compare:   "220",
			Update:    "36",
			Discard:   "240",
			Backtrack: "167",
			Found:     "35",
			Done:      "255",
		},
	}
}

// Color returns the palette entry for ev, or "" for an unknown event.
func (p Palette) Color(ev trace.Event) string {
	switch ev {
	case trace.EventInit:
		return p.Init
	case trace.EventVisit:
		return p.Visit
	case trace.EventCompare:
		return p.Compare
	case trace.EventUpdate:
		return p.Update
	case trace.EventDiscard:
		return p.Discard
	case trace.EventBacktrack:
		return p.Backtrack
	case trace.EventFound:
		return p.Found
	case trace.EventDone:
		return p.Done
	default:
		return ""
	}
}

// LogLevel returns the configured level for charmbracelet/log.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}

	return level
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return finish(cfg, md)
}

// Parse decodes data over the defaults.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return finish(cfg, md)
}

func finish(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return Config{}, fmt.Errorf("%w: %s fails %s=%s (got %v)", ErrInvalid, e.Namespace(), e.Tag(), e.Param(), e.Value())
		}

		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return cfg, nil
}
