package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/quiz-fisher/audio"
	"github.com/lixenwraith/quiz-fisher/constants"
	"github.com/lixenwraith/quiz-fisher/game"
	"github.com/lixenwraith/quiz-fisher/input"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Duration decodes TOML strings such as "500ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the full runtime configuration
type Config struct {
	Game     GameConfig     `toml:"game"`
	Serial   SerialConfig   `toml:"serial"`
	Audio    AudioConfig    `toml:"audio"`
	Terminal TerminalConfig `toml:"terminal"`
	Window   WindowConfig   `toml:"window"`
}

// GameConfig tunes the rules and the question source
type GameConfig struct {
	FishCount     int    `toml:"fish_count"`
	FishValue     int    `toml:"fish_value"`
	FeedbackTicks int    `toml:"feedback_ticks"`
	QuestionFile  string `toml:"question_file"`

	// Seed fixes the random source; zero seeds from the clock
	Seed int64 `toml:"seed"`
}

// SerialConfig describes the analog device link
type SerialConfig struct {
	Enabled     bool     `toml:"enabled"`
	Port        string   `toml:"port"`
	BaudRate    int      `toml:"baud_rate"`
	ReadTimeout Duration `toml:"read_timeout"`
	SettleDelay Duration `toml:"settle_delay"`
}

// AudioConfig holds sound settings; volumes are 0.0-1.0
type AudioConfig struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	Volumes      map[string]float64 `toml:"volumes"`
}

// TerminalConfig tunes the terminal frontend
type TerminalConfig struct {
	KeyHold Duration `toml:"key_hold"`
}

// WindowConfig tunes the desktop frontend
type WindowConfig struct {
	Scale    float64 `toml:"scale"`
	AssetDir string  `toml:"asset_dir"`
}

// Effect volume keys
const (
	VolumeCatch   = "catch"
	VolumeCorrect = "correct"
	VolumeWrong   = "wrong"
)

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			FishCount:     constants.FishCount,
			FishValue:     constants.FishValue,
			FeedbackTicks: constants.FeedbackTicks,
			QuestionFile:  constants.QuestionFile,
		},
		Serial: SerialConfig{
			Enabled:     true,
			Port:        constants.SerialPort,
			BaudRate:    constants.SerialBaudRate,
			ReadTimeout: Duration{constants.SerialReadTimeout},
			SettleDelay: Duration{constants.SerialSettleDelay},
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			Volumes: map[string]float64{
				VolumeCatch:   0.7,
				VolumeCorrect: 1.0,
				VolumeWrong:   0.8,
			},
		},
		Terminal: TerminalConfig{
			KeyHold: Duration{constants.KeyHoldWindow},
		},
		Window: WindowConfig{
			Scale:    constants.WindowScale,
			AssetDir: constants.AssetDir,
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error; the defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("config: %s not found, using defaults", path)
		case err != nil:
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		default:
			for _, key := range md.Undecoded() {
				log.Printf("config: unknown key %s in %s", key, path)
			}
		}
	}

	applyEnv(cfg, os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write encodes cfg as TOML
func Write(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate checks ranges and returns an error wrapping ErrInvalid
func (c *Config) Validate() error {
	switch {
	case c.Game.FishCount < 1:
		return fmt.Errorf("%w: game.fish_count must be at least 1, got %d", ErrInvalid, c.Game.FishCount)
	case c.Game.FishValue < 0:
		return fmt.Errorf("%w: game.fish_value must not be negative, got %d", ErrInvalid, c.Game.FishValue)
	case c.Game.FeedbackTicks < 0:
		return fmt.Errorf("%w: game.feedback_ticks must not be negative, got %d", ErrInvalid, c.Game.FeedbackTicks)
	case c.Serial.Enabled && c.Serial.BaudRate <= 0:
		return fmt.Errorf("%w: serial.baud_rate must be positive, got %d", ErrInvalid, c.Serial.BaudRate)
	case c.Serial.ReadTimeout.Duration < 0:
		return fmt.Errorf("%w: serial.read_timeout must not be negative", ErrInvalid)
	case c.Serial.SettleDelay.Duration < 0:
		return fmt.Errorf("%w: serial.settle_delay must not be negative", ErrInvalid)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: audio.master_volume must be within [0, 1], got %v", ErrInvalid, c.Audio.MasterVolume)
	case c.Terminal.KeyHold.Duration <= 0:
		return fmt.Errorf("%w: terminal.key_hold must be positive", ErrInvalid)
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window.scale must be positive, got %v", ErrInvalid, c.Window.Scale)
	}

	for name, v := range c.Audio.Volumes {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: audio.volumes.%s must be within [0, 1], got %v", ErrInvalid, name, v)
		}
	}
	return nil
}

// GameOptions returns the rule set for game.New
func (c *Config) GameOptions() game.Options {
	return game.Options{
		FishCount:     c.Game.FishCount,
		FishValue:     c.Game.FishValue,
		FeedbackTicks: c.Game.FeedbackTicks,
	}
}

// SerialOptions returns the device settings for input.OpenSerial
func (c *Config) SerialOptions() input.SerialConfig {
	return input.SerialConfig{
		Enabled:     c.Serial.Enabled,
		Port:        c.Serial.Port,
		BaudRate:    c.Serial.BaudRate,
		ReadTimeout: c.Serial.ReadTimeout.Duration,
		SettleDelay: c.Serial.SettleDelay.Duration,
	}
}

// Volume returns the effect volume, or 1.0 when unset
func (c *Config) Volume(name string) float64 {
	if v, ok := c.Audio.Volumes[name]; ok {
		return v
	}
	return 1.0
}

// AudioOptions returns the sound settings for audio.NewPlayer
func (c *Config) AudioOptions() audio.Config {
	return audio.Config{
		Enabled:      c.Audio.Enabled,
		SampleRate:   constants.SampleRate,
		MasterVolume: c.Audio.MasterVolume,
		Volumes: map[audio.Sound]float64{
			audio.SoundCatch:   c.Volume(VolumeCatch),
			audio.SoundCorrect: c.Volume(VolumeCorrect),
			audio.SoundWrong:   c.Volume(VolumeWrong),
		},
	}
}
