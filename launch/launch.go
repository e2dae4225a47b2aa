// Package launch holds the startup sequence shared by the window and
// terminal binaries: flags, configuration, question bank, devices, audio.
package launch

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/lixenwraith/quiz-fisher/audio"
	"github.com/lixenwraith/quiz-fisher/config"
	"github.com/lixenwraith/quiz-fisher/constants"
	"github.com/lixenwraith/quiz-fisher/game"
	"github.com/lixenwraith/quiz-fisher/input"
	"github.com/lixenwraith/quiz-fisher/question"
)

// Flags are the command-line switches common to both binaries
type Flags struct {
	ConfigPath  string
	Questions   string
	Port        string
	NoSerial    bool
	NoAudio     bool
	Seed        int64
	Debug       bool
	WriteConfig bool
}

// RegisterFlags binds the common switches to fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", constants.ConfigFile, "TOML configuration file")
	fs.StringVar(&f.Questions, "questions", "", "question file (overrides config)")
	fs.StringVar(&f.Port, "port", "", "serial port of the analog controller (overrides config)")
	fs.BoolVar(&f.NoSerial, "no-serial", false, "skip the analog controller")
	fs.BoolVar(&f.NoAudio, "no-audio", false, "disable sound effects")
	fs.Int64Var(&f.Seed, "seed", 0, "random seed, 0 seeds from the clock")
	fs.BoolVar(&f.Debug, "debug", false, "write logs to the logs directory")
	fs.BoolVar(&f.WriteConfig, "write-config", false, "print the effective configuration as TOML and exit")
	return f
}

// Config loads the configuration file and applies flag overrides last
func (f *Flags) Config() (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}

	if f.Questions != "" {
		cfg.Game.QuestionFile = f.Questions
	}
	if f.Port != "" {
		cfg.Serial.Port = f.Port
	}
	if f.NoSerial {
		cfg.Serial.Enabled = false
	}
	if f.NoAudio {
		cfg.Audio.Enabled = false
	}
	if f.Seed != 0 {
		cfg.Game.Seed = f.Seed
	}
	return cfg, cfg.Validate()
}

// Env is a fully wired game ready for a frontend
type Env struct {
	Config *config.Config
	Game   *game.Game
	Input  *input.Mux
	Player *audio.Player
	Report question.Report
	Device input.OpenResult
}

// Prepare builds the game from cfg. keys samples the frontend's digital
// controls. Device and audio failures degrade to keyboard and silence;
// the caller must Close the returned Env on every exit path.
func Prepare(cfg *config.Config, keys input.KeySampler) *Env {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("launch: seed %d", seed)

	var provider question.Provider
	if cfg.Game.QuestionFile != "" {
		provider = question.FileProvider(cfg.Game.QuestionFile)
	}
	bank, report := question.Load(provider, rng)
	log.Printf("launch: %d question(s) from %s", bank.Len(), bank.Origin())

	device := input.OpenSerial(cfg.SerialOptions())
	mux := input.NewMux(input.NewDigital(keys), device.AsSource())

	g := game.New(bank, rng, cfg.GameOptions())

	player, err := audio.NewPlayer(cfg.AudioOptions())
	if err != nil {
		log.Printf("launch: audio unavailable, continuing without sound: %v", err)
	}
	g.AddListener(player)

	return &Env{
		Config: cfg,
		Game:   g,
		Input:  mux,
		Player: player,
		Report: report,
		Device: device,
	}
}

// Analog reports whether the analog controller is driving the hook
func (e *Env) Analog() bool {
	return e.Device.Loaded()
}

// Close releases the device and the speaker
func (e *Env) Close() {
	if err := e.Input.Close(); err != nil {
		log.Printf("launch: closing input: %v", err)
	}
	e.Player.Close()
}

// WriteConfig prints cfg for -write-config
func WriteConfig(w io.Writer, cfg *config.Config) error {
	if err := config.Write(w, cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Fail prints a startup error and exits
func Fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
