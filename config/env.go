package config

import (
	"encoding/json"
	"strconv"
	"time"
)

// Environment variable names
const (
	EnvQuestionFile = "QUIZ_FISHER_QUESTIONS"
	EnvSerialPort   = "QUIZ_FISHER_SERIAL_PORT"
	EnvSerialBaud   = "QUIZ_FISHER_SERIAL_BAUD"
	EnvSerialOff    = "QUIZ_FISHER_SERIAL_DISABLED"
	EnvAudioEnabled = "QUIZ_FISHER_AUDIO_ENABLED"
	EnvMasterVolume = "QUIZ_FISHER_MASTER_VOLUME"
	EnvSFXVolumes   = "QUIZ_FISHER_SFX_VOLUMES"
	EnvKeyHold      = "QUIZ_FISHER_KEY_HOLD"
	EnvSeed         = "QUIZ_FISHER_SEED"
)

// applyEnv overrides cfg from the environment; unparsable values are ignored
func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(EnvQuestionFile); v != "" {
		cfg.Game.QuestionFile = v
	}

	if v := getenv(EnvSerialPort); v != "" {
		cfg.Serial.Port = v
	}

	if v := getenv(EnvSerialBaud); v != "" {
		if baud, err := strconv.Atoi(v); err == nil && baud > 0 {
			cfg.Serial.BaudRate = baud
		}
	}

	if v := getenv(EnvSerialOff); v != "" {
		if off, err := strconv.ParseBool(v); err == nil {
			cfg.Serial.Enabled = !off
		}
	}

	if v := getenv(EnvAudioEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = enabled
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if v := getenv(EnvMasterVolume); v != "" {
		if vol, err := strconv.Atoi(v); err == nil {
			cfg.Audio.MasterVolume = clampUnit(float64(vol) / 100.0)
		}
	}

	// Effect volumes as JSON, e.g. {"catch":0.5,"wrong":0.2}
	if v := getenv(EnvSFXVolumes); v != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err == nil {
			if cfg.Audio.Volumes == nil {
				cfg.Audio.Volumes = make(map[string]float64)
			}
			for _, name := range []string{VolumeCatch, VolumeCorrect, VolumeWrong} {
				if vol, ok := volumes[name]; ok {
					cfg.Audio.Volumes[name] = clampUnit(vol)
				}
			}
		}
	}

	if v := getenv(EnvKeyHold); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Terminal.KeyHold = Duration{d}
		}
	}

	if v := getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Game.Seed = seed
		}
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
