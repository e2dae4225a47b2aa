package input

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"go.bug.st/serial"
)

// ErrDeviceUnavailable is returned when the analog device cannot be used this session
var ErrDeviceUnavailable = errors.New("analog device unavailable")

// Status tags the outcome of the one-time device probe
type Status uint8

const (
	StatusFallback Status = iota // Digital controls only
	StatusLoaded                 // Analog device connected
)

// SerialConfig describes the analog device link
type SerialConfig struct {
	Enabled     bool
	Port        string
	BaudRate    int
	ReadTimeout time.Duration
	SettleDelay time.Duration // Boards reset on open and need a moment before streaming
}

// OpenResult is the tagged result of OpenSerial, decided once at startup
type OpenResult struct {
	Status Status
	Source *Analog
	Port   string
	Err    error
}

// Loaded reports whether the analog device is active
func (r OpenResult) Loaded() bool {
	return r.Status == StatusLoaded && r.Source != nil
}

// AsSource returns the analog provider, or nil when the device is not loaded
func (r OpenResult) AsSource() Source {
	if !r.Loaded() {
		return nil
	}
	return r.Source
}

// devicePort is the subset of serial.Port the analog provider needs
type devicePort interface {
	io.ReadCloser
	SetReadTimeout(t time.Duration) error
}

// openDevice is replaced in tests
var openDevice = func(name string, baud int) (devicePort, error) {
	return serial.Open(name, &serial.Mode{BaudRate: baud})
}

// sleep is replaced in tests
var sleep = time.Sleep

// OpenSerial probes the analog device once. Any failure yields StatusFallback;
// the caller keeps digital input and never retries during the session.
func OpenSerial(cfg SerialConfig) OpenResult {
	result := OpenResult{Status: StatusFallback, Port: cfg.Port}

	if !cfg.Enabled || cfg.Port == "" {
		result.Err = fmt.Errorf("%w: disabled", ErrDeviceUnavailable)
		return result
	}

	port, err := openDevice(cfg.Port, cfg.BaudRate)
	if err != nil {
		result.Err = fmt.Errorf("%w: open %s: %v", ErrDeviceUnavailable, cfg.Port, err)
		log.Printf("input: %v, using keyboard controls", result.Err)
		return result
	}

	if err := port.SetReadTimeout(cfg.ReadTimeout); err != nil {
		port.Close()
		result.Err = fmt.Errorf("%w: set read timeout on %s: %v", ErrDeviceUnavailable, cfg.Port, err)
		log.Printf("input: %v, using keyboard controls", result.Err)
		return result
	}

	if cfg.SettleDelay > 0 {
		sleep(cfg.SettleDelay)
	}

	log.Printf("input: analog device connected on %s at %d baud", cfg.Port, cfg.BaudRate)
	result.Status = StatusLoaded
	result.Source = NewAnalog(port)
	return result
}
