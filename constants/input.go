package constants

import "time"

// Analog Device
const (
	// SerialPort is the default device path; override per machine in the config file
	SerialPort = "/dev/ttyUSB0"

	SerialBaudRate = 9600

	// SerialReadTimeout keeps the per-tick poll from blocking the frame
	SerialReadTimeout = time.Millisecond

	// SerialSettleDelay gives the board time to reset after the port opens
	SerialSettleDelay = 500 * time.Millisecond
)

// Files
const (
	QuestionFile = "questions.txt"
	AssetDir     = "assets"
	ConfigFile   = "quiz-fisher.toml"
)
