package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/quiz-fisher/constants"
)

// Setup routes the standard logger. Without debug all output is discarded;
// with debug it goes to a file in dir, rotated once it exceeds MaxLogSize.
// Logs never go to stdout or stderr since a frontend owns the screen.
func Setup(dir string, debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, constants.LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > constants.MaxLogSize {
		base := strings.TrimSuffix(constants.LogFileName, filepath.Ext(constants.LogFileName))
		rotated := filepath.Join(dir, fmt.Sprintf("%s-%s.log", base, time.Now().Format("20060102-150405")))
		os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("logging: started pid %d", os.Getpid())
	return f
}
