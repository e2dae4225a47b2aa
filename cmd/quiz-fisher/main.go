package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/quiz-fisher/config"
	"github.com/lixenwraith/quiz-fisher/constants"
	"github.com/lixenwraith/quiz-fisher/engine"
	"github.com/lixenwraith/quiz-fisher/launch"
	"github.com/lixenwraith/quiz-fisher/logging"
	"github.com/lixenwraith/quiz-fisher/render/window"
)

func main() {
	flags := launch.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if logFile := logging.Setup(constants.LogDir, flags.Debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := flags.Config()
	if err != nil {
		launch.Fail("Configuration error: %v", err)
	}
	if flags.WriteConfig {
		if err := launch.WriteConfig(os.Stdout, cfg); err != nil {
			launch.Fail("%v", err)
		}
		return
	}

	os.Exit(run(cfg))
}

// run owns every resource so deferred cleanup happens before os.Exit
func run(cfg *config.Config) int {
	env := launch.Prepare(cfg, window.Keyboard{})
	defer env.Close()

	if !env.Analog() {
		log.Printf("main: keyboard controls (%v)", env.Device.Err)
	}

	frontend := window.New(env.Game, env.Input, env.Analog(), cfg.Window.AssetDir)
	err := window.Run(frontend, cfg.Window.Scale)

	if sprites := frontend.Sprites(); sprites != nil && sprites.Fallback {
		log.Printf("main: missing sprites replaced by shapes: %v", sprites.Missing)
	}

	var fatal *engine.FatalLoopError
	switch {
	case errors.As(err, &fatal):
		fmt.Fprintf(os.Stderr, "\nQUIZ-FISHER CRASHED: %v\n", fatal)
		if len(fatal.Stack) > 0 {
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", fatal.Stack)
		}
		return 1
	case err != nil:
		fmt.Fprintf(os.Stderr, "Window error: %v\n", err)
		return 1
	}
	return 0
}
