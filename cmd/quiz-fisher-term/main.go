package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/quiz-fisher/config"
	"github.com/lixenwraith/quiz-fisher/constants"
	"github.com/lixenwraith/quiz-fisher/engine"
	"github.com/lixenwraith/quiz-fisher/launch"
	"github.com/lixenwraith/quiz-fisher/logging"
	"github.com/lixenwraith/quiz-fisher/render/terminal"
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

// run owns the screen and devices so deferred cleanup happens before os.Exit
func run(cfg *config.Config) (code int) {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: restore the terminal before printing anything
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nQUIZ-FISHER CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	clock := engine.NewMonotonicTimeProvider()
	keys := terminal.NewHeldKeys(clock, cfg.Terminal.KeyHold.Duration)

	env := launch.Prepare(cfg, keys)
	defer env.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := terminal.NewApp(screen, env.Game, keys, env.Input, env.Analog())
	go app.Pump(ctx)

	runner := engine.NewRunner(constants.FrameUpdateInterval, clock)
	reason, err := runner.Run(ctx, app.Step)
	screen.Fini()

	log.Printf("main: exit %v after %d frames", reason, runner.Frames())
	if reason == engine.ExitFatal {
		fmt.Fprintf(os.Stderr, "\nQUIZ-FISHER CRASHED: %v\n", err)
		var fatal *engine.FatalLoopError
		if errors.As(err, &fatal) && len(fatal.Stack) > 0 {
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", fatal.Stack)
		}
		return 1
	}
	return 0
}
