// Command pyramid-scene generates a stepped pyramid in a forest and animates its day/night cycle
// in the terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pyramid-scene/audio"
	"github.com/lixenwraith/pyramid-scene/config"
	"github.com/lixenwraith/pyramid-scene/engine"
	"github.com/lixenwraith/pyramid-scene/observer"
	"github.com/lixenwraith/pyramid-scene/parameter"
)

var (
	configFlag  = flag.String("config", "", "YAML generation config file")
	envFlag     = flag.String("env", ".env", "dotenv file with PYRAMID_* overrides (missing is fine)")
	debugFlag   = flag.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
	observeFlag = flag.String("observe", "", "serve /bootstrap and /ws on this loopback address, e.g. 127.0.0.1:8765")
	recordFlag  = flag.String("record", "", "record every frame to a zstd JSONL file")
	muteFlag    = flag.Bool("mute", false, "start with the chime muted")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPYRAMID-SCENE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	chime := audio.NewChime()
	if err := chime.Initialize(); err != nil {
		// Non-fatal, the scene runs silent
		log.Printf("Audio initialization failed: %v", err)
	} else {
		defer chime.Cleanup()
	}
	chime.SetMuted(*muteFlag)

	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider(), parameter.MaxFrameDelta)

	a, err := newApp(screen, cfg, clock, chime)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *observeFlag != "" || *recordFlag != "" {
		hub := observer.NewHub(parameter.ObserverFrameRate, parameter.ObserverFrameBurst)

		if *recordFlag != "" {
			if rec, err := observer.NewRecorder(*recordFlag); err != nil {
				log.Printf("record: %v", err)
			} else {
				defer func() {
					if err := rec.Close(); err != nil {
						log.Printf("record close: %v", err)
					}
				}()
				hub.SetSink(func(m observer.FrameMsg) {
					if err := rec.Record(m); err != nil {
						log.Printf("record: %v", err)
					}
				})
			}
		}

		server := observer.NewServer(hub, log.Default())
		a.attachObserver(hub, server)

		if *observeFlag != "" {
			ln, err := net.Listen("tcp", *observeFlag)
			if err != nil {
				// Non-fatal, the scene runs without observers
				log.Printf("observer listen %s: %v", *observeFlag, err)
			} else {
				go func() {
					if err := server.Serve(ctx, ln); err != nil {
						log.Printf("observer: %v", err)
					}
				}()
			}
		}
	}

	a.run(ctx)
}
