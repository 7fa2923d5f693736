package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/hitgrid/assets"
	"github.com/automoto/hitgrid/config"
	"github.com/automoto/hitgrid/headless/core"
)

func main() {
	levelIndex := flag.Int("level", 0, "Level index (wraps around)")
	ticks := flag.Int("ticks", 600, "Number of ticks to simulate")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = config tick rate)")
	configPath := flag.String("config", "", "Config override file (yaml, json or toml)")
	assetsDir := flag.String("assets", "", "Directory holding levels/ (empty = embedded levels)")
	script := flag.String("script", "", `Input script, e.g. "right:30 right+jump:1 idle:10"`)
	realtime := flag.Bool("realtime", false, "Step at the tick rate instead of as fast as possible")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *tickRate > 0 {
		config.C.TickRate = *tickRate
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	steps, err := core.ParseScript(*script)
	if err != nil {
		log.Fatalf("Failed to parse script: %v", err)
	}

	var levels fs.FS = assets.FS
	if *assetsDir != "" {
		levels = os.DirFS(*assetsDir)
	}

	runner, err := core.NewRunner(levels, config.C.LevelDir, *levelIndex, steps)
	if err != nil {
		log.Fatalf("Failed to build level: %v", err)
	}

	log.Printf("[replay] level %s, %d ticks, script covers %d", runner.Level(), *ticks, steps.Len())

	if *realtime {
		loop := core.NewLoop(runner, config.C.TickRate, *ticks)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("[replay] interrupted")
			loop.Stop()
		}()

		loop.Run()
	} else {
		runner.Run(*ticks)
	}

	player := runner.Player()
	log.Printf("[replay] player at %v moving %v", player.Position(), player.Velocity())
	fmt.Printf("%s %d %016x\n", runner.Level(), runner.Ticks(), runner.Digest())
}
