package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rockbmb/wasm-game-of-life/internal/app"
	"github.com/rockbmb/wasm-game-of-life/internal/term"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := app.NewConfig()
	configPath := flag.String("config", "", "optional JSON config file")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	uni, err := cfg.NewUniverse()
	if err != nil {
		log.Fatalf("construct universe: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := term.NewRenderer(os.Stdout)
	stats := term.NewStats()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tps := cfg.TPS
		if tps <= 0 {
			tps = 10
		}
		ticker := time.NewTicker(time.Second / time.Duration(tps))
		defer ticker.Stop()

		generation := 0
		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				renderer.Clear()
				if err := renderer.Frame(uni.View(), stats.Status(uni.Population())); err != nil {
					return err
				}

				uni.Tick()
				generation++
				stats.Update(generation, uni.Population(), time.Since(last))
				last = time.Now()

				if cfg.MaxGenerations > 0 && generation >= cfg.MaxGenerations {
					return nil
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	fmt.Println(stats.Summary())
}
