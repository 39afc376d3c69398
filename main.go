/*
Benchmark driver for the gamemath library. It times the standard suite
and prints a report; with -watch it re-runs whenever the configuration
file changes.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/gamemath/engine"
	"github.com/spaghettifunk/gamemath/engine/assets"
	"github.com/spaghettifunk/gamemath/engine/core"
	"github.com/spaghettifunk/gamemath/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file")
	watch := flag.Bool("watch", false, "re-run the suite whenever the configuration file changes")
	seed := flag.Uint64("seed", 1, "seed for the generated inputs")
	flag.Parse()

	if *watch && *configPath == "" {
		core.LogFatal("-watch needs -config")
	}

	config, err := loadConfig(*configPath)
	if err != nil {
		core.LogFatal("%s", err.Error())
	}

	suite, err := testbed.NewSuite(*seed)
	if err != nil {
		core.LogFatal("%s", err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	// start shutdown goroutine
	go func() {
		sig := <-sigCh
		core.LogInfo("received %s, stopping", sig)
		cancel()
	}()

	if err := run(ctx, suite, config); err != nil && !errors.Is(err, context.Canceled) {
		core.LogFatal("%s", err.Error())
	}
	if !*watch {
		return
	}

	watcher, err := assets.NewConfigWatcher(*configPath)
	if err != nil {
		core.LogFatal("%s", err.Error())
	}
	defer watcher.Close()

	core.LogInfo("watching %s", watcher.Path())
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-watcher.Changes():
			if !ok {
				return
			}
			next, err := loadConfig(*configPath)
			if err != nil {
				core.LogError("keeping previous configuration: %s", err)
				continue
			}
			config = next
			if err := run(ctx, suite, config); err != nil && !errors.Is(err, context.Canceled) {
				core.LogError("%s", err.Error())
			}
		}
	}
}

func loadConfig(path string) (*engine.ApplicationConfig, error) {
	if path == "" {
		return engine.DefaultApplicationConfig(), nil
	}
	return engine.LoadApplicationConfig(path)
}

func run(ctx context.Context, suite *engine.Suite, config *engine.ApplicationConfig) error {
	e, err := engine.New(suite, config)
	if err != nil {
		return err
	}
	if err := e.Initialize(); err != nil {
		return err
	}
	defer e.Shutdown()

	report, err := e.Run(ctx)
	if report != nil {
		fmt.Println(report)
	}
	return err
}
