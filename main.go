/*
This is an example of application that will use the
asset caches to keep a directory of game assets warm
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/hoard/engine/config"
	"github.com/spaghettifunk/hoard/engine/core"
	"github.com/spaghettifunk/hoard/testbed"
)

func main() {
	cfgPath := "hoard.toml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		core.LogWarn("no usable config at '%s' (%v), using defaults", cfgPath, err)
		cfg = config.Default()
	}

	demo, err := testbed.New(cfg)
	if err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		<-sigCh
		demo.Shutdown()
	}()

	if err := demo.Run(); err != nil {
		panic(err)
	}
}
