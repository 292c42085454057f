package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	initiation "github.com/Sanjib-ac/gsk-LIAL-Initiation-Device"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	var err error

	switch cmd {
	case "run":
		err = runCommand(os.Args[2:])
	case "validate":
		err = validateCommand(os.Args[2:])
	case "probe":
		err = probeCommand(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		printUsage()
		err = fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		log.Fatalf("initiation %s: %v", cmd, err)
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "./config.yaml", "Path to configuration file (created with defaults if absent)")
	dry := fs.Bool("dry", false, "Use in-memory GPIO instead of the Raspberry Pi pins")
	loop := fs.Bool("loop", false, "Keep handling presses instead of exiting after one")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := initiation.LoadConfig(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var opts []initiation.RuntimeOption
	if *dry {
		opts = append(opts, initiation.WithDigitalIO(initiation.NewMemoryGPIO()))
	}
	if *loop {
		opts = append(opts, initiation.WithContinuous())
	}

	rt, err := initiation.NewRuntime(cfg, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return rt.Run(ctx)
}

func validateCommand(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", "./config.yaml", "Path to configuration file to validate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := initiation.LoadConfig(*cfgPath); err != nil {
		return err
	}
	fmt.Printf("config %s looks good\n", *cfgPath)
	return nil
}

func probeCommand(args []string) error {
	fs := flag.NewFlagSet("probe", flag.ExitOnError)
	cfgPath := fs.String("config", "./config.yaml", "Path to configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := initiation.LoadConfig(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if initiation.CheckNetwork(cfg) {
		fmt.Printf("%s:%d reachable\n", cfg.Network.TestHost, cfg.Network.TestPort)
	} else {
		fmt.Printf("%s:%d unreachable\n", cfg.Network.TestHost, cfg.Network.TestPort)
	}
	return nil
}

func printUsage() {
	fmt.Printf(`Initiation device controller

Usage:
  initiation <command> [flags]

Commands:
  run        Start the controller (one press by default, -loop to keep going)
  validate   Load and validate a config file without starting
  probe      Run a single network reachability check

Examples:
  initiation run -config ./config.yaml
  initiation run -dry -loop
  initiation validate -config ./config.yaml
  initiation probe
`)
}
