// visionctl drives a machine-vision controller through a fixed command
// sequence: ensure run mode, optionally select a program and execution
// condition, then run trigger-and-fetch cycles and log the measurements.
//
// All protocol logic lives in the vision package; this is a thin caller
// that reacts to returned statuses.
package main

import (
	"flag"
	"os"

	"github.com/arloliu/go-vision/logger"
	"github.com/arloliu/go-vision/vision"
)

var log logger.Logger

func main() {
	configPath := flag.String("config", "visionctl.toml", "path to the TOML run configuration")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := logger.InfoLevel
	if *verbose {
		level = logger.DebugLevel
	}
	log = logger.NewSlog(level, false)

	cfg, err := loadRunConfig(*configPath)
	if err != nil {
		log.Error("failed to load configuration", "path", *configPath, "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		os.Exit(1)
	}
}

func run(cfg runConfig) error {
	connCfg, err := vision.NewConnectionConfig(cfg.Address, cfg.Port,
		vision.WithConnectTimeout(cfg.ConnectTimeout),
		vision.WithReadTimeout(cfg.ReadTimeout),
		vision.WithLogger(log),
	)
	if err != nil {
		log.Error("invalid controller endpoint", "address", cfg.Address, "port", cfg.Port, "error", err)

		return err
	}

	client, err := vision.NewClient(connCfg)
	if err != nil {
		return err
	}

	if err := client.Open(); err != nil {
		log.Error("failed to connect", "remoteAddr", connCfg.RemoteAddr(), "error", err)

		return err
	}
	defer client.Close()

	if err := ensureRunMode(client); err != nil {
		return err
	}

	if cfg.Program >= 0 {
		if err := selectProgram(client, cfg.SDCard, cfg.Program); err != nil {
			return err
		}
	}

	if cfg.ExecCondition >= 0 {
		if err := client.WriteExecCondition(cfg.ExecCondition); err != nil {
			log.Error("failed to select execution condition",
				"condition", cfg.ExecCondition,
				"status", vision.StatusOf(err).String(),
				"error", err)

			return err
		}
	}

	for i := 0; i < cfg.TriggerCount; i++ {
		values, err := client.Trigger()
		if err != nil {
			log.Error("trigger failed",
				"cycle", i+1,
				"status", vision.StatusOf(err).String(),
				"error", err)

			return err
		}

		log.Info("measurement results", "cycle", i+1, "values", values)
	}

	return nil
}

// ensureRunMode switches the controller to run mode if it is in setup mode.
func ensureRunMode(client *vision.Client) error {
	isRunMode, err := client.ReadRunSetupMode()
	if err != nil {
		log.Error("failed to read controller mode", "status", vision.StatusOf(err).String(), "error", err)

		return err
	}

	if isRunMode {
		return nil
	}

	log.Info("controller in setup mode, switching to run mode")

	if err := client.SetRunMode(); err != nil {
		log.Error("failed to switch to run mode", "status", vision.StatusOf(err).String(), "error", err)

		return err
	}

	return nil
}

// selectProgram changes the program and reads the selection back.
func selectProgram(client *vision.Client, sdcard int, program int) error {
	if err := client.ChangeProgram(sdcard, program); err != nil {
		log.Error("failed to change program",
			"sdcard", sdcard,
			"program", program,
			"status", vision.StatusOf(err).String(),
			"error", err)

		return err
	}

	curSDCard, curProgram, err := client.ReadProgram()
	if err != nil {
		log.Error("failed to read program back", "status", vision.StatusOf(err).String(), "error", err)

		return err
	}

	log.Info("program selected", "sdcard", curSDCard, "program", curProgram)

	return nil
}
