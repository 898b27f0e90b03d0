package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// runConfig is the resolved configuration for one visionctl run.
type runConfig struct {
	Address        string
	Port           int
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration

	// SDCard and Program select the inspection program before triggering.
	// Program < 0 leaves the controller's current selection untouched.
	SDCard  int
	Program int

	// ExecCondition selects the execution-condition set.
	// A negative value leaves the controller's current selection untouched.
	ExecCondition int

	// TriggerCount is the number of trigger-and-fetch cycles to run.
	TriggerCount int
}

func defaultRunConfig() runConfig {
	return runConfig{
		Address:        "192.168.0.10",
		Port:           8500,
		ConnectTimeout: 3 * time.Second,
		ReadTimeout:    5 * time.Second,
		SDCard:         1,
		Program:        -1,
		ExecCondition:  -1,
		TriggerCount:   1,
	}
}

type fileConfig struct {
	Address        string `toml:"address"`
	Port           int    `toml:"port"`
	ConnectTimeout string `toml:"connect_timeout"`
	ReadTimeout    string `toml:"read_timeout"`
	SDCard         int    `toml:"sdcard"`
	Program        int    `toml:"program"`
	ExecCondition  int    `toml:"exec_condition"`
	TriggerCount   int    `toml:"trigger_count"`
}

func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runConfig{}, fmt.Errorf("load visionctl config: %w", err)
	}

	if meta.IsDefined("address") {
		addr := strings.TrimSpace(raw.Address)
		if addr != "" {
			cfg.Address = addr
		}
	}

	if meta.IsDefined("port") {
		cfg.Port = raw.Port
	}

	if meta.IsDefined("connect_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ConnectTimeout))
		if err != nil {
			return runConfig{}, fmt.Errorf("parse connect_timeout: %w", err)
		}
		cfg.ConnectTimeout = d
	}

	if meta.IsDefined("read_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ReadTimeout))
		if err != nil {
			return runConfig{}, fmt.Errorf("parse read_timeout: %w", err)
		}
		cfg.ReadTimeout = d
	}

	if meta.IsDefined("sdcard") {
		cfg.SDCard = raw.SDCard
	}

	if meta.IsDefined("program") {
		cfg.Program = raw.Program
	}

	if meta.IsDefined("exec_condition") {
		cfg.ExecCondition = raw.ExecCondition
	}

	if meta.IsDefined("trigger_count") {
		if raw.TriggerCount < 0 {
			return runConfig{}, fmt.Errorf("trigger_count must be non-negative, got %d", raw.TriggerCount)
		}
		cfg.TriggerCount = raw.TriggerCount
	}

	return cfg, nil
}
