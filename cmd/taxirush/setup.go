package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/taxi-rush/internal/audio"
	"github.com/vovakirdan/taxi-rush/internal/config"
	"github.com/vovakirdan/taxi-rush/internal/core"
	"github.com/vovakirdan/taxi-rush/internal/games/taxi"
	"github.com/vovakirdan/taxi-rush/internal/leaderboard"
	"github.com/vovakirdan/taxi-rush/internal/logging"
	"github.com/vovakirdan/taxi-rush/internal/platform/tui"
	"github.com/vovakirdan/taxi-rush/internal/storage"
)

// soundVolume is the playback gain for local sound cues.
const soundVolume = 0.6

// app holds everything a command needs. Call close when done.
type app struct {
	runtime core.RuntimeConfig
	svc     tui.Services
	closers []io.Closer
}

type setupMode int

const (
	modeTUI     setupMode = iota // Full-screen: log to file, sound on
	modeConsole                  // Plain output: log to stderr, no sound
)

// setup loads rules and opens the leaderboard, history and sound device.
// A history database that cannot be opened only disables history.
func setup(mode setupMode) (*app, error) {
	a := &app{}

	opts := logging.Options{Level: flagLogLevel}
	if mode == modeTUI {
		logger, f, err := logging.NewFile(logging.DefaultFile, opts)
		if err != nil {
			return nil, err
		}
		a.svc.Logger = logger
		a.closers = append(a.closers, f)
	} else {
		logger, err := logging.New(os.Stderr, opts)
		if err != nil {
			return nil, err
		}
		a.svc.Logger = logger
	}

	rules, err := loadRules()
	if err != nil {
		a.close()
		return nil, err
	}
	taxi.Configure(rules)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	a.runtime = core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickPeriod: rules.TickPeriod(),
		Seed:       flagSeed,
		PlayerName: flagPlayerName,
	}

	a.svc.Board = leaderboard.NewFile(flagBoardPath)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		a.svc.Logger.Warn("run history disabled", "err", err)
	} else {
		a.svc.Store = store
		a.closers = append(a.closers, store)
	}

	a.svc.Audio = audio.Nop{}
	if mode == modeTUI && !flagMute {
		player, err := audio.NewOto(soundVolume)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%w (use --mute to play without sound)", err)
		}
		a.svc.Audio = player
	}

	a.svc.Logger.Debug("setup complete",
		"tick", a.runtime.TickPeriod,
		"npcs", rules.NPC.Count,
		"duration", rules.Duration(),
		"history", a.svc.Store != nil,
	)
	return a, nil
}

// loadRules reads the rules file and applies --difficulty and --tick.
func loadRules() (config.TaxiConfig, error) {
	rules, err := config.LoadTaxi(flagConfig)
	if err != nil {
		return config.TaxiConfig{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TaxiConfig{}, err
	}
	config.ApplyPreset(&rules, preset)
	if flagTick > 0 {
		rules.Session.TickMS = flagTick
	}
	if err := rules.Validate(); err != nil {
		return config.TaxiConfig{}, err
	}
	return rules, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i].Close()
	}
}
