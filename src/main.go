package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/eiannone/keyboard"

	"elevbank/src/bank"
	"elevbank/src/config"
	"elevbank/src/dispatcher"
	"elevbank/src/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	envPath := flag.String("env", "", "Path to a .env file with ELEVBANK_* overrides")
	logLevel := flag.String("log", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *envPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	logCloser, err := utils.InitLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logCloser.Close()

	system, err := bank.New(cfg)
	if err != nil {
		slog.Error("Could not create elevator bank", "err", err)
		os.Exit(1)
	}
	system.Start()
	defer system.Stop()

	fmt.Printf("Keys: type a floor (1-%d) and Enter to call a car, Backspace to clear, +/- move yourself, s snapshot, q quit\n", cfg.MaxFloor)

	keysCh := make(chan keyPress)
	quitCh := make(chan struct{})
	go readKeys(keysCh, quitCh)

	entry := &floorEntry{maxFloor: cfg.MaxFloor}
	deduper := utils.NewEventDeduper(cfg.EventBuffer)
	events := system.Events()
	for {
		select {
		case press := <-keysCh:
			handleKey(system, entry, press)
		case event, ok := <-events:
			if !ok {
				return
			}
			if !deduper.Fresh(event) {
				slog.Debug("Duplicate event skipped", "id", event.ID, "kind", event.Kind)
				continue
			}
			fmt.Printf("\n%s\n", utils.FormatEvent(event))
			if cars, err := system.Snapshot(); err == nil {
				utils.PrintStatus(os.Stdout, system.CallerFloor(), cars)
			}
		case <-quitCh:
			fmt.Println()
			return
		}
	}
}

func loadConfig(configPath, envPath string) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}
	env, err := config.ReadEnvFile(envPath)
	if err != nil {
		return cfg, err
	}
	return config.ApplyEnv(cfg, env)
}

type keyPress struct {
	char rune
	key  keyboard.Key
}

// readKeys forwards key presses until q, Esc or Ctrl-C.
func readKeys(keysCh chan<- keyPress, quitCh chan<- struct{}) {
	defer close(quitCh)
	for {
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			slog.Error("Keyboard input failed", "err", err)
			return
		}
		if key == keyboard.KeyCtrlC || key == keyboard.KeyEsc || char == 'q' || char == 'Q' {
			return
		}
		keysCh <- keyPress{char: char, key: key}
	}
}

func handleKey(system *bank.System, entry *floorEntry, press keyPress) {
	switch {
	case press.key == keyboard.KeyEnter:
		destination, ok := entry.submit()
		if !ok {
			return
		}
		_, err := system.Call(destination)
		if errors.Is(err, dispatcher.ErrInvalidFloor) {
			fmt.Printf("\nFloor %d does not exist\n", destination)
		}
	case press.key == keyboard.KeyBackspace || press.key == keyboard.KeyBackspace2:
		entry.clear()
	case press.char >= '0' && press.char <= '9':
		if floor, ok := entry.push(press.char); ok {
			fmt.Printf("\rFloor: %d ", floor)
		}
	case press.char == '+':
		system.SetCallerFloor(system.CallerFloor() + 1)
	case press.char == '-':
		system.SetCallerFloor(system.CallerFloor() - 1)
	case press.char == 's' || press.char == 'S':
		cars, err := system.Snapshot()
		if err != nil {
			return
		}
		fmt.Println()
		for _, car := range cars {
			fmt.Println(utils.FormatCar(car))
		}
	}
}
