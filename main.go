package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"activityboard/internal/api"
	"activityboard/internal/config"
	"activityboard/internal/eventbus"
	"activityboard/internal/logic"
	"activityboard/internal/ui"
)

func main() {
	var (
		configPath string
		baseURL    string
		locale     string
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&baseURL, "url", "", "Base URL of the activities server")
	flag.StringVar(&baseURL, "u", "", "Base URL of the activities server (shorthand)")
	flag.StringVar(&locale, "locale", "", "Locale used for name ordering")
	flag.Parse()

	cfg := loadConfig(configPath, baseURL, locale)

	// Set up logging
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Printf("Using server %s (locale %s)", cfg.BaseURL, cfg.Locale)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()
	defer bus.Close()
	for _, eventType := range eventbus.AllEventTypes {
		bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			log.Printf("event: %s %+v", e.Type(), e)
		})
	}

	client := api.NewHTTPClient(cfg.BaseURL, nil)
	store := logic.NewMemoryActivityStore()

	uiModel := ui.NewModel(ctx, cfg, client, store, bus)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	if os.Getenv("ACTIVITYBOARD_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadConfig layers the config file, .env, environment and flags, in that order.
// An invalid result falls back to the defaults.
func loadConfig(configPath, baseURL, locale string) *config.Config {
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}

	cfg, err := config.LoadOrCreate(configSvc)
	if err != nil {
		log.Printf("Error loading config from %s: %v", configSvc.Path(), err)
		if cfg == nil {
			cfg = config.DefaultConfig()
		}
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("Error loading .env: %v", err)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		log.Printf("Error applying environment: %v", err)
	}

	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if locale != "" {
		cfg.Locale = locale
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v; using defaults\n", err)
		log.Printf("%v; using defaults", err)
		fallback := config.DefaultConfig()
		if baseURL != "" {
			fallback.BaseURL = baseURL
		}
		if fallback.Validate() != nil {
			fallback = config.DefaultConfig()
		}
		cfg = fallback
	}
	return cfg
}
