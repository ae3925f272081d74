package config

import "time"

// Timer durations.
const (
	// TickInterval drives the live elapsed display of running timers.
	TickInterval = time.Second
	// StatusMessageTTL is how long a footer message stays visible.
	StatusMessageTTL = 4 * time.Second
)

// View modes.
const (
	ViewModeBoard = iota
	ViewModeTable
)

// Locales.
const (
	LocaleEnglish = "en"
	LocaleSpanish = "es"
)

// Application settings.
const (
	AppName        = "taskboard"
	ConfigFileName = "config.yaml"
	LogFileName    = "taskboard.log"
	EnvPrefix      = "TASKBOARD_"
)
