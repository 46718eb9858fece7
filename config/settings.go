package config

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Configuration keys.
const (
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
	KeyClearKeyword = "clear_keyword"
	KeyTimeFormat   = "time_format"
	KeySymbols      = "symbols"
	KeyTemplateDir  = "template_dir"
)

// Application identity used for file and environment lookup.
const (
	AppName         = "tasklist"
	EnvPrefix       = "TASKLIST_"
	LocalConfigName = ".tasklist.yaml"
)

// Symbol sets for task status marks.
const (
	SymbolsUnicode = "unicode"
	SymbolsASCII   = "ascii"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Defaults returns the built-in value of every key.
func Defaults() map[string]string {
	return map[string]string{
		KeyLogLevel:     "warn",
		KeyLogFormat:    LogFormatText,
		KeyClearKeyword: "clear",
		KeyTimeFormat:   "2006-01-02 15:04",
		KeySymbols:      SymbolsUnicode,
		KeyTemplateDir:  "",
	}
}

// Keys returns every known key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(Defaults()))
	for k := range Defaults() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AppResolverConfig returns the resolver settings for the tasklist command.
func AppResolverConfig() ResolverConfig {
	return ResolverConfig{
		EnvPrefix:       EnvPrefix,
		GlobalConfigDir: AppName,
		LocalConfigName: LocalConfigName,
		Defaults:        Defaults(),
		ValidKeys:       Keys(),
	}
}

// Settings is the typed form of a resolved configuration.
type Settings struct {
	LogLevel     slog.Level
	LogFormat    string
	ClearKeyword string
	TimeFormat   string
	ASCII        bool
	TemplateDir  string
}

// Load validates a resolved configuration and converts it to Settings.
func Load(cfg *Resolved) (Settings, error) {
	s := Settings{
		LogFormat:    strings.ToLower(cfg.Get(KeyLogFormat)),
		ClearKeyword: strings.TrimSpace(cfg.Get(KeyClearKeyword)),
		TimeFormat:   cfg.Get(KeyTimeFormat),
		TemplateDir:  cfg.Get(KeyTemplateDir),
	}

	if err := s.LogLevel.UnmarshalText([]byte(cfg.Get(KeyLogLevel))); err != nil {
		return Settings{}, fmt.Errorf("%s %q (from %s): want debug, info, warn or error",
			KeyLogLevel, cfg.Get(KeyLogLevel), cfg.Source(KeyLogLevel))
	}

	switch s.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return Settings{}, fmt.Errorf("%s %q (from %s): want text or json",
			KeyLogFormat, cfg.Get(KeyLogFormat), cfg.Source(KeyLogFormat))
	}

	switch strings.ToLower(cfg.Get(KeySymbols)) {
	case SymbolsUnicode:
	case SymbolsASCII:
		s.ASCII = true
	default:
		return Settings{}, fmt.Errorf("%s %q (from %s): want unicode or ascii",
			KeySymbols, cfg.Get(KeySymbols), cfg.Source(KeySymbols))
	}

	if s.ClearKeyword == "" {
		return Settings{}, fmt.Errorf("%s must not be empty", KeyClearKeyword)
	}
	if s.TimeFormat == "" {
		s.TimeFormat = Defaults()[KeyTimeFormat]
	}

	return s, nil
}
