package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

type Settings struct {
	// Commands only run for matches scoring at least this much.
	MinScore float64 `json:"min_score"`
	// Number of strokes recognized at once by batch commands.
	Workers int64 `json:"workers"`
	// Consecutive input points closer than this are merged. 0 keeps all.
	MinSpacing float64 `json:"min_spacing"`
	ShowAll    bool    `json:"show_all"`
}

func DefaultSettings() *Settings {
	return &Settings{
		MinScore:   0.8,
		Workers:    4,
		MinSpacing: 0,
	}
}

var dirOverride string

// SetDir makes every path in this package live under dir.
func SetDir(dir string) {
	dirOverride = dir
}

func GetDir() (string, error) {
	configDir := dirOverride
	if configDir == "" {
		base := os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			base = filepath.Join(homeDir, ".config")
		}
		configDir = filepath.Join(base, "sigil")
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return configDir, nil
}

func GetPath() (string, error) {
	configDir, err := GetDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "gestures.json"), nil
}

func GetSettingsPath() (string, error) {
	configDir, err := GetDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

func LoadSettings() (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}

	defaultSettings := DefaultSettings()

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", settingsPath)
			if err := createDefaultSettings(settingsPath, defaultSettings); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return defaultSettings, nil
		}
		return nil, err
	}

	// Check for unrecognised keys
	var rawSettings map[string]interface{}
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	// Missing keys keep their defaults
	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	if settings.MinScore < 0.0 || settings.MinScore > 1.0 {
		log.Printf("Invalid min_score value %.2f, must be between 0.0 and 1.0, using default %.2f",
			settings.MinScore, defaultSettings.MinScore)
		settings.MinScore = defaultSettings.MinScore
	}
	if settings.Workers < 1 {
		log.Printf("Invalid workers value %d, must be at least 1, using default %d",
			settings.Workers, defaultSettings.Workers)
		settings.Workers = defaultSettings.Workers
	}
	if settings.MinSpacing < 0 {
		log.Printf("Invalid min_spacing value %.2f, must not be negative, using default %.2f",
			settings.MinSpacing, defaultSettings.MinSpacing)
		settings.MinSpacing = defaultSettings.MinSpacing
	}

	return settings, nil
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			// Handle json tags like "field,omitempty"
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
