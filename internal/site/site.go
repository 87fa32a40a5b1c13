// Package site holds the storefront identity settings: the store name,
// the WhatsApp order number, and the presentation defaults that were
// hard-coded in the original storefront page.
package site

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings describes the storefront identity and presentation defaults.
type Settings struct {
	Name               string   `yaml:"name"`
	WhatsAppNumber     string   `yaml:"whatsapp_number"`
	Currency           string   `yaml:"currency"`
	FallbackImage      string   `yaml:"fallback_image"`
	MapsBaseURL        string   `yaml:"maps_base_url"`
	DefaultDescription string   `yaml:"default_description"`
	KeywordTags        []string `yaml:"keyword_tags"`
}

// Defaults returns the settings matching the original A1 Kabab Corner storefront.
func Defaults() Settings {
	return Settings{
		Name:               "A1 Kabab Corner",
		WhatsAppNumber:     "918956507490",
		Currency:           "INR",
		FallbackImage:      "fallback.jpg",
		MapsBaseURL:        "https://www.google.com/maps/search/?api=1&query=",
		DefaultDescription: "Delicious items available at A1 Kabab Corner",
		KeywordTags:        []string{"kabab", "food", "tandoori"},
	}
}

// Load reads settings from the YAML file at path, filling missing fields
// from Defaults. An empty path returns the defaults unchanged.
func Load(path string) (Settings, error) {
	settings := Defaults()
	path = strings.TrimSpace(path)
	if path == "" {
		return settings, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("site: read settings: %w", err)
	}

	var overrides Settings
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return Settings{}, fmt.Errorf("site: parse settings: %w", err)
	}

	if strings.TrimSpace(overrides.Name) != "" {
		settings.Name = strings.TrimSpace(overrides.Name)
	}
	if strings.TrimSpace(overrides.WhatsAppNumber) != "" {
		settings.WhatsAppNumber = strings.TrimSpace(overrides.WhatsAppNumber)
	}
	if strings.TrimSpace(overrides.Currency) != "" {
		settings.Currency = strings.ToUpper(strings.TrimSpace(overrides.Currency))
	}
	if strings.TrimSpace(overrides.FallbackImage) != "" {
		settings.FallbackImage = strings.TrimSpace(overrides.FallbackImage)
	}
	if strings.TrimSpace(overrides.MapsBaseURL) != "" {
		settings.MapsBaseURL = strings.TrimSpace(overrides.MapsBaseURL)
	}
	if strings.TrimSpace(overrides.DefaultDescription) != "" {
		settings.DefaultDescription = strings.TrimSpace(overrides.DefaultDescription)
	}
	if len(overrides.KeywordTags) > 0 {
		tags := make([]string, 0, len(overrides.KeywordTags))
		for _, tag := range overrides.KeywordTags {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				tags = append(tags, trimmed)
			}
		}
		if len(tags) > 0 {
			settings.KeywordTags = tags
		}
	}

	return settings, nil
}
