package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig contains window and swap-chain configuration
type GraphicsConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	VSync     bool `yaml:"vsync"`
	FrameRate int  `yaml:"framerate"` // 0 disables the cap; vsync still paces
}

// SceneConfig contains the scene construction parameters. An empty Text
// falls back to the scene's built-in placeholder paragraph.
type SceneConfig struct {
	Text     string  `yaml:"text"`
	Speed    float64 `yaml:"speed"`     // scroll speed in pixels per second
	K        float64 `yaml:"k"`         // quadratic distortion coefficient
	Kcube    float64 `yaml:"kcube"`     // cubic distortion coefficient
	FontPath string  `yaml:"font_path"` // optional TTF/OTF override for the built-in face
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty means console only
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:     1280,
			Height:    720,
			VSync:     true,
			FrameRate: 60,
		},
		Scene: SceneConfig{
			Text:  "",
			Speed: 20,
			K:     -0.28,
			Kcube: 0.10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from a file. A missing file is not an
// error: the defaults are returned unchanged.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("error reading config: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("error parsing config: %v", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}
