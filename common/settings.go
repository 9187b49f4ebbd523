package common

import (
	"os"
	"path/filepath"

	"github.com/birmacher/empathetic-code-reviewer/logger"
	"gopkg.in/yaml.v3"
)

const (
	// ProfileGentle softens feedback and leads with encouragement
	ProfileGentle = "gentle"
	// ProfileDirect keeps the supportive tone but gets to the point faster
	ProfileDirect = "direct"
)

// Settings controls how the generated review reads. Loaded from an
// optional reviewer.yml in the working tree; every field has a default.
type Settings struct {
	Language string `yaml:"language"`
	Tone     string `yaml:"tone_instructions"`
	Profile  string `yaml:"profile"`
}

func WithDefaultSettings() Settings {
	return Settings{
		Language: "en-US",
		Profile:  ProfileGentle,
	}
}

func WithYamlFile() Settings {
	settings := WithDefaultSettings()

	var filePath string
	filenames := []string{"reviewer.yml", "reviewer.yaml"}

	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			filePath = name
			break
		}
	}

	if filePath == "" {
		filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if filePath != "" {
				return filepath.SkipDir
			}
			for _, name := range filenames {
				if !info.IsDir() && info.Name() == name {
					filePath = path
					return filepath.SkipDir
				}
			}
			return nil
		})
	}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err == nil {
			if err := yaml.Unmarshal(data, &settings); err != nil {
				logger.Infof("Failed to parse YAML file %s: %v", filePath, err)
			} else {
				logger.Infof("Using settings from YAML file: %s", filePath)
			}
		}
	} else {
		logger.Infof("No YAML file found in the current directory or subdirectories. Using default settings.")
	}
	return settings
}
