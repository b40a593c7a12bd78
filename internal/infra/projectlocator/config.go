package projectlocator

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/flowmap/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads flowmap.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "flowmap.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "projectlocator.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "projectlocator.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Flowmap.Paths.SpecsDir != "" {
		cfg.Paths.SpecsDir = y.Flowmap.Paths.SpecsDir
	}
	if y.Flowmap.Files.Requirements != "" {
		cfg.Files.Requirements = y.Flowmap.Files.Requirements
	}
	if y.Flowmap.Files.Design != "" {
		cfg.Files.Design = y.Flowmap.Files.Design
	}
	if y.Flowmap.Files.Flows != "" {
		cfg.Files.Flows = y.Flowmap.Files.Flows
	}

	return cfg, nil
}

type yamlConfig struct {
	Flowmap struct {
		Paths struct {
			SpecsDir string `yaml:"specs_dir"`
		} `yaml:"paths"`

		Files struct {
			Requirements string `yaml:"requirements"`
			Design       string `yaml:"design"`
			Flows        string `yaml:"flows"`
		} `yaml:"files"`
	} `yaml:"flowmap"`
}
