package domain

// Config represents the minimal Flowmap configuration loaded from flowmap.yaml.
type Config struct {
	Paths PathsConfig
	Files FilesConfig
}

type PathsConfig struct {
	SpecsDir string
}

type FilesConfig struct {
	Requirements string
	Design       string
	Flows        string
}

// DefaultConfig provides sane defaults if flowmap.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			SpecsDir: "specs",
		},
		Files: FilesConfig{
			Requirements: "requirements.md",
			Design:       "design.md",
			Flows:        "user-flows.md",
		},
	}
}
