package domain

// ProjectRef points at one spec project inside a workspace, with the
// three document paths already derived from the workspace config.
type ProjectRef struct {
	Name string
	Dir  string

	RequirementsPath string
	DesignPath       string
	FlowsPath        string
}

// SourceDocs holds the full text of the two input documents.
type SourceDocs struct {
	Requirements string
	Design       string
}

// WorkspaceSpec describes a workspace to initialize.
type WorkspaceSpec struct {
	Root string
}

// FlowSummary is the result of one generate run, for the CLI summary.
type FlowSummary struct {
	Project    string `json:"project"`
	Screens    int    `json:"screens"`
	Stories    int    `json:"stories"`
	Flows      int    `json:"flows"`
	OutputPath string `json:"output_path"`
}
