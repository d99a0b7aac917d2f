package artifact

// Summary is written to build_summary.json and printed by `build --json`.
type Summary struct {
	ArtifactName    string  `json:"artifact_name"`
	SourceDateEpoch int64   `json:"source_date_epoch"`
	Paths           Paths   `json:"paths"`
	SHA256          Digests `json:"sha256"`
	ToolVersion     string  `json:"tool_version"`
}

// Paths are the absolute locations of the artifact files once the build has
// been moved into place. Bundle is where `package` writes bundle.zip.
type Paths struct {
	Memo    string `json:"memo"`
	Report  string `json:"report"`
	Summary string `json:"summary"`
	Bundle  string `json:"bundle"`
}

// Digests holds the SHA-256 of the generated memo and report.
type Digests struct {
	Memo   string `json:"memo"`
	Report string `json:"report"`
}
