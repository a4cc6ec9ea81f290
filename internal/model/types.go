package model

// Report is the JSON document printed by `relcheck --json`.
type Report struct {
	Repository      string `json:"repository,omitempty"` // owner/repo when the reference was a web URL
	Endpoint        string `json:"endpoint"`
	LocalVersion    string `json:"localVersion"`
	LatestVersion   string `json:"latestVersion"` // remote tag as published
	UpdateAvailable bool   `json:"updateAvailable"`
	Decision        string `json:"decision"`
	Summary         string `json:"summary"`
}

// CorpusEntry is one repository in a run-corpus manifest.
type CorpusEntry struct {
	Repo         string `json:"repo"`
	LocalVersion string `json:"localVersion"`
	ExpectUpdate bool   `json:"expectUpdate"`
	ExpectError  bool   `json:"expectError"`
	Note         string `json:"note,omitempty"`
}

// CorpusResult is the outcome of checking one CorpusEntry.
type CorpusResult struct {
	Repo          string `json:"repo"`
	LocalVersion  string `json:"localVersion"`
	LatestVersion string `json:"latestVersion,omitempty"`
	HasUpdate     bool   `json:"hasUpdate"`
	Status        string `json:"status"`
	Error         string `json:"error,omitempty"`
	Note          string `json:"note,omitempty"`
}
