package api

// RunV1 is one run recorded in a run archive.
type RunV1 struct {
	ID        string   `json:"run_id"`
	Command   string   `json:"command"`
	Version   string   `json:"version"`
	CreatedAt string   `json:"created_at"`
	Stages    []string `json:"stages"`
}
