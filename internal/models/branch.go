package models

// Branch is a named pointer into the shared linear commit log. CurrentCommit
// may be empty before the first commit on a fresh repository.
type Branch struct {
	Name          string `json:"name"`
	CurrentCommit string `json:"current_commit"`
	CreatedAt     string `json:"created_at"`
	Description   string `json:"description"`
}

// Tag is an immutable named alias for a single commit.
type Tag struct {
	Name      string `json:"name"`
	Commit    string `json:"commit"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
