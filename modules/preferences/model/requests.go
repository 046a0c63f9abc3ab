package model

// UpsertPreferenceRequest represents a preference submission. Choices
// are ordered, first-to-last; the service validates count, catalog
// membership, and distinctness.
type UpsertPreferenceRequest struct {
	Choices []string `json:"choices" binding:"required"`
}
