package model

// CreateTerminalRequest represents a create terminal request
type CreateTerminalRequest struct {
	Code string `json:"code" binding:"required,min=1,max=32"`
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// UpdateTerminalRequest represents an update terminal request
type UpdateTerminalRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}
