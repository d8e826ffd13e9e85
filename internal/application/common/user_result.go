package common

// UserResult is the immutable view of a user handed back to callers.
type UserResult struct {
	ID    uint   `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
