package entities

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyRecord remembers the response of a create request so a retried
// request carrying the same key gets the same answer.
type IdempotencyRecord struct {
	ID         uuid.UUID
	Key        string
	Request    string
	Response   string
	StatusCode int
	CreatedAt  time.Time
}

func NewIdempotencyRecord(key, request string) *IdempotencyRecord {
	return &IdempotencyRecord{
		ID:        uuid.New(),
		Key:       key,
		Request:   request,
		CreatedAt: time.Now(),
	}
}

func (r *IdempotencyRecord) SetResponse(response string, statusCode int) {
	r.Response = response
	r.StatusCode = statusCode
}
