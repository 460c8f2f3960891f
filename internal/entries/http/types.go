package http

import "github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/domain"

// StoreRequest is the body of POST /store. Title is a pointer so that a
// missing key is rejected while an empty string is accepted.
type StoreRequest struct {
	Title   *string        `json:"title" binding:"required"`
	Content domain.Content `json:"content" binding:"required"`
}

type StoreResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type StatusResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

const (
	StatusConnected = "connected"
	MessageSaved    = "Data saved!"
)
