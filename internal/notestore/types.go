package notestore

import (
	"context"
	"time"
)

// SearchLimit is the number of notes a search asks for
const SearchLimit = 10

// Client is the note service as seen by a session
type Client interface {
	Search(ctx context.Context, term string, max int) ([]Note, error)
	Create(ctx context.Context, note NewNote) (Note, error)
}

// Note is a note stored by the service
type Note struct {
	GUID    string
	Title   string
	Updated time.Time
}

// NewNote is a note to be created
type NewNote struct {
	Title   string
	Content string // en-note markup
	Tags    []string
}

// ---- Wire types ----

type wireNote struct {
	GUID    string `json:"guid"`
	Title   string `json:"title"`
	Updated int64  `json:"updated"` // milliseconds since the epoch
}

func (w wireNote) note() Note {
	return Note{
		GUID:    w.GUID,
		Title:   w.Title,
		Updated: time.UnixMilli(w.Updated),
	}
}

type createRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	TagNames []string `json:"tagNames,omitempty"`
}

type searchResponse struct {
	Notes []wireNote `json:"notes"`
}

type errorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	Parameter string `json:"parameter"`
}
