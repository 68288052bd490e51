package session

import (
	"strings"
	"time"
)

// Draft is a note being composed. It lives in memory, and in a temp file
// while the editor is open.
type Draft struct {
	Title string
	Tags  []string
	Body  string
}

// NewDraft builds a draft from the positional arguments: an optional title
// followed by an optional comma-separated tag list.
func NewDraft(args []string, now time.Time) Draft {
	d := Draft{}

	if len(args) > 0 {
		d.Title = strings.TrimSpace(args[0])
	}
	if d.Title == "" {
		d.Title = "Untitled note - " + now.Format("2006-01-02 15:04:05 -0700")
	}

	if len(args) > 1 {
		d.Tags = ParseTags(args[1])
	}

	return d
}

// ParseTags splits a comma-separated list, dropping blanks
func ParseTags(arg string) []string {
	var tags []string
	for _, t := range strings.Split(arg, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
