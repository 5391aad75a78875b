package domain

import "time"

// Post is a blog entry joined with its author's username.
type Post struct {
	ID       int64
	AuthorID int64
	Username string
	Title    string
	Body     string
	Created  time.Time
}
