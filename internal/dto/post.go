package dto

import "time"

// PostForm is the form body for creating and editing a post.
type PostForm struct {
	Title string `form:"title"`
	Body  string `form:"body"`
}

// PostView is a post as the templates see it.
type PostView struct {
	ID       int64
	AuthorID int64
	Username string
	Title    string
	Body     string
	Created  time.Time
}

// CreatedDate formats the creation day the way the index shows it.
func (p PostView) CreatedDate() string {
	return p.Created.Format("2006-01-02")
}
