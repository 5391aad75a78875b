package domain

// Identity is the user resolved for one request. A nil User means anonymous.
type Identity struct {
	User *User
}

// Anonymous returns an Identity with no user.
func Anonymous() Identity { return Identity{} }

// Authenticated returns an Identity for u.
func Authenticated(u User) Identity { return Identity{User: &u} }

func (i Identity) IsAuthenticated() bool { return i.User != nil }

// UserID returns the resolved user's id, 0 when anonymous.
func (i Identity) UserID() int64 {
	if i.User == nil {
		return 0
	}
	return i.User.ID
}

// Owns reports whether the identity is the author of p.
func (i Identity) Owns(p Post) bool {
	return i.User != nil && i.User.ID == p.AuthorID
}
