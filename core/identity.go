package core

// Identity identifies the author of store commits.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (identity Identity) String() string {
	return identity.Name + " <" + identity.Email + ">"
}
