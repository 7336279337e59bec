// Package models holds the persisted domain types.
package models

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "aluno"
)

// IsAdmin reports whether r grants access to the user listing.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// String returns a display label.
func (r Role) String() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "aluno"
}

// UserRecord is one registered account. The map key it is stored under is
// the email; the record itself does not repeat it.
//
// JSON field names match the data files produced by the first version of the
// course tool, so existing files load unchanged.
type UserRecord struct {
	Name         string   `json:"nome"`
	Age          int      `json:"idade"`
	PasswordHash string   `json:"senha"`
	Role         Role     `json:"tipo"`
	Answers      []string `json:"respostas"`
}

// Clone returns a deep copy.
func (u *UserRecord) Clone() *UserRecord {
	if u == nil {
		return nil
	}
	c := *u
	if u.Answers != nil {
		c.Answers = make([]string, len(u.Answers))
		copy(c.Answers, u.Answers)
	}
	return &c
}

// Users is the full record collection keyed by email.
type Users map[string]*UserRecord

// Clone returns a deep copy of the collection.
func (us Users) Clone() Users {
	out := make(Users, len(us))
	for k, v := range us {
		out[k] = v.Clone()
	}
	return out
}
