package models

// User represents a person who can pay expenses, owe shares, or move money.
//
// The app has no authentication: the set of users is fixed (seeded or
// created through the API) and a "current user" is whoever the client says
// it is.
type User struct {
	// ID is the unique numeric identifier assigned by the store.
	ID int64 `json:"id"`

	// Name is the display name, also usable as a lookup key when creating
	// expenses and transfers ("payer": "Alice"). Names are not required to
	// be unique; a lookup that matches more than one user is ambiguous.
	Name string `json:"name"`

	// Email is the user's email address (unique).
	Email string `json:"email"`

	// BankAccount is an optional account identifier (e.g. an IBAN) shown on
	// expense detail pages so participants know where to send money.
	BankAccount string `json:"bankAccount,omitempty"`
}

// UserRef identifies a user in an incoming request, either by numeric id or
// by display name. Exactly one of the two fields is set; a name must resolve
// to exactly one user before any business logic runs.
type UserRef struct {
	ID   int64
	Name string
}

// RefByID returns a UserRef that resolves by numeric id.
func RefByID(id int64) UserRef { return UserRef{ID: id} }

// RefByName returns a UserRef that resolves by display name.
func RefByName(name string) UserRef { return UserRef{Name: name} }

// IsZero reports whether neither id nor name is set.
func (r UserRef) IsZero() bool {
	return r.ID == 0 && r.Name == ""
}
