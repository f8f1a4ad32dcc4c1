package models

// Account is the identity of the operator whose WhatsApp session and bot are
// managed. ID is the userId used in every Setter API path.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// IsZero reports whether no account is selected.
func (a Account) IsZero() bool {
	return a.ID == ""
}
