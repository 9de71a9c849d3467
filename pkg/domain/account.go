package domain

// Account identifies a remote user by its opaque id with denormalized display fields
type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Host     string `json:"host,omitempty"` // empty for local accounts
	Name     string `json:"name,omitempty"`
}

// Handle returns username@host, or just the username for local accounts
func (a Account) Handle() string {
	if a.Host == "" {
		return a.Username
	}
	return a.Username + "@" + a.Host
}
