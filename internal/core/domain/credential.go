package domain

// ServiceCredential holds the complete connection tuple for one backing
// database service. ServiceID doubles as the vault key, so one service has
// exactly one stored credential.
//
// A credential is only ever saved as a whole. Partial updates do not exist:
// reconciliation either rewrites all four fields or leaves the vault alone.
type ServiceCredential struct {
	// ServiceID is the vault key, e.g. "org.casics.casics".
	ServiceID string `json:"service_id"`
	// User is the database account name.
	User string `json:"user"`
	// Password is the database account password.
	Password string `json:"password"`
	// Host is the database server host name or address.
	Host string `json:"host"`
	// Port is the database server TCP port.
	Port int `json:"port"`
}

// Complete returns true if all four connection fields are populated.
func (c ServiceCredential) Complete() bool {
	return c.User != "" && c.Password != "" && c.Host != "" && c.Port > 0
}

// Equal compares the four connection fields, ignoring ServiceID.
// Reconciliation uses this to decide whether the vault needs rewriting.
func (c ServiceCredential) Equal(other ServiceCredential) bool {
	return c.User == other.User &&
		c.Password == other.Password &&
		c.Host == other.Host &&
		c.Port == other.Port
}
