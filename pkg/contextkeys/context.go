package contextkeys

// Custom key type to avoid collisions with other context users.
type contextKey string

// Keys under which the auth middleware stores the resolved actor identity.
// The identity is resolved exactly once at the request boundary; handlers
// read it from here and pass it explicitly into the services.
const (
	EmployerIDKey = contextKey("employer_id")
	RoleKey       = contextKey("role")
)
