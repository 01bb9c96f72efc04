package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether s is one of the known account roles.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleUser
}

// User models an account. The credential is stored only as a bcrypt hash and
// is never rendered in JSON.
type User struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	SenhaHash string `json:"-"`
	Role      string `json:"role"`
}
