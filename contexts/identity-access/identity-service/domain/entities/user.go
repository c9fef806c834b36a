package entities

// User is the staff account record. Role is stored as its wire string;
// capability semantics live in the shared access policy.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Avatar       string
}
