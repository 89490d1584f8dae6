package model

// Session contains the unserialized data of the logged-in user's JWT
type Session struct {
	ID    uint
	Name  string
	Email string
	Uuid  string
	Role  int
	Exp   float64
}
