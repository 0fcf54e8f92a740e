package domain

// Instructor is a read-only catalog entry describing who teaches.
type Instructor struct {
	ID         string
	Name       string
	Email      string
	Image      string
	NumClasses int
}
