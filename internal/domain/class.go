package domain

import "time"

// Class is a purchasable class offering in the catalog.
type Class struct {
	ID               string
	Name             string
	Image            string
	InstructorName   string
	InstructorEmail  string
	AvailableSeats   int
	EnrolledStudents int
	Price            float64
	CreatedAt        time.Time
}
