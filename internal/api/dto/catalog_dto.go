package dto

import (
	"time"

	"github.com/spec-kit/class-marketplace/internal/domain"
)

// ClassCreateRequest payload for admin class creation.
type ClassCreateRequest struct {
	Name             string  `json:"name"`
	Image            string  `json:"image"`
	InstructorName   string  `json:"instructor_name"`
	InstructorEmail  string  `json:"instructor_email"`
	AvailableSeats   int     `json:"available_seats"`
	EnrolledStudents int     `json:"enrolled_students"`
	Price            float64 `json:"price"`
}

// ClassResponse is the outward view of a class.
type ClassResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Image            string    `json:"image"`
	InstructorName   string    `json:"instructor_name"`
	InstructorEmail  string    `json:"instructor_email"`
	AvailableSeats   int       `json:"available_seats"`
	EnrolledStudents int       `json:"enrolled_students"`
	Price            float64   `json:"price"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewClassResponse maps a domain class.
func NewClassResponse(class *domain.Class) ClassResponse {
	return ClassResponse{
		ID:               class.ID,
		Name:             class.Name,
		Image:            class.Image,
		InstructorName:   class.InstructorName,
		InstructorEmail:  class.InstructorEmail,
		AvailableSeats:   class.AvailableSeats,
		EnrolledStudents: class.EnrolledStudents,
		Price:            class.Price,
		CreatedAt:        class.CreatedAt,
	}
}

// NewClassResponses maps a slice of domain classes.
func NewClassResponses(classes []*domain.Class) []ClassResponse {
	out := make([]ClassResponse, 0, len(classes))
	for _, class := range classes {
		out = append(out, NewClassResponse(class))
	}
	return out
}

// InstructorResponse is the outward view of an instructor.
type InstructorResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Image      string `json:"image"`
	NumClasses int    `json:"num_classes"`
}

// NewInstructorResponses maps a slice of domain instructors.
func NewInstructorResponses(instructors []*domain.Instructor) []InstructorResponse {
	out := make([]InstructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		out = append(out, InstructorResponse{
			ID:         instructor.ID,
			Name:       instructor.Name,
			Email:      instructor.Email,
			Image:      instructor.Image,
			NumClasses: instructor.NumClasses,
		})
	}
	return out
}
