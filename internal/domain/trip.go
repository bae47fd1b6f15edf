// Package domain contains the core data types for the travel agency API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Trip is a bookable journey with a date range and a capacity.
// Trips and their countries are pre-seeded; the API never creates or edits them.
type Trip struct {
	ID          int
	Name        string
	Description string
	DateFrom    time.Time
	DateTo      time.Time

	// MaxPeople is the capacity: the number of registrations the trip accepts.
	MaxPeople int

	// Countries is never nil for trips returned by the repo, so it encodes
	// as [] rather than null.
	Countries []Country
}

// Country is a destination linked to trips through Country_Trip.
type Country struct {
	ID   int
	Name string
}
