package domain

import "time"

type Venue struct {
	VenueID   string
	OwnerID   string
	Name      string
	Address   string
	City      string
	State     string
	Country   string
	ZipCode   string
	Capacity  int
	Website   string
	TechSpecs string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
