package entities

import "time"

type Candidate struct {
	ID           int
	Name         string
	Description  string
	CreationDate time.Time
	CityID       int
}

func NewCandidate(name, description string, cityID int) Candidate {
	return Candidate{
		Name:         name,
		Description:  description,
		CreationDate: time.Now(),
		CityID:       cityID,
	}
}
