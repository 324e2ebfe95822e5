package entities

import "time"

type Vacancy struct {
	ID           int
	Title        string
	Description  string
	CreationDate time.Time
	Visible      bool
	CityID       int
}

// NewVacancy stamps the creation date if the caller left it zero.
func NewVacancy(title, description string, visible bool, cityID int) Vacancy {
	return Vacancy{
		Title:        title,
		Description:  description,
		CreationDate: time.Now(),
		Visible:      visible,
		CityID:       cityID,
	}
}
