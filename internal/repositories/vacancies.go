package repositories

import (
	"github.com/maxaizer/dreamjob/internal/entities"
	"github.com/samber/lo"
)

type Vacancies struct {
	*Memory[entities.Vacancy]
}

func NewVacancies() *Vacancies {
	repo := &Vacancies{NewMemory(
		func(v entities.Vacancy) int { return v.ID },
		func(v entities.Vacancy, id int) entities.Vacancy {
			v.ID = id
			return v
		},
		// Visibility and text follow the incoming value; identity and the
		// original creation timestamp stay with the stored one.
		func(existing, incoming entities.Vacancy) entities.Vacancy {
			incoming.ID = existing.ID
			incoming.CreationDate = existing.CreationDate
			return incoming
		},
	)}

	fixtures := []entities.Vacancy{
		entities.NewVacancy("Intern Java Developer", "learns fast", true, 1),
		entities.NewVacancy("Junior Java Developer", "knows collections and SQL", true, 2),
		entities.NewVacancy("Junior+ Java Developer", "a year of production code", true, 3),
		entities.NewVacancy("Middle Java Developer", "owns features end to end", true, 1),
		entities.NewVacancy("Middle+ Java Developer", "reviews and mentors", false, 2),
		entities.NewVacancy("Senior Java Developer", "designs whole subsystems", true, 3),
	}
	lo.ForEach(fixtures, func(v entities.Vacancy, _ int) { repo.Save(v) })

	return repo
}
