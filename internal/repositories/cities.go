package repositories

import (
	"github.com/maxaizer/dreamjob/internal/entities"
	"github.com/samber/lo"
)

type Cities struct {
	*Memory[entities.City]
}

func NewCities() *Cities {
	repo := &Cities{NewMemory(
		func(c entities.City) int { return c.ID },
		func(c entities.City, id int) entities.City {
			c.ID = id
			return c
		},
		func(existing, incoming entities.City) entities.City {
			incoming.ID = existing.ID
			return incoming
		},
	)}

	lo.ForEach([]string{"Москва", "Санкт-Петербург", "Екатеринбург"},
		func(name string, _ int) { repo.Save(entities.City{Name: name}) })

	return repo
}
