package repositories

import (
	"github.com/maxaizer/dreamjob/internal/entities"
	"github.com/samber/lo"
)

type Candidates struct {
	*Memory[entities.Candidate]
}

// NewCandidates seeds the demo fixtures through the normal Save path, so
// they get ids 1..N from the same counter as everything after them.
func NewCandidates() *Candidates {
	repo := &Candidates{NewMemory(
		func(c entities.Candidate) int { return c.ID },
		func(c entities.Candidate, id int) entities.Candidate {
			c.ID = id
			return c
		},
		func(existing, incoming entities.Candidate) entities.Candidate {
			incoming.ID = existing.ID
			incoming.CreationDate = existing.CreationDate
			return incoming
		},
	)}

	fixtures := []entities.Candidate{
		entities.NewCandidate("Ivan Ivanov", "description of Ivan Ivanov", 1),
		entities.NewCandidate("Dmitriy Alexeev", "description of Dmitriy Alexeev", 2),
		entities.NewCandidate("Elena Petrova", "description of Elena Petrova", 3),
		entities.NewCandidate("Andrey Andreev", "description of Andrey Andreev", 1),
		entities.NewCandidate("John Johnson", "description of John", 2),
		entities.NewCandidate("James Smith", "description of James", 3),
	}
	lo.ForEach(fixtures, func(c entities.Candidate, _ int) { repo.Save(c) })

	return repo
}
