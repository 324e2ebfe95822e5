package services

import (
	"testing"

	"github.com/maxaizer/dreamjob/internal/entities"
	"github.com/maxaizer/dreamjob/internal/repositories"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CandidateLifecycle(t *testing.T) {
	service := NewCandidateService(repositories.NewCandidates())

	ivan := service.Create("Ivan", "junior backend dev", 1)
	assert.Greater(t, ivan.ID, 0)

	_, found := lo.Find(service.FindAll(), func(c entities.Candidate) bool { return c.ID == ivan.ID })
	assert.True(t, found)

	changed := ivan
	changed.Description = "middle backend dev"
	require.NoError(t, service.Update(changed))

	updated, err := service.FindByID(ivan.ID)
	require.NoError(t, err)
	assert.Equal(t, ivan.ID, updated.ID)
	assert.Equal(t, ivan.CreationDate, updated.CreationDate)
	assert.Equal(t, "middle backend dev", updated.Description)

	require.NoError(t, service.Delete(ivan.ID))

	_, found = lo.Find(service.FindAll(), func(c entities.Candidate) bool { return c.ID == ivan.ID })
	assert.False(t, found)

	assert.ErrorIs(t, service.Delete(ivan.ID), ErrNotFound)
	_, err = service.FindByID(ivan.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_CandidateUpdate_UnknownIdIsNotFound(t *testing.T) {
	service := NewCandidateService(repositories.NewCandidates())

	ghost := entities.NewCandidate("Ghost", "not stored", 1)
	ghost.ID = 404

	assert.ErrorIs(t, service.Update(ghost), ErrNotFound)
}
