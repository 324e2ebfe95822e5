package repositories

import (
	"testing"
	"time"

	"github.com/maxaizer/dreamjob/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewVacancy_StampsCreationDate(t *testing.T) {
	before := time.Now()
	vacancy := entities.NewVacancy("Go Developer", "generics welcome", true, 1)

	assert.False(t, vacancy.CreationDate.Before(before))
	assert.False(t, vacancy.CreationDate.After(time.Now()))
}

func Test_VacancyUpdate_TogglesVisibilityButKeepsIdentity(t *testing.T) {
	repo := NewVacancies()
	saved := repo.Save(entities.NewVacancy("Go Developer", "generics welcome", true, 1))

	incoming := saved
	incoming.Visible = false
	incoming.CreationDate = time.Time{}

	require.True(t, repo.Update(incoming))

	updated, ok := repo.FindByID(saved.ID)
	require.True(t, ok)
	assert.False(t, updated.Visible)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, saved.CreationDate, updated.CreationDate)
}
