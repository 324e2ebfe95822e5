package services

import (
	"testing"
	"time"

	"github.com/maxaizer/dreamjob/internal/entities"
	"github.com/maxaizer/dreamjob/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Cleaner_RejectsNonPositiveExpiration(t *testing.T) {
	_, err := NewVacanciesCleaner(repositories.NewVacancies(), 0)
	assert.Error(t, err)
}

func Test_Cleaner_RemovesOnlyExpiredHiddenVacancies(t *testing.T) {
	repo := repositories.NewVacancies()

	expiredHidden := entities.NewVacancy("Old hidden", "past due", false, 1)
	expiredHidden.CreationDate = time.Now().Add(-40 * 24 * time.Hour)
	expiredHidden = repo.Save(expiredHidden)

	expiredVisible := entities.NewVacancy("Old visible", "still listed", true, 1)
	expiredVisible.CreationDate = time.Now().Add(-40 * 24 * time.Hour)
	expiredVisible = repo.Save(expiredVisible)

	freshHidden := repo.Save(entities.NewVacancy("New hidden", "recent draft", false, 1))

	cleaner, err := NewVacanciesCleaner(repo, 30)
	require.NoError(t, err)
	defer cleaner.Stop()

	cleaner.cleanExpiredVacancies()

	_, ok := repo.FindByID(expiredHidden.ID)
	assert.False(t, ok)
	_, ok = repo.FindByID(expiredVisible.ID)
	assert.True(t, ok)
	_, ok = repo.FindByID(freshHidden.ID)
	assert.True(t, ok)
}
