package services

import (
	"time"

	"github.com/maxaizer/dreamjob/internal/entities"
	"github.com/maxaizer/dreamjob/internal/metrics"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type vacancyCleanupRepository interface {
	FindAll() []entities.Vacancy
	DeleteByID(id int) bool
}

// VacanciesCleaner drops hidden vacancies once they outlive the expiration
// period. Visible vacancies are never touched.
type VacanciesCleaner struct {
	vacancies            vacancyCleanupRepository
	cron                 *cron.Cron
	expirationTimeInDays int
}

func NewVacanciesCleaner(vacancies vacancyCleanupRepository, expirationInDays int) (*VacanciesCleaner, error) {

	if expirationInDays <= 0 {
		return nil, errors.New("expiration in days must be greater than zero")
	}

	vc := &VacanciesCleaner{
		vacancies:            vacancies,
		cron:                 cron.New(),
		expirationTimeInDays: expirationInDays,
	}

	_, err := vc.cron.AddFunc("0 0 * * *", vc.cleanExpiredVacancies)
	if err != nil {
		return nil, err
	}

	vc.cron.Start()
	log.Infof("vacancies cleaner started, expiration in days: %d", vc.expirationTimeInDays)
	return vc, nil
}

func (vc *VacanciesCleaner) Stop() {
	vc.cron.Stop()
}

func (vc *VacanciesCleaner) cleanExpiredVacancies() {
	started := time.Now()
	cutoff := started.Add(-time.Duration(vc.expirationTimeInDays) * 24 * time.Hour)

	removed := 0
	for _, vacancy := range vc.vacancies.FindAll() {
		if !vacancy.Visible && vacancy.CreationDate.Before(cutoff) {
			if vc.vacancies.DeleteByID(vacancy.ID) {
				removed++
			}
		}
	}

	metrics.RemovedVacanciesCounter.Add(float64(removed))
	metrics.CleanupDuration.Observe(time.Since(started).Seconds())

	log.Infof("expired vacancies cleaned at %v, removed: %v", time.Now(), removed)
}
