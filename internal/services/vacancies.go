package services

import (
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/dreamjob/internal/entities"
	"github.com/maxaizer/dreamjob/internal/events"
	"github.com/maxaizer/dreamjob/internal/logger"
	"github.com/maxaizer/dreamjob/internal/metrics"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

type vacancyRepository interface {
	Save(vacancy entities.Vacancy) entities.Vacancy
	Update(vacancy entities.Vacancy) bool
	DeleteByID(id int) bool
	FindByID(id int) (entities.Vacancy, bool)
	FindAll() []entities.Vacancy
}

type cityFinder interface {
	FindByID(id int) (entities.City, bool)
}

type VacancyService struct {
	vacancies vacancyRepository
	cities    cityFinder
	bus       EventBus.Bus
}

func NewVacancyService(vacancies vacancyRepository, cities cityFinder, bus EventBus.Bus) *VacancyService {
	return &VacancyService{vacancies: vacancies, cities: cities, bus: bus}
}

func (s *VacancyService) Create(title, description string, visible bool, cityID int) entities.Vacancy {
	vacancy := s.vacancies.Save(entities.NewVacancy(title, description, visible, cityID))
	metrics.SavedEntitiesCounter.WithLabelValues("vacancy").Inc()

	if vacancy.Visible {
		s.publishVacancy(vacancy)
	}
	return vacancy
}

func (s *VacancyService) publishVacancy(vacancy entities.Vacancy) {
	cityName := ""
	if city, ok := s.cities.FindByID(vacancy.CityID); ok {
		cityName = city.Name
	} else {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeBus).
			Errorf("vacancy %v references unknown city %v", vacancy.ID, vacancy.CityID)
	}

	s.bus.Publish(events.VacancyPublishedTopic, events.VacancyPublished{
		Vacancy: vacancy,
		City:    cityName,
	})
}

func (s *VacancyService) Update(vacancy entities.Vacancy) error {
	if !s.vacancies.Update(vacancy) {
		return ErrNotFound
	}
	return nil
}

func (s *VacancyService) Delete(id int) error {
	if !s.vacancies.DeleteByID(id) {
		return ErrNotFound
	}
	return nil
}

func (s *VacancyService) FindByID(id int) (entities.Vacancy, error) {
	vacancy, ok := s.vacancies.FindByID(id)
	if !ok {
		return entities.Vacancy{}, ErrNotFound
	}
	return vacancy, nil
}

func (s *VacancyService) FindAll() []entities.Vacancy {
	return s.vacancies.FindAll()
}

// FindVisible is what the index page lists: hidden vacancies stay in the
// store but out of sight.
func (s *VacancyService) FindVisible() []entities.Vacancy {
	return lo.Filter(s.vacancies.FindAll(), func(v entities.Vacancy, _ int) bool {
		return v.Visible
	})
}
