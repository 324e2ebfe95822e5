package services

import "github.com/maxaizer/dreamjob/internal/entities"

type cityRepository interface {
	FindByID(id int) (entities.City, bool)
	FindAll() []entities.City
}

type CityService struct {
	cities cityRepository
}

func NewCityService(cities cityRepository) *CityService {
	return &CityService{cities: cities}
}

func (s *CityService) FindByID(id int) (entities.City, error) {
	city, ok := s.cities.FindByID(id)
	if !ok {
		return entities.City{}, ErrNotFound
	}
	return city, nil
}

func (s *CityService) FindAll() []entities.City {
	return s.cities.FindAll()
}
