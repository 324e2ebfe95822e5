package services

import (
	"github.com/maxaizer/dreamjob/internal/entities"
	"github.com/maxaizer/dreamjob/internal/metrics"
)

type candidateRepository interface {
	Save(candidate entities.Candidate) entities.Candidate
	Update(candidate entities.Candidate) bool
	DeleteByID(id int) bool
	FindByID(id int) (entities.Candidate, bool)
	FindAll() []entities.Candidate
}

type CandidateService struct {
	candidates candidateRepository
}

func NewCandidateService(candidates candidateRepository) *CandidateService {
	return &CandidateService{candidates: candidates}
}

func (s *CandidateService) Create(name, description string, cityID int) entities.Candidate {
	candidate := s.candidates.Save(entities.NewCandidate(name, description, cityID))
	metrics.SavedEntitiesCounter.WithLabelValues("candidate").Inc()
	return candidate
}

func (s *CandidateService) Update(candidate entities.Candidate) error {
	if !s.candidates.Update(candidate) {
		return ErrNotFound
	}
	return nil
}

func (s *CandidateService) Delete(id int) error {
	if !s.candidates.DeleteByID(id) {
		return ErrNotFound
	}
	return nil
}

func (s *CandidateService) FindByID(id int) (entities.Candidate, error) {
	candidate, ok := s.candidates.FindByID(id)
	if !ok {
		return entities.Candidate{}, ErrNotFound
	}
	return candidate, nil
}

func (s *CandidateService) FindAll() []entities.Candidate {
	return s.candidates.FindAll()
}
