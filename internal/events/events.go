package events

import "github.com/maxaizer/dreamjob/internal/entities"

var (
	VacancyPublishedTopic = "VacancyPublishedEvent"
	UserRegisteredTopic   = "UserRegisteredEvent"
)

type VacancyPublished struct {
	Vacancy entities.Vacancy
	City    string
}

type UserRegistered struct {
	UserID int
	Email  string
}
