package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/dreamjob/internal/config"
	"github.com/maxaizer/dreamjob/internal/events"
	"github.com/maxaizer/dreamjob/internal/logger"
	"github.com/maxaizer/dreamjob/internal/metrics"
	"github.com/maxaizer/dreamjob/internal/repositories"
	"github.com/maxaizer/dreamjob/internal/services"
	log "github.com/sirupsen/logrus"
)

func subscribeEventLogging(bus EventBus.Bus) {
	err := bus.Subscribe(events.VacancyPublishedTopic, func(e events.VacancyPublished) {
		log.Infof("vacancy published: %v (%v)", e.Vacancy.Title, e.City)
	})
	if err != nil {
		log.Fatalf("can't subscribe to vacancy events: %v", err)
	}

	err = bus.Subscribe(events.UserRegisteredTopic, func(e events.UserRegistered) {
		log.Infof("user registered: %v", e.Email)
	})
	if err != nil {
		log.Fatalf("can't subscribe to user events: %v", err)
	}
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer()

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	candidates := repositories.NewCandidates()
	vacancies := repositories.NewVacancies()
	cities := repositories.NewCachedCities(repositories.NewCities())
	users := repositories.NewUsersRepository(dbContext.DB)

	bus := EventBus.New()
	subscribeEventLogging(bus)

	candidateService := services.NewCandidateService(candidates)
	vacancyService := services.NewVacancyService(vacancies, cities, bus)
	cityService := services.NewCityService(cities)
	userService := services.NewUserService(users, bus)

	cleaner, err := services.NewVacanciesCleaner(vacancies, cfg.App.VacancyExpirationInDays)
	if err != nil {
		log.Fatalf("can't create vacancies cleaner: %v", err)
	}
	defer cleaner.Stop()

	registered, err := userService.FindAll(ctx)
	if err != nil {
		log.Fatalf("can't reach user store: %v", err)
	}

	//ToDo: mount the web controllers on top of these services
	log.Infof("job board ready: %v visible vacancies, %v candidates, %v cities, %v users",
		len(vacancyService.FindVisible()), len(candidateService.FindAll()),
		len(cityService.FindAll()), len(registered))

	<-ctx.Done()

	log.Info("Shutting down services...")
}
