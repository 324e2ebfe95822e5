package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/go-playground/validator/v10"
	"github.com/maxaizer/dreamjob/internal/entities"
	"github.com/maxaizer/dreamjob/internal/events"
	"github.com/maxaizer/dreamjob/internal/logger"
	"github.com/maxaizer/dreamjob/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type userRepository interface {
	Save(ctx context.Context, user entities.User) (*entities.User, error)
	FindByEmailAndPassword(ctx context.Context, email, password string) (*entities.User, error)
	FindAll(ctx context.Context) ([]entities.User, error)
}

type UserService struct {
	users    userRepository
	bus      EventBus.Bus
	validate *validator.Validate
}

func NewUserService(users userRepository, bus EventBus.Bus) *UserService {
	return &UserService{users: users, bus: bus, validate: validator.New()}
}

// Register creates the account. A taken email surfaces as ErrEmailTaken,
// which the store signals by returning no user; a store fault passes
// through so the caller can tell the two apart.
func (s *UserService) Register(ctx context.Context, email, name, password string) (entities.User, error) {

	if err := s.validate.Var(email, "required,email"); err != nil {
		return entities.User{}, ErrInvalidEmail
	}

	user, err := s.users.Save(ctx, entities.User{Email: email, Name: name, Password: password})
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to register user: %v", err)
		return entities.User{}, err
	}
	if user == nil {
		log.Infof("registration rejected, email already taken: %v", email)
		return entities.User{}, ErrEmailTaken
	}

	metrics.SavedEntitiesCounter.WithLabelValues("user").Inc()
	s.bus.Publish(events.UserRegisteredTopic, events.UserRegistered{
		UserID: user.ID,
		Email:  user.Email,
	})
	return *user, nil
}

func (s *UserService) FindAll(ctx context.Context) ([]entities.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to list users: %v", err)
		return nil, err
	}
	return users, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (entities.User, error) {
	user, err := s.users.FindByEmailAndPassword(ctx, email, password)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to log user in: %v", err)
		return entities.User{}, err
	}
	if user == nil {
		return entities.User{}, ErrWrongCredentials
	}
	return *user, nil
}
