package service

import (
	"context"

	"github.com/adushkin/userdir/internal/logger"
	"github.com/adushkin/userdir/internal/metrics"
	"github.com/adushkin/userdir/internal/store"
	"github.com/adushkin/userdir/internal/validators"
	"github.com/adushkin/userdir/models"
)

// userService is the concrete implementation of UserService. It runs the
// same validation on the create and update paths and keeps the
// users_total gauge in sync with the directory size.
type userService struct {
	directory store.UserDirectory
	metrics   *metrics.Registry
	logger    *logger.Logger
}

// NewUserService constructs a UserService wired to the given directory.
// The registry may be nil, in which case no gauges are updated.
func NewUserService(directory store.UserDirectory, registry *metrics.Registry, logger *logger.Logger) UserService {
	return &userService{
		directory: directory,
		metrics:   registry,
		logger:    logger,
	}
}

func (s *userService) List(ctx context.Context) []models.User {
	return s.directory.List(ctx)
}

func (s *userService) Get(ctx context.Context, name string) (models.User, error) {
	return s.directory.Get(ctx, name)
}

func (s *userService) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateUser(user.UserName, user.UserAge); err != nil {
		log.Err(err).Any("user", user).Msg("user failed validation")
		return models.User{}, err
	}

	if err := s.directory.Insert(ctx, user); err != nil {
		log.Err(err).Str("user", user.UserName).Msg("user creation ended with error")
		return models.User{}, err
	}

	s.updateDirectoryGauge()
	log.Info().Str("user", user.UserName).Msg("user created")

	return user, nil
}

func (s *userService) Update(ctx context.Context, name string, user models.User) error {
	log := logger.FromContext(ctx)

	if err := validators.ValidateUser(user.UserName, user.UserAge); err != nil {
		log.Err(err).Any("user", user).Msg("user failed validation")
		return err
	}

	if err := s.directory.Replace(ctx, name, user); err != nil {
		log.Err(err).Str("user", name).Msg("user update ended with error")
		return err
	}

	log.Info().Str("user", name).Msg("user updated")

	return nil
}

func (s *userService) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if err := s.directory.Remove(ctx, name); err != nil {
		log.Err(err).Str("user", name).Msg("user deletion ended with error")
		return err
	}

	s.updateDirectoryGauge()
	log.Info().Str("user", name).Msg("user deleted")

	return nil
}

func (s *userService) updateDirectoryGauge() {
	if s.metrics == nil {
		return
	}
	s.metrics.SetUsersTotal(s.directory.Len())
}
