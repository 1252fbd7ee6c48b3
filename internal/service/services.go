// Package service contains the application services sitting between the
// HTTP transport and the store. Services validate input, delegate to the
// user directory, and keep the directory metrics current.
package service

import (
	"github.com/adushkin/userdir/internal/logger"
	"github.com/adushkin/userdir/internal/metrics"
	"github.com/adushkin/userdir/internal/store"
)

type Services struct {
	UserService UserService
}

func NewServices(directory store.UserDirectory, registry *metrics.Registry, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(directory, registry, logger),
	}
}
