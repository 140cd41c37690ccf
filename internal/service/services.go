package service

import (
	"fmt"

	"github.com/MKhiriev/course-api/internal/config"
	"github.com/MKhiriev/course-api/internal/crypto"
	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/store"
	"github.com/MKhiriev/course-api/internal/validators"
	"github.com/MKhiriev/course-api/models"
)

type Services struct {
	AuthService    AuthService
	CourseService  CourseService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.AccountRepository, hasher, validators.NewAccountValidator(), logger),
		CourseService:  NewCourseService(storages.CourseRepository, validators.NewCourseValidator(), logger),
		AppInfoService: appInfoService,
	}, nil
}
