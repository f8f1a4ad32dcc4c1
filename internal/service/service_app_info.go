package service

import (
	"context"
	"fmt"

	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/models"
)

type appInfoService struct {
	build  models.BuildInfo
	health HealthChecker

	logger *logger.Logger
}

// NewAppInfoService returns an [AppInfoService] reporting build and probing
// the backend through health.
func NewAppInfoService(build models.BuildInfo, health HealthChecker, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		build:  build,
		health: health,
		logger: logger,
	}
}

func (s *appInfoService) BuildInfo() models.BuildInfo {
	return s.build
}

func (s *appInfoService) Health(ctx context.Context) error {
	if err := s.health.Health(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "appInfoService.Health").Msg("backend health check failed")
		return fmt.Errorf("health check: %w", err)
	}
	return nil
}
