package services

import (
	"fmt"

	"github.com/taskhive/task-dashboard-api/internal/dto"
	"github.com/taskhive/task-dashboard-api/internal/repository"
)

// DashboardService handles the cross-workspace read aggregations
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(dashboardRepo repository.DashboardRepository) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
	}
}

// GetAllTasks returns the denormalized task list across every workspace the
// user belongs to. Persistence failures propagate to the caller; there is no
// retry or partial-result handling at this layer.
func (s *DashboardService) GetAllTasks(userID string) ([]dto.DashboardTask, error) {
	tasks, err := s.dashboardRepo.GetAllTasks(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tasks: %w", err)
	}
	return tasks, nil
}
