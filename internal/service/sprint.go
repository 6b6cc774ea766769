package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"sprintsync.app/retro/common/id"
	"sprintsync.app/retro/common/logger"
	"sprintsync.app/retro/common/metrics"
	"sprintsync.app/retro/internal/model"
	"sprintsync.app/retro/internal/store"
)

type CreateSprintParams struct {
	Name        string
	ProjectName string
	CreatedBy   string
}

// SprintService is the sprint registry: creation and enumeration of sprints.
type SprintService interface {
	Create(ctx context.Context, params CreateSprintParams) (*model.Sprint, error)
	Get(ctx context.Context, sprintID int64) (*model.Sprint, error)
	List(ctx context.Context) ([]model.Sprint, error)
	Count(ctx context.Context) (int64, error)
}

type sprintService struct {
	sprints         store.SprintStore
	publisher       EventPublisher
	allowedProjects []string
}

// NewSprintService builds a SprintService. An empty allowedProjects accepts
// any non-blank project name.
func NewSprintService(sprints store.SprintStore, publisher EventPublisher, allowedProjects []string) SprintService {
	return &sprintService{
		sprints:         sprints,
		publisher:       publisher,
		allowedProjects: allowedProjects,
	}
}

func (s *sprintService) Create(ctx context.Context, params CreateSprintParams) (*model.Sprint, error) {
	sprint, err := s.create(ctx, params)
	metrics.ObserveMutation("create_sprint", err)
	return sprint, err
}

func (s *sprintService) create(ctx context.Context, params CreateSprintParams) (*model.Sprint, error) {
	name, err := requireText("sprintName", params.Name, maxNameLen)
	if err != nil {
		return nil, err
	}
	project, err := requireText("projectName", params.ProjectName, maxNameLen)
	if err != nil {
		return nil, err
	}
	if len(s.allowedProjects) > 0 && !slices.Contains(s.allowedProjects, project) {
		return nil, newValidationError("projectName", "is not a known project")
	}
	createdBy, err := requireText("createdBy", params.CreatedBy, maxNameLen)
	if err != nil {
		return nil, err
	}

	sprint := &model.Sprint{
		ID:          id.New(),
		Name:        name,
		ProjectName: project,
		CreatedBy:   createdBy,
	}
	if err := s.sprints.Create(ctx, sprint); err != nil {
		return nil, fmt.Errorf("creating sprint: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SprintID:  &sprint.ID,
		Component: "retro.service.sprint",
	})
	slog.InfoContext(ctx, "sprint created", "project_name", project)

	publish(ctx, s.publisher, model.BoardEvent{Type: model.EventSprintCreated, SprintID: sprint.ID})
	return sprint, nil
}

func (s *sprintService) Get(ctx context.Context, sprintID int64) (*model.Sprint, error) {
	if err := requireID("sprintId", sprintID); err != nil {
		return nil, err
	}
	sprint, err := s.sprints.GetByID(ctx, sprintID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSprintNotFound
		}
		return nil, fmt.Errorf("getting sprint: %w", err)
	}
	return sprint, nil
}

func (s *sprintService) List(ctx context.Context) ([]model.Sprint, error) {
	sprints, err := s.sprints.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sprints: %w", err)
	}
	return sprints, nil
}

func (s *sprintService) Count(ctx context.Context) (int64, error) {
	n, err := s.sprints.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting sprints: %w", err)
	}
	return n, nil
}
