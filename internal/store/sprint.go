package store

import (
	"context"

	"sprintsync.app/retro/core/db/sqlc"
	"sprintsync.app/retro/internal/model"
)

type sprintStore struct {
	queries *sqlc.Queries
}

func newSprintStore(queries *sqlc.Queries) SprintStore {
	return &sprintStore{queries: queries}
}

func (s *sprintStore) Create(ctx context.Context, sprint *model.Sprint) error {
	row, err := s.queries.CreateSprint(ctx, sqlc.CreateSprintParams{
		ID:          sprint.ID,
		Name:        sprint.Name,
		ProjectName: sprint.ProjectName,
		CreatedBy:   sprint.CreatedBy,
	})
	if err != nil {
		return mapErr(err)
	}
	*sprint = *toSprintModel(row)
	return nil
}

func (s *sprintStore) GetByID(ctx context.Context, id int64) (*model.Sprint, error) {
	row, err := s.queries.GetSprint(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toSprintModel(row), nil
}

func (s *sprintStore) List(ctx context.Context) ([]model.Sprint, error) {
	rows, err := s.queries.ListSprints(ctx)
	if err != nil {
		return nil, err
	}
	sprints := make([]model.Sprint, 0, len(rows))
	for _, row := range rows {
		sprints = append(sprints, *toSprintModel(row))
	}
	return sprints, nil
}

func (s *sprintStore) Count(ctx context.Context) (int64, error) {
	return s.queries.CountSprints(ctx)
}

func toSprintModel(row sqlc.Sprint) *model.Sprint {
	return &model.Sprint{
		ID:          row.ID,
		Name:        row.Name,
		ProjectName: row.ProjectName,
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
