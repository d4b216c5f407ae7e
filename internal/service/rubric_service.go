package service

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/lshigami/questionbank/internal/dto"
	"github.com/lshigami/questionbank/internal/model"
	"github.com/lshigami/questionbank/internal/repository"
)

type RubricService interface {
	CreateRubric(ctx context.Context, req dto.RubricRequest) (*dto.RubricResponse, error)
	GetRubric(ctx context.Context, id uint) (*dto.RubricResponse, error)
	GetRubricIDs(ctx context.Context) ([]uint, error)
	UpdateRubric(ctx context.Context, id uint, req dto.RubricRequest) (*dto.RubricResponse, error)
	DeleteRubric(ctx context.Context, id uint) error
}

type rubricService struct {
	repo repository.RubricRepository
}

func NewRubricService(repo repository.RubricRepository) RubricService {
	return &rubricService{repo: repo}
}

func (s *rubricService) CreateRubric(ctx context.Context, req dto.RubricRequest) (*dto.RubricResponse, error) {
	rubric := model.Rubric{RubricText: *req.RubricText, Points: *req.Points, QID: *req.QID}
	if err := s.repo.Create(ctx, &rubric); err != nil {
		return nil, storeError(EntityRubric, "create", err)
	}
	return toRubricResponse(&rubric)
}

func (s *rubricService) GetRubric(ctx context.Context, id uint) (*dto.RubricResponse, error) {
	rubric, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(EntityRubric, id, "find", err)
	}
	return toRubricResponse(rubric)
}

func (s *rubricService) GetRubricIDs(ctx context.Context) ([]uint, error) {
	ids, err := s.repo.FindAllIDs(ctx)
	if err != nil {
		return nil, storeError(EntityRubric, "list", err)
	}
	return ids, nil
}

func (s *rubricService) UpdateRubric(ctx context.Context, id uint, req dto.RubricRequest) (*dto.RubricResponse, error) {
	rubric, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(EntityRubric, id, "find", err)
	}
	rubric.RubricText = *req.RubricText
	rubric.Points = *req.Points
	rubric.QID = *req.QID
	if err := s.repo.Update(ctx, rubric); err != nil {
		return nil, lookupError(EntityRubric, id, "update", err)
	}
	return toRubricResponse(rubric)
}

func (s *rubricService) DeleteRubric(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return lookupError(EntityRubric, id, "delete", err)
	}
	return nil
}

func toRubricResponse(rubric *model.Rubric) (*dto.RubricResponse, error) {
	var resp dto.RubricResponse
	if err := copier.Copy(&resp, rubric); err != nil {
		return nil, err
	}
	return &resp, nil
}
