package service

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/lshigami/questionbank/internal/dto"
	"github.com/lshigami/questionbank/internal/model"
	"github.com/lshigami/questionbank/internal/repository"
)

// MCOptionService manages options directly. The owning question is not
// checked; options are removed together with their question.
type MCOptionService interface {
	CreateMCOption(ctx context.Context, req dto.MCOptionRequest) (*dto.MCOptionResponse, error)
	GetMCOption(ctx context.Context, id uint) (*dto.MCOptionResponse, error)
	GetMCOptionIDs(ctx context.Context) ([]uint, error)
	UpdateMCOption(ctx context.Context, id uint, req dto.MCOptionRequest) (*dto.MCOptionResponse, error)
	DeleteMCOption(ctx context.Context, id uint) error
}

type mcOptionService struct {
	repo repository.MCOptionRepository
}

func NewMCOptionService(repo repository.MCOptionRepository) MCOptionService {
	return &mcOptionService{repo: repo}
}

func (s *mcOptionService) CreateMCOption(ctx context.Context, req dto.MCOptionRequest) (*dto.MCOptionResponse, error) {
	option := model.MCOption{IsTrue: *req.IsTrue, OptionText: *req.OptionText, QID: *req.QID}
	if err := s.repo.Create(ctx, &option); err != nil {
		return nil, storeError(EntityMCOption, "create", err)
	}
	return toMCOptionResponse(&option)
}

func (s *mcOptionService) GetMCOption(ctx context.Context, id uint) (*dto.MCOptionResponse, error) {
	option, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(EntityMCOption, id, "find", err)
	}
	return toMCOptionResponse(option)
}

func (s *mcOptionService) GetMCOptionIDs(ctx context.Context) ([]uint, error) {
	ids, err := s.repo.FindAllIDs(ctx)
	if err != nil {
		return nil, storeError(EntityMCOption, "list", err)
	}
	return ids, nil
}

func (s *mcOptionService) UpdateMCOption(ctx context.Context, id uint, req dto.MCOptionRequest) (*dto.MCOptionResponse, error) {
	option, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(EntityMCOption, id, "find", err)
	}
	option.IsTrue = *req.IsTrue
	option.OptionText = *req.OptionText
	option.QID = *req.QID
	if err := s.repo.Update(ctx, option); err != nil {
		return nil, lookupError(EntityMCOption, id, "update", err)
	}
	return toMCOptionResponse(option)
}

func (s *mcOptionService) DeleteMCOption(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return lookupError(EntityMCOption, id, "delete", err)
	}
	return nil
}

func toMCOptionResponse(option *model.MCOption) (*dto.MCOptionResponse, error) {
	var resp dto.MCOptionResponse
	if err := copier.Copy(&resp, option); err != nil {
		return nil, err
	}
	return &resp, nil
}
