package service

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/lshigami/questionbank/internal/dto"
	"github.com/lshigami/questionbank/internal/model"
	"github.com/lshigami/questionbank/internal/repository"
)

type SetupService interface {
	CreateSetup(ctx context.Context, req dto.SetupRequest) (*dto.SetupResponse, error)
	GetSetup(ctx context.Context, id uint) (*dto.SetupResponse, error)
	GetSetupIDs(ctx context.Context) ([]uint, error)
	UpdateSetup(ctx context.Context, id uint, req dto.SetupRequest) (*dto.SetupResponse, error)
	DeleteSetup(ctx context.Context, id uint) error
}

type setupService struct {
	repo repository.SetupRepository
}

func NewSetupService(repo repository.SetupRepository) SetupService {
	return &setupService{repo: repo}
}

func (s *setupService) CreateSetup(ctx context.Context, req dto.SetupRequest) (*dto.SetupResponse, error) {
	setup := model.Setup{SetupText: *req.SetupText}
	if err := s.repo.Create(ctx, &setup); err != nil {
		return nil, storeError(EntitySetup, "create", err)
	}
	return toSetupResponse(&setup)
}

func (s *setupService) GetSetup(ctx context.Context, id uint) (*dto.SetupResponse, error) {
	setup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(EntitySetup, id, "find", err)
	}
	return toSetupResponse(setup)
}

func (s *setupService) GetSetupIDs(ctx context.Context) ([]uint, error) {
	ids, err := s.repo.FindAllIDs(ctx)
	if err != nil {
		return nil, storeError(EntitySetup, "list", err)
	}
	return ids, nil
}

func (s *setupService) UpdateSetup(ctx context.Context, id uint, req dto.SetupRequest) (*dto.SetupResponse, error) {
	setup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(EntitySetup, id, "find", err)
	}
	setup.SetupText = *req.SetupText
	if err := s.repo.Update(ctx, setup); err != nil {
		return nil, lookupError(EntitySetup, id, "update", err)
	}
	return toSetupResponse(setup)
}

// DeleteSetup leaves sql questions that reference the setup untouched.
func (s *setupService) DeleteSetup(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return lookupError(EntitySetup, id, "delete", err)
	}
	return nil
}

func toSetupResponse(setup *model.Setup) (*dto.SetupResponse, error) {
	var resp dto.SetupResponse
	if err := copier.Copy(&resp, setup); err != nil {
		return nil, err
	}
	return &resp, nil
}
