package service

import (
	"context"
	"testing"

	"github.com/lshigami/questionbank/database"
	"github.com/lshigami/questionbank/internal/dto"
	"github.com/lshigami/questionbank/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServices struct {
	db        *gorm.DB
	setups    SetupService
	options   MCOptionService
	rubrics   RubricService
	questions QuestionService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db, err := database.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	setupRepo := repository.NewSetupRepository(db)
	optionRepo := repository.NewMCOptionRepository(db)
	rubricRepo := repository.NewRubricRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	return &testServices{
		db:        db,
		setups:    NewSetupService(setupRepo),
		options:   NewMCOptionService(optionRepo),
		rubrics:   NewRubricService(rubricRepo),
		questions: NewQuestionService(db, questionRepo, optionRepo, rubricRepo, setupRepo),
	}
}

func strPtr(s string) *string     { return &s }
func uintPtr(u uint) *uint        { return &u }
func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func (ts *testServices) mustCreateSetup(t *testing.T, text string) uint {
	t.Helper()
	resp, err := ts.setups.CreateSetup(context.Background(), dto.SetupRequest{SetupText: strPtr(text)})
	require.NoError(t, err)
	return resp.ID
}
