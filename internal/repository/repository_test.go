package repository

import (
	"context"
	"testing"

	"github.com/lshigami/questionbank/database"
	"github.com/lshigami/questionbank/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

func TestSetupRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewSetupRepository(newTestDB(t))

	setup := &model.Setup{SetupText: "CREATE TABLE t(x int)"}
	require.NoError(t, repo.Create(ctx, setup))
	assert.Equal(t, uint(1), setup.ID)

	got, err := repo.FindByID(ctx, setup.ID)
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE t(x int)", got.SetupText)

	got.SetupText = "CREATE TABLE u(y int)"
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.FindByID(ctx, setup.ID)
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE u(y int)", got.SetupText)

	require.NoError(t, repo.Delete(ctx, setup.ID))
	_, err = repo.FindByID(ctx, setup.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, setup.ID), ErrNotFound)
}

func TestSetupRepository_FindAllIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewSetupRepository(newTestDB(t))

	ids, err := repo.FindAllIDs(ctx)
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)

	for _, text := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, &model.Setup{SetupText: text}))
	}
	require.NoError(t, repo.Delete(ctx, 2))

	ids, err = repo.FindAllIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 3}, ids)
}

func TestMCOptionRepository_UpdateWritesFalse(t *testing.T) {
	ctx := context.Background()
	repo := NewMCOptionRepository(newTestDB(t))

	option := &model.MCOption{IsTrue: true, OptionText: "4", QID: 1}
	require.NoError(t, repo.Create(ctx, option))

	option.IsTrue = false
	option.OptionText = "5"
	option.QID = 2
	require.NoError(t, repo.Update(ctx, option))

	got, err := repo.FindByID(ctx, option.ID)
	require.NoError(t, err)
	assert.False(t, got.IsTrue)
	assert.Equal(t, "5", got.OptionText)
	assert.Equal(t, uint(2), got.QID)
}

func TestMCOptionRepository_ByQuestion(t *testing.T) {
	ctx := context.Background()
	repo := NewMCOptionRepository(newTestDB(t))

	for i, qid := range []uint{7, 7, 8, 7} {
		require.NoError(t, repo.Create(ctx, &model.MCOption{IsTrue: i%2 == 0, OptionText: "opt", QID: qid}))
	}

	options, err := repo.FindByQuestionID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.Equal(t, uint(1), options[0].ID)
	assert.Equal(t, uint(4), options[2].ID)

	n, err := repo.DeleteByQuestionID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	ids, err := repo.FindAllIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{3}, ids)

	n, err = repo.DeleteByQuestionID(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRubricRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewRubricRepository(newTestDB(t))

	rubric := &model.Rubric{RubricText: "mentions joins", Points: 2.5, QID: 3}
	require.NoError(t, repo.Create(ctx, rubric))

	got, err := repo.FindByID(ctx, rubric.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got.Points)

	got.Points = 0
	got.RubricText = "no credit"
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.FindByID(ctx, rubric.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Points)
	assert.Equal(t, "no credit", got.RubricText)

	rubrics, err := repo.FindByQuestionID(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, rubrics, 1)

	n, err := repo.DeleteByQuestionID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = repo.FindByID(ctx, rubric.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuestionRepository_UpdateKeepsType(t *testing.T) {
	ctx := context.Background()
	repo := NewQuestionRepository(newTestDB(t))

	q := &model.Question{
		Type:         model.QuestionTypeSQL,
		QuestionText: "Select all rows",
		Points:       5,
		SetupID:      uintPtr(1),
		Answer:       strPtr("SELECT * FROM t"),
	}
	require.NoError(t, repo.Create(ctx, q))

	update := &model.Question{
		ID:           q.ID,
		Type:         model.QuestionTypeSA,
		QuestionText: "Select nothing",
		Points:       1,
	}
	require.NoError(t, repo.Update(ctx, update))

	got, err := repo.FindByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, model.QuestionTypeSQL, got.Type)
	assert.Equal(t, "Select nothing", got.QuestionText)
	assert.Equal(t, 1, got.Points)
	assert.Nil(t, got.SetupID)
	assert.Nil(t, got.Answer)
}

func TestQuestionRepository_FindByType(t *testing.T) {
	ctx := context.Background()
	repo := NewQuestionRepository(newTestDB(t))

	for _, qt := range []model.QuestionType{model.QuestionTypeMC, model.QuestionTypeSA, model.QuestionTypeMC} {
		require.NoError(t, repo.Create(ctx, &model.Question{Type: qt, QuestionText: string(qt), Points: 1}))
	}

	mc, err := repo.FindByType(ctx, model.QuestionTypeMC)
	require.NoError(t, err)
	require.Len(t, mc, 2)
	assert.Equal(t, uint(1), mc[0].ID)
	assert.Equal(t, uint(3), mc[1].ID)

	sql, err := repo.FindByType(ctx, model.QuestionTypeSQL)
	require.NoError(t, err)
	assert.Empty(t, sql)
}

func TestQuestionRepository_TxRollback(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	questions := NewQuestionRepository(db)
	options := NewMCOptionRepository(db)

	q := &model.Question{Type: model.QuestionTypeMC, QuestionText: "pick", Points: 1}
	require.NoError(t, questions.Create(ctx, q))
	require.NoError(t, options.Create(ctx, &model.MCOption{OptionText: "a", QID: q.ID}))

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := options.WithTx(tx).DeleteByQuestionID(ctx, q.ID); err != nil {
			return err
		}
		return questions.WithTx(tx).Delete(ctx, q.ID+100)
	})
	assert.ErrorIs(t, err, ErrNotFound)

	remaining, err := options.FindByQuestionID(ctx, q.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
