package service

import (
	"context"
	"testing"

	"github.com/lshigami/questionbank/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)

	created, err := ts.setups.CreateSetup(ctx, dto.SetupRequest{SetupText: strPtr("CREATE TABLE t(x int)")})
	require.NoError(t, err)
	assert.Equal(t, &dto.SetupResponse{ID: 1, SetupText: "CREATE TABLE t(x int)"}, created)

	got, err := ts.setups.GetSetup(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := ts.setups.UpdateSetup(ctx, created.ID, dto.SetupRequest{SetupText: strPtr("CREATE TABLE u(y int)")})
	require.NoError(t, err)
	got, err = ts.setups.GetSetup(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, "CREATE TABLE u(y int)", got.SetupText)

	ids, err := ts.setups.GetSetupIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, ids)

	require.NoError(t, ts.setups.DeleteSetup(ctx, created.ID))
	_, err = ts.setups.GetSetup(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetupService_NotFound(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)

	_, err := ts.setups.GetSetup(ctx, 42)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, EntitySetup, nf.Entity)
	assert.Equal(t, uint(42), nf.ID)
	assert.Equal(t, "Setup 42 not found", err.Error())

	_, err = ts.setups.UpdateSetup(ctx, 42, dto.SetupRequest{SetupText: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, ts.setups.DeleteSetup(ctx, 42), ErrNotFound)
}

func TestMCOptionService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)

	req := dto.MCOptionRequest{IsTrue: boolPtr(true), OptionText: strPtr("Paris"), QID: uintPtr(3)}
	created, err := ts.options.CreateMCOption(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, &dto.MCOptionResponse{ID: 1, IsTrue: true, OptionText: "Paris", QID: 3}, created)

	req = dto.MCOptionRequest{IsTrue: boolPtr(false), OptionText: strPtr("Lyon"), QID: uintPtr(4)}
	_, err = ts.options.UpdateMCOption(ctx, created.ID, req)
	require.NoError(t, err)

	got, err := ts.options.GetMCOption(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, &dto.MCOptionResponse{ID: 1, IsTrue: false, OptionText: "Lyon", QID: 4}, got)

	require.NoError(t, ts.options.DeleteMCOption(ctx, created.ID))
	_, err = ts.options.GetMCOption(ctx, created.ID)
	assert.EqualError(t, err, "Multiple choice option 1 not found")
}

func TestRubricService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)

	created, err := ts.rubrics.CreateRubric(ctx, dto.RubricRequest{
		RubricText: strPtr("Mentions normal forms"),
		Points:     floatPtr(1.5),
		QID:        uintPtr(2),
	})
	require.NoError(t, err)

	_, err = ts.rubrics.UpdateRubric(ctx, created.ID, dto.RubricRequest{
		RubricText: strPtr("Mentions 3NF"),
		Points:     floatPtr(2),
		QID:        uintPtr(2),
	})
	require.NoError(t, err)

	got, err := ts.rubrics.GetRubric(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, &dto.RubricResponse{ID: created.ID, RubricText: "Mentions 3NF", Points: 2, QID: 2}, got)

	ids, err := ts.rubrics.GetRubricIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{created.ID}, ids)

	require.NoError(t, ts.rubrics.DeleteRubric(ctx, created.ID))
	assert.ErrorIs(t, ts.rubrics.DeleteRubric(ctx, created.ID), ErrNotFound)
}
