package workers_test

import (
	"context"
	"testing"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/workers"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCleanupWorker_Cleanup(t *testing.T) {
	db := helpers.NewTestDB(t)
	user := helpers.CreateUser(t, db, "alice", "password123", models.RoleJobSeekerID, false)

	stale := &models.Token{UserID: user.ID, Token: "stale", CreatedAt: time.Now().Add(-48 * time.Hour)}
	fresh := &models.Token{UserID: user.ID, Token: "fresh"}
	require.NoError(t, db.Create(stale).Error)
	require.NoError(t, db.Create(fresh).Error)

	repo := repositories.NewTokenRepository()
	worker := workers.NewTokenCleanupWorker(db, repo, 24*time.Hour, time.Hour)

	assert.Equal(t, int64(1), worker.Cleanup(context.Background()))

	_, err := repo.FindByValue(db, "stale")
	assert.ErrorIs(t, err, repositories.ErrTokenNotFound)
	_, err = repo.FindByValue(db, "fresh")
	assert.NoError(t, err)

	assert.Zero(t, worker.Cleanup(context.Background()))
}
