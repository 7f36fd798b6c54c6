package assignment

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/rufomartins/talent-nexus-notifier/internal/mocks/service/assignment"
	"github.com/rufomartins/talent-nexus-notifier/internal/model"
	notifrepo "github.com/rufomartins/talent-nexus-notifier/internal/repository/notification"
)

func setupService(t *testing.T) (*Service, *mocks.MockassignmentRepository, *mocks.MocknotificationEnqueuer) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockassignmentRepository(ctrl)
	enqueuer := mocks.NewMocknotificationEnqueuer(ctrl)
	return NewService(repo, enqueuer), repo, enqueuer
}

func TestService_Create_EnqueuesNewAssignment(t *testing.T) {
	svc, repo, enqueuer := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 1}
	a := model.Assignment{
		TaskID:  uuid.New(),
		UserID:  uuid.New(),
		Role:    "translator",
		DueAt:   time.Now().Add(72 * time.Hour),
		Status:  model.AssignmentStatusOpen,
		Channel: "email",
		To:      "user@example.com",
	}

	repo.EXPECT().CreateAssignment(gomock.Any(), a).Return(id, nil)
	enqueuer.EXPECT().
		Enqueue(gomock.Any(), strategy, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ retry.Strategy, n model.Notification) (uuid.UUID, error) {
			assert.Equal(t, model.TypeNewAssignment, n.Type)
			assert.Equal(t, a.UserID, n.UserID)
			assert.Equal(t, a.Channel, n.Channel)
			assert.Equal(t, a.To, n.To)
			assert.Equal(t, model.DedupeKey(id, model.TypeNewAssignment), n.DedupeKey)
			return uuid.New(), nil
		})

	gotID, err := svc.Create(context.Background(), strategy, a)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
}

func TestService_SetStatus_EnqueuesStatusChange(t *testing.T) {
	svc, repo, enqueuer := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 1}
	a := model.Assignment{
		ID:      id,
		UserID:  uuid.New(),
		Role:    "editor",
		Status:  model.AssignmentStatusCompleted,
		Channel: "sms",
		To:      "+15550100",
	}

	repo.EXPECT().UpdateStatus(gomock.Any(), id, model.AssignmentStatusCompleted).Return(nil)
	repo.EXPECT().GetByID(gomock.Any(), id).Return(a, nil)
	enqueuer.EXPECT().
		Enqueue(gomock.Any(), strategy, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ retry.Strategy, n model.Notification) (uuid.UUID, error) {
			assert.Equal(t, model.TypeStatusChange, n.Type)
			assert.Equal(t, a.Channel, n.Channel)
			assert.Equal(t, a.To, n.To)
			return uuid.New(), nil
		})

	err := svc.SetStatus(context.Background(), strategy, id, model.AssignmentStatusCompleted)
	require.NoError(t, err)
}

func TestService_SetStatus_DuplicatePendingIsSkipped(t *testing.T) {
	svc, repo, enqueuer := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 1}
	a := model.Assignment{ID: id, UserID: uuid.New(), Channel: "email", To: "u@example.com"}

	repo.EXPECT().UpdateStatus(gomock.Any(), id, model.AssignmentStatusCompleted).Return(nil)
	repo.EXPECT().GetByID(gomock.Any(), id).Return(a, nil)
	enqueuer.EXPECT().
		Enqueue(gomock.Any(), strategy, gomock.Any()).
		Return(uuid.Nil, notifrepo.ErrAlreadyPending)

	// The unnotified duplicate never fails the status update.
	err := svc.SetStatus(context.Background(), strategy, id, model.AssignmentStatusCompleted)
	require.NoError(t, err)
}

func TestService_Reassign_EnqueuesRoleReassignment(t *testing.T) {
	svc, repo, enqueuer := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 1}
	a := model.Assignment{ID: id, UserID: uuid.New(), Role: "reviewer", Channel: "email", To: "u@example.com"}

	repo.EXPECT().UpdateRole(gomock.Any(), id, "reviewer").Return(nil)
	repo.EXPECT().GetByID(gomock.Any(), id).Return(a, nil)
	enqueuer.EXPECT().
		Enqueue(gomock.Any(), strategy, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ retry.Strategy, n model.Notification) (uuid.UUID, error) {
			assert.Equal(t, model.TypeRoleReassignment, n.Type)
			assert.Equal(t, model.DedupeKey(id, model.TypeRoleReassignment), n.DedupeKey)
			return uuid.New(), nil
		})

	err := svc.Reassign(context.Background(), strategy, id, "reviewer")
	require.NoError(t, err)
}
