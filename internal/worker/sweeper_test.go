package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/rufomartins/talent-nexus-notifier/internal/deadline"
	mocks "github.com/rufomartins/talent-nexus-notifier/internal/mocks/worker"
	"github.com/rufomartins/talent-nexus-notifier/internal/model"
	notifrepo "github.com/rufomartins/talent-nexus-notifier/internal/repository/notification"
)

func setupSweeper(t *testing.T) (*Sweeper, *mocks.MockassignmentSource, *mocks.MocksweepService) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockassignmentSource(ctrl)
	service := mocks.NewMocksweepService(ctrl)

	s := NewSweeper(
		source,
		service,
		deadline.NewClassifier(3),
		time.Minute,
		15*time.Minute,
		retry.Strategy{Attempts: 1, Delay: time.Millisecond},
	)

	return s, source, service
}

func openAssignment(dueAt time.Time) model.Assignment {
	return model.Assignment{
		ID:      uuid.New(),
		TaskID:  uuid.New(),
		UserID:  uuid.New(),
		Role:    "translator",
		DueAt:   dueAt,
		Status:  model.AssignmentStatusOpen,
		Channel: "email",
		To:      "user@example.com",
	}
}

func TestSweeper_Sweep_EnqueuesWarning(t *testing.T) {
	s, source, service := setupSweeper(t)

	a := openAssignment(time.Now().Add(48 * time.Hour))

	source.EXPECT().ListOpen(gomock.Any()).Return([]model.Assignment{a}, nil)
	service.EXPECT().HasRecord(gomock.Any(), model.DedupeKey(a.ID, model.TypeDeadlineWarning)).Return(false, nil)
	service.EXPECT().
		Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ retry.Strategy, n model.Notification) (uuid.UUID, error) {
			assert.Equal(t, model.TypeDeadlineWarning, n.Type)
			assert.Equal(t, a.UserID, n.UserID)
			assert.Equal(t, a.Channel, n.Channel)
			assert.Equal(t, a.To, n.To)
			assert.Equal(t, model.DedupeKey(a.ID, model.TypeDeadlineWarning), n.DedupeKey)
			return uuid.New(), nil
		})
	service.EXPECT().RepublishStale(gomock.Any(), gomock.Any(), 15*time.Minute).Return(0, nil)

	require.NoError(t, s.Sweep(context.Background()))
}

func TestSweeper_Sweep_EnqueuesOverdue(t *testing.T) {
	s, source, service := setupSweeper(t)

	a := openAssignment(time.Now().Add(-time.Hour))

	source.EXPECT().ListOpen(gomock.Any()).Return([]model.Assignment{a}, nil)
	service.EXPECT().HasRecord(gomock.Any(), model.DedupeKey(a.ID, model.TypeDeadlineOverdue)).Return(false, nil)
	service.EXPECT().
		Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ retry.Strategy, n model.Notification) (uuid.UUID, error) {
			assert.Equal(t, model.TypeDeadlineOverdue, n.Type)
			return uuid.New(), nil
		})
	service.EXPECT().RepublishStale(gomock.Any(), gomock.Any(), 15*time.Minute).Return(0, nil)

	require.NoError(t, s.Sweep(context.Background()))
}

func TestSweeper_Sweep_SkipsFarDeadlines(t *testing.T) {
	s, source, service := setupSweeper(t)

	a := openAssignment(time.Now().Add(10 * 24 * time.Hour))

	// No dedupe check and no enqueue for assignments comfortably out.
	source.EXPECT().ListOpen(gomock.Any()).Return([]model.Assignment{a}, nil)
	service.EXPECT().RepublishStale(gomock.Any(), gomock.Any(), 15*time.Minute).Return(0, nil)

	require.NoError(t, s.Sweep(context.Background()))
}

func TestSweeper_Sweep_SecondSweepIsIdempotent(t *testing.T) {
	s, source, service := setupSweeper(t)

	a := openAssignment(time.Now().Add(48 * time.Hour))
	key := model.DedupeKey(a.ID, model.TypeDeadlineWarning)

	source.EXPECT().ListOpen(gomock.Any()).Return([]model.Assignment{a}, nil).Times(2)
	gomock.InOrder(
		service.EXPECT().HasRecord(gomock.Any(), key).Return(false, nil),
		service.EXPECT().HasRecord(gomock.Any(), key).Return(true, nil),
	)
	service.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	service.EXPECT().RepublishStale(gomock.Any(), gomock.Any(), 15*time.Minute).Return(0, nil).Times(2)

	require.NoError(t, s.Sweep(context.Background()))
	require.NoError(t, s.Sweep(context.Background()))
}

func TestSweeper_Sweep_ConcurrentEnqueueLosesRaceQuietly(t *testing.T) {
	s, source, service := setupSweeper(t)

	a := openAssignment(time.Now().Add(-time.Hour))

	source.EXPECT().ListOpen(gomock.Any()).Return([]model.Assignment{a}, nil)
	service.EXPECT().HasRecord(gomock.Any(), gomock.Any()).Return(false, nil)
	service.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, notifrepo.ErrAlreadyPending)
	service.EXPECT().RepublishStale(gomock.Any(), gomock.Any(), 15*time.Minute).Return(0, nil)

	require.NoError(t, s.Sweep(context.Background()))
}

func TestSweeper_Sweep_ListOpenError(t *testing.T) {
	s, source, _ := setupSweeper(t)

	source.EXPECT().ListOpen(gomock.Any()).Return(nil, errors.New("db error"))

	err := s.Sweep(context.Background())
	assert.Error(t, err)
}
