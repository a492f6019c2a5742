package impl

import (
	"context"
	"strings"
	"testing"

	deliverycontext "soko/internal/delivery/context"
	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/service"
	mockRepo "soko/internal/mocks/repository"
	mockSvc "soko/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTagJobService_SubmitTagJob(t *testing.T) {
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	t.Run("saves processing then publishes", func(t *testing.T) {
		store := mockRepo.NewMockTagJobStore(t)
		publisher := mockSvc.NewMockTagJobPublisher(t)
		productID := uuid.Must(uuid.NewV7())

		var saved *entity.TagJob
		store.EXPECT().SaveTagJob(ctx, mock.AnythingOfType("*entity.TagJob")).
			Run(func(_ context.Context, job *entity.TagJob) { saved = job }).
			Return(nil)
		publisher.EXPECT().
			PublishTagJob(ctx, mock.MatchedBy(func(e *service.TagJobEvent) bool {
				return e.RequestID == "req-42" && e.ProductID == productID.String() && e.Text == "arduino uno"
			})).
			Return(nil)

		id, err := NewTagJobService(store, publisher, testConfig(), testLogger()).SubmitTagJob(ctx, "arduino uno", &productID)
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, id, saved.ID)
		assert.Equal(t, entity.TagJobProcessing, saved.Status)
	})

	t.Run("text limit counts characters", func(t *testing.T) {
		store := mockRepo.NewMockTagJobStore(t)
		publisher := mockSvc.NewMockTagJobPublisher(t)
		store.EXPECT().SaveTagJob(ctx, mock.Anything).Return(nil)
		publisher.EXPECT().PublishTagJob(ctx, mock.Anything).Return(nil)
		service := NewTagJobService(store, publisher, testConfig(), testLogger())

		_, err := service.SubmitTagJob(ctx, strings.Repeat("é", 1000), nil)
		require.NoError(t, err)

		_, err = service.SubmitTagJob(ctx, strings.Repeat("a", 1001), nil)
		assert.ErrorIs(t, err, domainerrors.ErrTextTooLong)
	})

	t.Run("publish failure", func(t *testing.T) {
		store := mockRepo.NewMockTagJobStore(t)
		publisher := mockSvc.NewMockTagJobPublisher(t)
		store.EXPECT().SaveTagJob(ctx, mock.Anything).Return(nil)
		publisher.EXPECT().PublishTagJob(ctx, mock.Anything).Return(errors.New("topic missing"))

		_, err := NewTagJobService(store, publisher, testConfig(), testLogger()).SubmitTagJob(ctx, "relay", nil)
		assert.Error(t, err)
	})
}

func TestTagJobService_GetTagJob(t *testing.T) {
	ctx := context.Background()
	store := mockRepo.NewMockTagJobStore(t)
	store.EXPECT().FindTagJob(ctx, "missing").Return(nil, domainerrors.ErrJobNotFound)

	_, err := NewTagJobService(store, mockSvc.NewMockTagJobPublisher(t), testConfig(), testLogger()).GetTagJob(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrJobNotFound)
}

type tagJobRunnerFixtures struct {
	runner   service.TagJobRunner
	tagger   *mockSvc.MockTagger
	store    *mockRepo.MockTagJobStore
	products *mockRepo.MockProductRepository
}

func createTestTagJobRunner(t *testing.T) tagJobRunnerFixtures {
	fx := tagJobRunnerFixtures{
		tagger:   mockSvc.NewMockTagger(t),
		store:    mockRepo.NewMockTagJobStore(t),
		products: mockRepo.NewMockProductRepository(t),
	}
	fx.runner = NewTagJobRunner(fx.tagger, fx.store, fx.products, testLogger())

	return fx
}

func TestTagJobRunner_RunTagJob(t *testing.T) {
	ctx := context.Background()
	productID := uuid.Must(uuid.NewV7())
	tags := []string{"arduino", "microcontroller"}
	completed := mock.MatchedBy(func(job *entity.TagJob) bool {
		return job.ID == "job-1" && job.Status == entity.TagJobCompleted && len(job.Tags) == 2
	})

	t.Run("writes product tags then completes", func(t *testing.T) {
		fx := createTestTagJobRunner(t)
		fx.tagger.EXPECT().Tag(ctx, "arduino uno").Return(tags)
		fx.products.EXPECT().UpdateProductTags(ctx, productID, tags).Return(nil)
		fx.store.EXPECT().SaveTagJob(ctx, completed).Return(nil)

		err := fx.runner.RunTagJob(ctx, &service.TagJobEvent{JobID: "job-1", Text: "arduino uno", ProductID: productID.String()})
		require.NoError(t, err)
	})

	t.Run("deleted product still completes the job", func(t *testing.T) {
		fx := createTestTagJobRunner(t)
		fx.tagger.EXPECT().Tag(ctx, "arduino uno").Return(tags)
		fx.products.EXPECT().UpdateProductTags(ctx, productID, tags).Return(domainerrors.ErrProductNotFound)
		fx.store.EXPECT().SaveTagJob(ctx, completed).Return(nil)

		err := fx.runner.RunTagJob(ctx, &service.TagJobEvent{JobID: "job-1", Text: "arduino uno", ProductID: productID.String()})
		require.NoError(t, err)
	})

	t.Run("store failure is retryable", func(t *testing.T) {
		fx := createTestTagJobRunner(t)
		fx.tagger.EXPECT().Tag(ctx, "arduino uno").Return(tags)
		fx.store.EXPECT().SaveTagJob(ctx, completed).Return(errors.New("valkey unavailable"))

		err := fx.runner.RunTagJob(ctx, &service.TagJobEvent{JobID: "job-1", Text: "arduino uno"})
		require.Error(t, err)
		assert.True(t, service.IsRetryableError(err))
	})

	t.Run("malformed events are dropped", func(t *testing.T) {
		fx := createTestTagJobRunner(t)

		err := fx.runner.RunTagJob(ctx, &service.TagJobEvent{Text: "no id"})
		require.Error(t, err)
		assert.False(t, service.IsRetryableError(err))

		err = fx.runner.RunTagJob(ctx, &service.TagJobEvent{JobID: "job-2", ProductID: "not-a-uuid"})
		require.Error(t, err)
		assert.False(t, service.IsRetryableError(err))
	})
}
