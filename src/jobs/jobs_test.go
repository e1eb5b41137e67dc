package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"Backend-Masons-Leads/src/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MockInserter struct{ mock.Mock }

func (m *MockInserter) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

type MockEnqueuer struct{ mock.Mock }

func (m *MockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task.Type(), len(opts))
	return &asynq.TaskInfo{}, args.Error(0)
}

var lead = models.AdvertiserLead{Brand: "Acme", Geolocation: "EU", Contacts: "@acme", Timestamp: "2026-01-01T00:00:00.000Z"}

func TestNewArchiveLeadTask(t *testing.T) {
	task, err := NewArchiveLeadTask("sub-1", lead)
	require.NoError(t, err)
	assert.Equal(t, TypeArchiveLead, task.Type())

	var payload ArchivePayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "sub-1", payload.SubmissionID)
	assert.Equal(t, "advertiser", payload.UserType)
	assert.Equal(t, "@acme", payload.UniqueValue)
	assert.Equal(t, []string{"advertiser", "Acme", "EU", "@acme", "2026-01-01T00:00:00.000Z"}, payload.Row)
	assert.Equal(t, "2026-01-01T00:00:00.000Z", payload.Timestamp)
}

func TestHandleArchiveLeadTask(t *testing.T) {
	ctx := context.Background()
	task, err := NewArchiveLeadTask("sub-1", lead)
	require.NoError(t, err)

	t.Run("InsertsArchivedLead", func(t *testing.T) {
		leads := new(MockInserter)
		leads.On("InsertOne", ctx, mock.MatchedBy(func(doc models.ArchivedLead) bool {
			return doc.SubmissionID == "sub-1" && doc.Timestamp == "2026-01-01T00:00:00.000Z" && len(doc.Row) == 5
		})).Return(&mongo.InsertOneResult{}, nil)

		require.NoError(t, HandleArchiveLeadTask(leads)(ctx, task))
		leads.AssertExpectations(t)
	})

	t.Run("InsertErrorIsRetried", func(t *testing.T) {
		leads := new(MockInserter)
		leads.On("InsertOne", ctx, mock.Anything).Return(nil, errors.New("not primary"))

		assert.Error(t, HandleArchiveLeadTask(leads)(ctx, task))
	})

	t.Run("BadPayloadSkipsRetry", func(t *testing.T) {
		leads := new(MockInserter)

		err := HandleArchiveLeadTask(leads)(ctx, asynq.NewTask(TypeArchiveLead, []byte("{")))

		assert.ErrorIs(t, err, asynq.SkipRetry)
		leads.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
	})
}

func TestArchiveEnqueuer(t *testing.T) {
	ctx := context.Background()

	t.Run("Enqueues", func(t *testing.T) {
		client := new(MockEnqueuer)
		client.On("EnqueueContext", ctx, TypeArchiveLead, 2).Return(nil).Once()

		NewArchiveEnqueuer(client).Archive(ctx, "sub-1", lead)
		client.AssertExpectations(t)
	})

	t.Run("EnqueueErrorIsSwallowed", func(t *testing.T) {
		client := new(MockEnqueuer)
		client.On("EnqueueContext", ctx, TypeArchiveLead, 2).Return(errors.New("redis down"))

		assert.NotPanics(t, func() { NewArchiveEnqueuer(client).Archive(ctx, "sub-1", lead) })
	})

	t.Run("NilClient", func(t *testing.T) {
		assert.NotPanics(t, func() { NewArchiveEnqueuer(nil).Archive(ctx, "sub-1", lead) })
	})
}
