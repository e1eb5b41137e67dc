package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"Backend-Masons-Leads/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LeadInserter is the part of *mongo.Collection the archive handler needs.
type LeadInserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

func HandleArchiveLeadTask(leads LeadInserter) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload ArchivePayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return fmt.Errorf("decode archive payload: %v: %w", err, asynq.SkipRetry)
		}

		doc := models.ArchivedLead{
			SubmissionID: payload.SubmissionID,
			UserType:     payload.UserType,
			UniqueValue:  payload.UniqueValue,
			Row:          payload.Row,
			Timestamp:    payload.Timestamp,
			ArchivedAt:   time.Now(),
		}

		if _, err := leads.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				log.Println("⚠️ Lead already archived. Skipping task:", payload.SubmissionID)
				return nil
			}
			log.Println("❌ Failed to archive lead:", err)
			return err
		}

		log.Println("✅ Lead archived:", payload.SubmissionID)
		return nil
	}
}

// RegisterHandlers binds every task type to its handler.
func RegisterHandlers(mux *asynq.ServeMux, leads LeadInserter) {
	mux.HandleFunc(TypeArchiveLead, HandleArchiveLeadTask(leads))
}
