package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ArchivedLead is the audit copy of an appended sheet row.
type ArchivedLead struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SubmissionID string             `bson:"submissionId" json:"submissionId"`
	UserType     string             `bson:"userType" json:"userType"`
	UniqueValue  string             `bson:"uniqueValue" json:"uniqueValue"`
	Row          []string           `bson:"row" json:"row"`
	Timestamp    string             `bson:"timestamp" json:"timestamp"`
	ArchivedAt   time.Time          `bson:"archivedAt" json:"archivedAt"`
}
