package jobs

import (
	"encoding/json"

	"Backend-Masons-Leads/src/models"

	"github.com/hibiken/asynq"
)

const TypeArchiveLead = "lead:archive"

type ArchivePayload struct {
	SubmissionID string   `json:"submissionId"`
	UserType     string   `json:"userType"`
	UniqueValue  string   `json:"uniqueValue"`
	Row          []string `json:"row"`
	Timestamp    string   `json:"timestamp"`
}

func NewArchiveLeadTask(submissionID string, lead models.Lead) (*asynq.Task, error) {
	row := lead.Row()
	payload, err := json.Marshal(ArchivePayload{
		SubmissionID: submissionID,
		UserType:     string(lead.Role()),
		UniqueValue:  lead.UniqueValue(),
		Row:          row,
		Timestamp:    lastCell(row),
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeArchiveLead, payload), nil
}

// The timestamp is the last column of every role layout.
func lastCell(row []string) string {
	if len(row) == 0 {
		return ""
	}
	return row[len(row)-1]
}
