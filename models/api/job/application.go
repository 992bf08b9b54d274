package jobapimodels

import (
	dbmodels "recruit-track-backend/models/db"
	"time"
)

type ApplicationView struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	CandidateID string    `json:"candidate_id"`
	Status      string    `json:"status"`
	CoverLetter string    `json:"cover_letter"`
	AppliedAt   time.Time `json:"applied_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func ApplicationConvert(rec dbmodels.Application) ApplicationView {
	return ApplicationView{
		ID:          rec.ID,
		JobID:       rec.JobID,
		CandidateID: rec.CandidateID,
		Status:      string(rec.Status),
		CoverLetter: rec.CoverLetter,
		AppliedAt:   rec.AppliedAt,
		CreatedAt:   rec.CreatedAt,
	}
}
