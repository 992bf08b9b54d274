package uploadapimodels

import (
	"fmt"
	dbmodels "recruit-track-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type UploadRequest struct {
	CandidateUserID string `json:"candidate_user_id"`
	JobID           string `json:"job_id"` // опционально: общая заявка без вакансии
	Notes           string `json:"notes"`
}

func (r UploadRequest) Validate() error {
	if r.CandidateUserID == "" {
		return errors.New("не указан идентификатор кандидата")
	}
	return nil
}

type ShortlistRequest struct {
	ReviewNotes string `json:"review_notes"`
}

type UploadView struct {
	ID             string    `json:"id"`
	CandidateID    string    `json:"candidate_id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	UploaderName   string    `json:"uploader_name"`
	JobTitle       string    `json:"job_title"`
	FileName       string    `json:"file_name"`
	FileURL        string    `json:"file_url"`
	FileSize       int64     `json:"file_size"`
	Notes          string    `json:"notes"`
	Status         string    `json:"status"`
	StatusName     string    `json:"status_name"`
	ReviewerName   string    `json:"reviewer_name,omitempty"`
	ReviewNotes    string    `json:"review_notes,omitempty"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

func UploadConvertExt(rec dbmodels.ResumeUploadExt) UploadView {
	view := UploadView{
		ID:             rec.ID,
		CandidateID:    rec.CandidateID,
		CandidateName:  fmt.Sprintf("%s %s", rec.CandidateFirstName, rec.CandidateLastName),
		CandidateEmail: rec.CandidateEmail,
		UploaderName:   fmt.Sprintf("%s %s", rec.UploaderFirstName, rec.UploaderLastName),
		JobTitle:       rec.JobTitle,
		FileName:       rec.FileName,
		FileURL:        rec.FileURL,
		FileSize:       rec.FileSize,
		Notes:          rec.Notes,
		Status:         string(rec.Status),
		StatusName:     rec.Status.ToHuman(),
		ReviewNotes:    rec.ReviewNotes,
		UploadedAt:     rec.CreatedAt,
	}
	if view.JobTitle == "" {
		view.JobTitle = "General Application"
	}
	if rec.ReviewerFirstName != "" || rec.ReviewerLastName != "" {
		view.ReviewerName = fmt.Sprintf("%s %s", rec.ReviewerFirstName, rec.ReviewerLastName)
	}
	return view
}
