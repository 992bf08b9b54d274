package interviewapimodels

import (
	"net/mail"
	dbmodels "recruit-track-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type ScheduleRequest struct {
	CandidateID      string    `json:"candidate_id"` // ид пользователя-кандидата
	JobID            string    `json:"job_id"`
	ScheduledDate    time.Time `json:"scheduled_date"`
	ScheduledTime    string    `json:"scheduled_time"` // человекочитаемое время, уходит в заметки
	InterviewerName  string    `json:"interviewer_name"`
	InterviewerEmail string    `json:"interviewer_email"`
	MeetingLink      string    `json:"meeting_link"`
	Notes            string    `json:"notes"`
}

func (r ScheduleRequest) Validate() error {
	if r.CandidateID == "" {
		return errors.New("не указан идентификатор кандидата")
	}
	if r.JobID == "" {
		return errors.New("не указан идентификатор вакансии")
	}
	if r.ScheduledDate.IsZero() {
		return errors.New("не указана дата интервью")
	}
	if r.InterviewerName == "" {
		return errors.New("не указано имя интервьюера")
	}
	if _, err := mail.ParseAddress(r.InterviewerEmail); err != nil {
		return errors.New("почта интервьюера имеет неправильный формат")
	}
	return nil
}

type ConfirmRequest struct {
	MeetingLink     string `json:"meeting_link"`
	AdditionalNotes string `json:"additional_notes"`
}

type InterviewView struct {
	ID               string    `json:"id"`
	ApplicationID    string    `json:"application_id"`
	CandidateName    string    `json:"candidate_name"`
	CandidateEmail   string    `json:"candidate_email"`
	JobTitle         string    `json:"job_title"`
	JobDepartment    string    `json:"job_department"`
	ScheduledDate    time.Time `json:"scheduled_date"`
	ScheduledTime    string    `json:"scheduled_time"`
	InterviewerName  string    `json:"interviewer_name"`
	InterviewerEmail string    `json:"interviewer_email"`
	MeetingLink      string    `json:"meeting_link"`
	Notes            string    `json:"notes"`
	Status           string    `json:"status"`
	StatusName       string    `json:"status_name"`
}

func InterviewConvertExt(rec dbmodels.InterviewExt) InterviewView {
	return InterviewView{
		ID:               rec.ID,
		ApplicationID:    rec.ApplicationID,
		CandidateName:    rec.CandidateFirstName + " " + rec.CandidateLastName,
		CandidateEmail:   rec.CandidateEmail,
		JobTitle:         rec.JobTitle,
		JobDepartment:    rec.JobDepartment,
		ScheduledDate:    rec.ScheduledDate,
		ScheduledTime:    rec.ScheduledDate.Format("03:04 PM"),
		InterviewerName:  rec.InterviewerName,
		InterviewerEmail: rec.InterviewerEmail,
		MeetingLink:      rec.MeetingLink,
		Notes:            rec.Notes,
		Status:           string(rec.Status),
		StatusName:       rec.Status.ToHuman(),
	}
}
