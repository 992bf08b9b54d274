package queryapimodels

import (
	"recruit-track-backend/models"
	dbmodels "recruit-track-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type QueryData struct {
	ToUserID    string               `json:"to_user_id"`
	JobID       string               `json:"job_id"`
	CandidateID string               `json:"candidate_id"`
	InterviewID string               `json:"interview_id"`
	Subject     string               `json:"subject"`
	Message     string               `json:"message"`
	Priority    models.QueryPriority `json:"priority"`
	Category    models.QueryCategory `json:"category"`
}

func (r QueryData) Validate() error {
	if r.ToUserID == "" {
		return errors.New("не указан получатель")
	}
	if r.Subject == "" {
		return errors.New("не указана тема")
	}
	if r.Message == "" {
		return errors.New("не указан текст сообщения")
	}
	if !r.Priority.IsValid() {
		return errors.New("неизвестный приоритет")
	}
	if !r.Category.IsValid() {
		return errors.New("неизвестная категория")
	}
	return nil
}

type RespondRequest struct {
	Message string `json:"message"`
}

func (r RespondRequest) Validate() error {
	if r.Message == "" {
		return errors.New("не указан текст ответа")
	}
	return nil
}

type StatusRequest struct {
	Status models.QueryStatus `json:"status"`
}

func (r StatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("неизвестный статус")
	}
	return nil
}

type ResponseView struct {
	ID          string    `json:"id"`
	QueryID     string    `json:"query_id"`
	ResponderID string    `json:"responder_id"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

func ResponseConvert(rec dbmodels.QueryResponse) ResponseView {
	return ResponseView{
		ID:          rec.ID,
		QueryID:     rec.QueryID,
		ResponderID: rec.ResponderID,
		Message:     rec.Message,
		IsRead:      rec.IsRead,
		CreatedAt:   rec.CreatedAt,
	}
}

type QueryView struct {
	ID           string         `json:"id"`
	FromUserID   string         `json:"from_user_id"`
	FromUserName string         `json:"from_user_name"`
	ToUserID     string         `json:"to_user_id"`
	ToUserName   string         `json:"to_user_name"`
	Subject      string         `json:"subject"`
	Message      string         `json:"message"`
	Priority     string         `json:"priority"`
	Category     string         `json:"category"`
	Status       string         `json:"status"`
	StatusName   string         `json:"status_name"`
	IsOwner      bool           `json:"is_owner"`
	Responses    []ResponseView `json:"responses"`
	CreatedAt    time.Time      `json:"created_at"`
}

func QueryConvert(rec dbmodels.Query, forUserID string, responses []dbmodels.QueryResponse) QueryView {
	view := QueryView{
		ID:           rec.ID,
		FromUserID:   rec.FromUserID,
		FromUserName: "Unknown",
		ToUserID:     rec.ToUserID,
		ToUserName:   "Unknown",
		Subject:      rec.Subject,
		Message:      rec.Message,
		Priority:     string(rec.Priority),
		Category:     string(rec.Category),
		Status:       string(rec.Status),
		StatusName:   rec.Status.ToHuman(),
		IsOwner:      rec.FromUserID == forUserID,
		Responses:    make([]ResponseView, 0, len(responses)),
		CreatedAt:    rec.CreatedAt,
	}
	if rec.FromUser != nil {
		view.FromUserName = rec.FromUser.GetFullName()
	}
	if rec.ToUser != nil {
		view.ToUserName = rec.ToUser.GetFullName()
	}
	for _, resp := range responses {
		view.Responses = append(view.Responses, ResponseConvert(resp))
	}
	return view
}
