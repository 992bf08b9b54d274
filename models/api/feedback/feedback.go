package feedbackapimodels

import (
	"recruit-track-backend/models"
	dbmodels "recruit-track-backend/models/db"
	"time"
)

type FeedbackData struct {
	InterviewID         string                `json:"interview_id"`
	CandidateID         string                `json:"candidate_id"`
	JobID               string                `json:"job_id"`
	InterviewerName     string                `json:"interviewer_name"`
	OverallRating       int                   `json:"overall_rating"`
	TechnicalSkills     int                   `json:"technical_skills"`
	CommunicationSkills int                   `json:"communication_skills"`
	ProblemSolving      int                   `json:"problem_solving"`
	CulturalFit         int                   `json:"cultural_fit"`
	Strengths           string                `json:"strengths"`
	Weaknesses          string                `json:"weaknesses"`
	Recommendation      models.Recommendation `json:"recommendation"`
	AdditionalComments  string                `json:"additional_comments"`
}

func (r FeedbackData) ToModel(interviewerID string) dbmodels.Feedback {
	return dbmodels.Feedback{
		InterviewID:         r.InterviewID,
		CandidateID:         r.CandidateID,
		JobID:               r.JobID,
		InterviewerID:       interviewerID,
		InterviewerName:     r.InterviewerName,
		OverallRating:       r.OverallRating,
		TechnicalSkills:     r.TechnicalSkills,
		CommunicationSkills: r.CommunicationSkills,
		ProblemSolving:      r.ProblemSolving,
		CulturalFit:         r.CulturalFit,
		Strengths:           r.Strengths,
		Weaknesses:          r.Weaknesses,
		Recommendation:      r.Recommendation,
		AdditionalComments:  r.AdditionalComments,
	}
}

// UpdateData — частичное обновление; nil означает "не менять"
type UpdateData struct {
	OverallRating       *int                   `json:"overall_rating"`
	TechnicalSkills     *int                   `json:"technical_skills"`
	CommunicationSkills *int                   `json:"communication_skills"`
	ProblemSolving      *int                   `json:"problem_solving"`
	CulturalFit         *int                   `json:"cultural_fit"`
	Strengths           *string                `json:"strengths"`
	Weaknesses          *string                `json:"weaknesses"`
	Recommendation      *models.Recommendation `json:"recommendation"`
	AdditionalComments  *string                `json:"additional_comments"`
}

func (r UpdateData) UpdateMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if r.OverallRating != nil {
		updMap["overall_rating"] = *r.OverallRating
	}
	if r.TechnicalSkills != nil {
		updMap["technical_skills"] = *r.TechnicalSkills
	}
	if r.CommunicationSkills != nil {
		updMap["communication_skills"] = *r.CommunicationSkills
	}
	if r.ProblemSolving != nil {
		updMap["problem_solving"] = *r.ProblemSolving
	}
	if r.CulturalFit != nil {
		updMap["cultural_fit"] = *r.CulturalFit
	}
	if r.Strengths != nil {
		updMap["strengths"] = *r.Strengths
	}
	if r.Weaknesses != nil {
		updMap["weaknesses"] = *r.Weaknesses
	}
	if r.Recommendation != nil {
		updMap["recommendation"] = *r.Recommendation
	}
	if r.AdditionalComments != nil {
		updMap["additional_comments"] = *r.AdditionalComments
	}
	return updMap
}

type FeedbackView struct {
	ID                  string    `json:"id"`
	InterviewID         string    `json:"interview_id"`
	CandidateID         string    `json:"candidate_id"`
	JobID               string    `json:"job_id"`
	InterviewerID       string    `json:"interviewer_id"`
	InterviewerName     string    `json:"interviewer_name"`
	OverallRating       int       `json:"overall_rating"`
	TechnicalSkills     int       `json:"technical_skills"`
	CommunicationSkills int       `json:"communication_skills"`
	ProblemSolving      int       `json:"problem_solving"`
	CulturalFit         int       `json:"cultural_fit"`
	Strengths           string    `json:"strengths"`
	Weaknesses          string    `json:"weaknesses"`
	Recommendation      string    `json:"recommendation"`
	AdditionalComments  string    `json:"additional_comments"`
	SubmittedAt         time.Time `json:"submitted_at"`
}

func FeedbackConvert(rec dbmodels.Feedback) FeedbackView {
	return FeedbackView{
		ID:                  rec.ID,
		InterviewID:         rec.InterviewID,
		CandidateID:         rec.CandidateID,
		JobID:               rec.JobID,
		InterviewerID:       rec.InterviewerID,
		InterviewerName:     rec.InterviewerName,
		OverallRating:       rec.OverallRating,
		TechnicalSkills:     rec.TechnicalSkills,
		CommunicationSkills: rec.CommunicationSkills,
		ProblemSolving:      rec.ProblemSolving,
		CulturalFit:         rec.CulturalFit,
		Strengths:           rec.Strengths,
		Weaknesses:          rec.Weaknesses,
		Recommendation:      string(rec.Recommendation),
		AdditionalComments:  rec.AdditionalComments,
		SubmittedAt:         rec.CreatedAt,
	}
}
