package models

type NotificationType string

const (
	NotificationTypeJobPosted            NotificationType = "job_posted"
	NotificationTypeResumeUploaded       NotificationType = "resume_uploaded"
	NotificationTypeCandidateShortlisted NotificationType = "candidate_shortlisted"
	NotificationTypeInterviewScheduled   NotificationType = "interview_scheduled"
	NotificationTypeInterviewConfirmed   NotificationType = "interview_confirmed"
	NotificationTypeQueryReceived        NotificationType = "query_received"
	NotificationTypeQueryResponded       NotificationType = "query_responded"
	NotificationTypeFeedbackSubmitted    NotificationType = "feedback_submitted"
)

// RelatedEntity — сущность, на которую указывает related_id уведомления.
// Тип уведомления однозначно определяет целевую таблицу,
// потребителю не нужно гадать по строковому идентификатору.
type RelatedEntity string

const (
	RelatedEntityJob          RelatedEntity = "job"
	RelatedEntityResumeUpload RelatedEntity = "resume_upload"
	RelatedEntityInterview    RelatedEntity = "interview"
	RelatedEntityQuery        RelatedEntity = "query"
	RelatedEntityFeedback     RelatedEntity = "feedback"
	RelatedEntityNone         RelatedEntity = ""
)

var notificationRelatedEntity = map[NotificationType]RelatedEntity{
	NotificationTypeJobPosted:            RelatedEntityJob,
	NotificationTypeResumeUploaded:       RelatedEntityResumeUpload,
	NotificationTypeCandidateShortlisted: RelatedEntityResumeUpload,
	NotificationTypeInterviewScheduled:   RelatedEntityInterview,
	NotificationTypeInterviewConfirmed:   RelatedEntityInterview,
	NotificationTypeQueryReceived:        RelatedEntityQuery,
	NotificationTypeQueryResponded:       RelatedEntityQuery,
	NotificationTypeFeedbackSubmitted:    RelatedEntityFeedback,
}

func (t NotificationType) RelatedEntity() RelatedEntity {
	if entity, exist := notificationRelatedEntity[t]; exist {
		return entity
	}
	return RelatedEntityNone
}
