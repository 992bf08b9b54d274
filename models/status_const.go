package models

type ApplicationStatus string

const (
	ApplicationStatusApplied            ApplicationStatus = "applied"
	ApplicationStatusScreening          ApplicationStatus = "screening"
	ApplicationStatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	ApplicationStatusInterviewed        ApplicationStatus = "interviewed"
	ApplicationStatusSelected           ApplicationStatus = "selected"
	ApplicationStatusRejected           ApplicationStatus = "rejected"
)

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusApplied:            "Заявка подана",
	ApplicationStatusScreening:          "Отобран на скрининг",
	ApplicationStatusInterviewScheduled: "Назначено интервью",
	ApplicationStatusInterviewed:        "Интервью проведено",
	ApplicationStatusSelected:           "Принят",
	ApplicationStatusRejected:           "Отклонен",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusSelected || s == ApplicationStatusRejected
}

// applicationStatusOrder задает порядок этапов воронки
var applicationStatusOrder = map[ApplicationStatus]int{
	ApplicationStatusApplied:            0,
	ApplicationStatusScreening:          1,
	ApplicationStatusInterviewScheduled: 2,
	ApplicationStatusInterviewed:        3,
}

func (s ApplicationStatus) IsValid() bool {
	_, exist := applicationStatusHumanName[s]
	return exist
}

// CanAdvanceTo проверяет допустимость перехода по воронке:
// этапы идут только вперед, из терминального статуса выхода нет
func (s ApplicationStatus) CanAdvanceTo(next ApplicationStatus) bool {
	if s.IsTerminal() || !next.IsValid() || s == next {
		return false
	}
	if next.IsTerminal() {
		return true
	}
	return applicationStatusOrder[next] > applicationStatusOrder[s]
}

type InterviewStatus string

const (
	InterviewStatusScheduled   InterviewStatus = "scheduled"
	InterviewStatusCompleted   InterviewStatus = "completed"
	InterviewStatusCancelled   InterviewStatus = "cancelled"
	InterviewStatusRescheduled InterviewStatus = "rescheduled"
)

var interviewStatusHumanName = map[InterviewStatus]string{
	InterviewStatusScheduled:   "Запланировано",
	InterviewStatusCompleted:   "Проведено",
	InterviewStatusCancelled:   "Отменено",
	InterviewStatusRescheduled: "Перенесено",
}

func (s InterviewStatus) ToHuman() string {
	if human, exist := interviewStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s InterviewStatus) IsActive() bool {
	return s == InterviewStatusScheduled
}

type ResumeUploadStatus string

const (
	ResumeUploadStatusUploaded    ResumeUploadStatus = "uploaded"
	ResumeUploadStatusReviewed    ResumeUploadStatus = "reviewed"
	ResumeUploadStatusShortlisted ResumeUploadStatus = "shortlisted"
	ResumeUploadStatusRejected    ResumeUploadStatus = "rejected"
)

var resumeUploadStatusHumanName = map[ResumeUploadStatus]string{
	ResumeUploadStatusUploaded:    "Загружено",
	ResumeUploadStatusReviewed:    "Просмотрено",
	ResumeUploadStatusShortlisted: "В шорт-листе",
	ResumeUploadStatusRejected:    "Отклонено",
}

func (s ResumeUploadStatus) ToHuman() string {
	if human, exist := resumeUploadStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

type Recommendation string

const (
	RecommendationHire   Recommendation = "hire"
	RecommendationNoHire Recommendation = "no-hire"
	RecommendationMaybe  Recommendation = "maybe"
)

func (r Recommendation) IsValid() bool {
	return r == RecommendationHire || r == RecommendationNoHire || r == RecommendationMaybe
}
