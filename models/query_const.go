package models

type QueryStatus string

const (
	QueryStatusOpen       QueryStatus = "open"
	QueryStatusInProgress QueryStatus = "in_progress"
	QueryStatusResolved   QueryStatus = "resolved"
)

var queryStatusHumanName = map[QueryStatus]string{
	QueryStatusOpen:       "Открыт",
	QueryStatusInProgress: "В работе",
	QueryStatusResolved:   "Решен",
}

func (s QueryStatus) ToHuman() string {
	if human, exist := queryStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s QueryStatus) IsValid() bool {
	_, exist := queryStatusHumanName[s]
	return exist
}

type QueryPriority string

const (
	QueryPriorityLow    QueryPriority = "low"
	QueryPriorityMedium QueryPriority = "medium"
	QueryPriorityHigh   QueryPriority = "high"
	QueryPriorityUrgent QueryPriority = "urgent"
)

func (p QueryPriority) IsValid() bool {
	return p == QueryPriorityLow || p == QueryPriorityMedium || p == QueryPriorityHigh || p == QueryPriorityUrgent
}

type QueryCategory string

const (
	QueryCategoryCandidateSelection    QueryCategory = "candidate_selection"
	QueryCategoryInterviewScheduling   QueryCategory = "interview_scheduling"
	QueryCategoryFeedbackClarification QueryCategory = "feedback_clarification"
	QueryCategoryGeneral               QueryCategory = "general"
)

func (c QueryCategory) IsValid() bool {
	switch c {
	case QueryCategoryCandidateSelection, QueryCategoryInterviewScheduling,
		QueryCategoryFeedbackClarification, QueryCategoryGeneral:
		return true
	}
	return false
}
