package models

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleHR        UserRole = "hr"
	UserRoleCandidate UserRole = "candidate"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:     "Администратор",
	UserRoleHR:        "HR-специалист",
	UserRoleCandidate: "Кандидат",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// OneOf проверяет, входит ли роль в допустимый для операции набор
func (r UserRole) OneOf(allowed ...UserRole) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
