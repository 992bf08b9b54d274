package authhandler

import (
	authapimodels "recruit-track-backend/models/api/auth"
	dbmodels "recruit-track-backend/models/db"
)

func dbUserFromSignUp(req authapimodels.SignUpRequest, passwordHash string) dbmodels.User {
	return dbmodels.User{
		Email:       req.Email,
		Password:    passwordHash,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        req.Role,
		PhoneNumber: req.PhoneNumber,
		IsActive:    true,
	}
}

func userView(rec dbmodels.User) authapimodels.UserView {
	return authapimodels.UserView{
		ID:          rec.ID,
		Email:       rec.Email,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		Role:        string(rec.Role),
		RoleName:    rec.Role.ToHuman(),
		PhoneNumber: rec.PhoneNumber,
	}
}
