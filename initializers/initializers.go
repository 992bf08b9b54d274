package initializers

import (
	"context"
	"recruit-track-backend/config"
	"recruit-track-backend/fiberlog"
	authhandler "recruit-track-backend/lib/auth"
	candidatehandler "recruit-track-backend/lib/candidate"
	xlsexport "recruit-track-backend/lib/export/xls"
	feedbackhandler "recruit-track-backend/lib/feedback"
	interviewhandler "recruit-track-backend/lib/interview"
	jobhandler "recruit-track-backend/lib/job"
	matchinghandler "recruit-track-backend/lib/matching"
	notificationhandler "recruit-track-backend/lib/notification"
	queryhandler "recruit-track-backend/lib/query"
	resumeuploadhandler "recruit-track-backend/lib/resume-upload"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	authhandler.NewHandler()
	// уведомления поднимаются до обработчиков, которые их рассылают
	notificationhandler.NewHandler()
	candidatehandler.NewHandler()
	jobhandler.NewHandler()
	matchinghandler.NewHandler()
	interviewhandler.NewHandler()
	resumeuploadhandler.NewHandler()
	queryhandler.NewHandler()
	feedbackhandler.NewHandler()
	xlsexport.NewHandler()
}
