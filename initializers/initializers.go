package initializers

import (
	"context"
	"time"

	"childminder-backend/config"
	"childminder-backend/fiberlog"
	adminpanelhandler "childminder-backend/lib/admin-panel"
	adminpanelauthhandler "childminder-backend/lib/admin-panel/auth"
	dispatchhandler "childminder-backend/lib/dispatch"
	employeehandler "childminder-backend/lib/employee"
	enforcementhandler "childminder-backend/lib/enforcement"
	deadlineworker "childminder-backend/lib/enforcement/deadline-worker"
	draftshandler "childminder-backend/lib/enforcement/drafts"
	evidencehandler "childminder-backend/lib/enforcement/evidence"
	xlsexport "childminder-backend/lib/export/xls"
	connectionhub "childminder-backend/lib/ws/hub/connection-hub"
	"childminder-backend/models"
	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	InitNotifier()
	connectionhub.Init()

	enforcementConf := config.Conf.Enforcement
	enforcementhandler.NewHandler(enforcementhandler.Settings{
		SuspensionReviewDays: enforcementConf.SuspensionReviewDays,
		WarningResponseDays:  enforcementConf.WarningResponseDays,
		DecisionEffectDays:   enforcementConf.DecisionEffectDays,
		SendProviderCopy:     *config.Conf.Notification.SendProviderCopy,
	}, loadLocation(config.Conf.App.TimeZone))
	draftshandler.NewHandler(enforcementConf.DraftCacheSize, time.Duration(enforcementConf.DraftTTLMin)*time.Minute)

	notificationConf := config.Conf.Notification
	dispatchhandler.NewHandler(dispatchhandler.Settings{
		SendDelay:  time.Duration(notificationConf.SendDelayMs) * time.Millisecond,
		SessionTTL: time.Duration(notificationConf.SessionTTLMin) * time.Minute,
		DefaultEmails: map[models.AgencyCode]string{
			models.AgencyLocalAuthority: notificationConf.LocalAuthority,
			models.AgencyHMRC:           notificationConf.HMRC,
			models.AgencyDWP:            notificationConf.DWP,
			models.AgencyOfsted:         notificationConf.Ofsted,
		},
	})
	evidencehandler.NewHandler(int64(config.Conf.App.BodyLimit))
	xlsexport.NewHandler()
	employeehandler.NewHandler(notificationConf.Ofsted)
	adminpanelhandler.NewHandler()
	adminpanelauthhandler.NewHandler(config.Conf.Auth.JWTSecret, time.Duration(config.Conf.Auth.JWTExpireInSec)*time.Second)

	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// representations expiry and suspension review alerts
	deadlineworker.StartWorker(ctx,
		time.Duration(config.Conf.Enforcement.DeadlineWorkerIntervalSec)*time.Second,
		config.Conf.Enforcement.ReviewAlertDays)
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.WithError(err).WithField("time_zone", name).Warn("unknown time zone, using UTC")
		return time.UTC
	}
	return loc
}
