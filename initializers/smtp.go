package initializers

import (
	"time"

	"childminder-backend/config"
	"childminder-backend/lib/notifier"
	"childminder-backend/lib/smtp"
	log "github.com/sirupsen/logrus"
)

func InitSmtp() {
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.Smtp.From, *config.Conf.Smtp.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
}

func InitNotifier() {
	conf := config.Conf.Notification
	switch conf.Transport {
	case notifier.TransportFunctions:
		notifier.Instance = notifier.NewFunctionsClient(conf.FunctionsURL, conf.FunctionsKey,
			time.Duration(conf.FunctionsTimeout)*time.Second)
	default:
		notifier.Instance = notifier.NewSmtpTransport(smtp.Instance)
	}
	log.WithField("transport", conf.Transport).Info("notifier initialized")
}
