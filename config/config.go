package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		TimeZone   string `default:"Europe/London" env:"APP_TIME_ZONE"`
		BodyLimit  int    `default:"20971520" env:"APP_BODY_LIMIT"` // bytes, evidence uploads
		ErrNotify  string `default:"" env:"APP_ERR_NOTIFY_URL"`     // webhook for 5xx responses
		LogLevel   string `default:"info" env:"APP_LOG_LEVEL"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"childminder" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
		MaxOpenConns   int    `default:"20" env:"DB_MAX_OPEN_CONNS"`
		MaxIdleConns   int    `default:"5" env:"DB_MAX_IDLE_CONNS"`
		ConnLifetime   int    `default:"30" env:"DB_CONN_LIFETIME_MIN"` // minutes
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"" env:"SMTP_FROM"`
	}
	S3 struct {
		Endpoint  string `default:"" env:"S3_ENDPOINT"`
		AccessKey string `default:"" env:"S3_ACCESS_KEY"`
		SecretKey string `default:"" env:"S3_SECRET_KEY"`
		Bucket    string `default:"enforcement-evidence" env:"S3_BUCKET"`
		UseSSL    bool   `default:"true" env:"S3_USE_SSL"`
	}
	Auth struct {
		JWTSecret      string `default:"" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec int64  `default:"43200" env:"AUTH_JWT_EXPIRE_IN_SEC"`
	}
	Admin struct {
		Email     string `default:"" env:"ADMIN_EMAIL"`
		Password  string `default:"" env:"ADMIN_PASSWORD"`
		FirstName string `default:"Agency" env:"ADMIN_FIRST_NAME"`
		LastName  string `default:"Administrator" env:"ADMIN_LAST_NAME"`
	}
	Enforcement struct {
		SuspensionReviewDays      int   `default:"42" env:"ENFORCEMENT_SUSPENSION_REVIEW_DAYS"`
		WarningResponseDays       int   `default:"5" env:"ENFORCEMENT_WARNING_RESPONSE_DAYS"` // working days
		DecisionEffectDays        int   `default:"28" env:"ENFORCEMENT_DECISION_EFFECT_DAYS"`
		DraftTTLMin               int   `default:"240" env:"ENFORCEMENT_DRAFT_TTL_MIN"`
		DraftCacheSize            int   `default:"1000" env:"ENFORCEMENT_DRAFT_CACHE_SIZE"`
		DeadlineWorkerIntervalSec int64 `default:"900" env:"ENFORCEMENT_DEADLINE_WORKER_INTERVAL_SEC"`
		ReviewAlertDays           int   `default:"7" env:"ENFORCEMENT_REVIEW_ALERT_DAYS"`
	}
	Notification struct {
		Transport        string `default:"smtp" env:"NOTIFICATION_TRANSPORT"` // smtp|functions
		FunctionsURL     string `default:"" env:"NOTIFICATION_FUNCTIONS_URL"`
		FunctionsKey     string `default:"" env:"NOTIFICATION_FUNCTIONS_KEY"`
		FunctionsTimeout int    `default:"30" env:"NOTIFICATION_FUNCTIONS_TIMEOUT_SEC"`
		SendDelayMs      int    `default:"500" env:"NOTIFICATION_SEND_DELAY_MS"`
		SessionTTLMin    int    `default:"240" env:"NOTIFICATION_SESSION_TTL_MIN"`
		LocalAuthority   string `default:"" env:"NOTIFICATION_LOCAL_AUTHORITY_EMAIL"`
		HMRC             string `default:"" env:"NOTIFICATION_HMRC_EMAIL"`
		DWP              string `default:"" env:"NOTIFICATION_DWP_EMAIL"`
		Ofsted           string `default:"" env:"NOTIFICATION_OFSTED_EMAIL"`
		SendProviderCopy *bool  `default:"true" env:"NOTIFICATION_SEND_PROVIDER_COPY"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
