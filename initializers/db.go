package initializers

import (
	"time"

	"childminder-backend/config"
	"childminder-backend/db"
)

func InitDBConnection() {
	conf := config.Conf.Database
	err := db.Connect(conf.Host, conf.Port, conf.Name, conf.User, conf.Password, *conf.DebugMode, *conf.MigrateOnStart,
		db.Pool{
			MaxOpenConns:    conf.MaxOpenConns,
			MaxIdleConns:    conf.MaxIdleConns,
			ConnMaxLifetime: time.Duration(conf.ConnLifetime) * time.Minute,
		})
	if err != nil {
		panic(err.Error())
	}

	db.InitPreload()
}
