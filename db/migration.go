package db

import (
	dbmodels "childminder-backend/models/db"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	tables := []struct {
		name  string
		model interface{}
	}{
		{"AdminUser", &dbmodels.AdminUser{}},
		{"Employee", &dbmodels.Employee{}},
		{"EnforcementCase", &dbmodels.EnforcementCase{}},
		{"EnforcementTimeline", &dbmodels.EnforcementTimeline{}},
		{"EnforcementStage", &dbmodels.EnforcementStage{}},
		{"EnforcementNotification", &dbmodels.EnforcementNotification{}},
		{"EvidenceFile", &dbmodels.EvidenceFile{}},
	}
	for _, table := range tables {
		if err := DB.AutoMigrate(table.model); err != nil {
			return errors.Wrapf(err, "migration of %s failed", table.name)
		}
	}
	log.Info("migrations done")
	return nil
}
