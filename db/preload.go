package db

import (
	"childminder-backend/config"
	adminpaneluserstore "childminder-backend/lib/admin-panel/store"
	authutils "childminder-backend/lib/utils/auth-utils"
	"childminder-backend/models"
	dbmodels "childminder-backend/models/db"
	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addAdmin()
}

func addAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("admin account not added, ADMIN_EMAIL is not set")
		return
	}
	adminStore := adminpaneluserstore.NewInstance(DB)
	existedRec, err := adminStore.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("admin account bootstrap failed")
		return
	}
	if existedRec != nil {
		return
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("admin account bootstrap failed")
		return
	}
	rec := dbmodels.AdminUser{
		IsActive:  true,
		Role:      models.UserRoleAdmin,
		Password:  hash,
		FirstName: config.Conf.Admin.FirstName,
		LastName:  config.Conf.Admin.LastName,
		Email:     config.Conf.Admin.Email,
	}
	_, err = adminStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("admin account bootstrap failed")
	}
}
