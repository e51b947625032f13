package adminpanelhandler

import (
	"fmt"

	"childminder-backend/db"
	adminpaneluserstore "childminder-backend/lib/admin-panel/store"
	authutils "childminder-backend/lib/utils/auth-utils"
	"childminder-backend/models"
	adminpanelapimodels "childminder-backend/models/api/admin-panel"
	dbmodels "childminder-backend/models/db"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	CreateUser(request adminpanelapimodels.User) (string, error)
	UpdateUser(userID string, request adminpanelapimodels.UserUpdate) error
	GetUser(userID string) (adminpanelapimodels.UserView, error)
	List() ([]adminpanelapimodels.UserView, error)
	ListSupervisors() ([]adminpanelapimodels.SupervisorView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: adminpaneluserstore.NewInstance(db.DB),
	}
}

type impl struct {
	store adminpaneluserstore.Provider
}

func (i impl) CreateUser(request adminpanelapimodels.User) (string, error) {
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return "", err
	}
	rec := dbmodels.AdminUser{
		IsActive:  true,
		Role:      request.Role,
		Password:  hash,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
	}
	userID, err := i.store.Create(rec)
	if err != nil {
		if !errors.Is(err, models.ErrConflict) {
			log.
				WithField("email", request.Email).
				WithError(err).
				Error("staff account create failed")
		}
		return "", err
	}
	log.
		WithField("user_id", userID).
		WithField("email", rec.Email).
		WithField("role", rec.Role).
		Info("staff account created")
	return userID, nil
}

func (i impl) UpdateUser(userID string, request adminpanelapimodels.UserUpdate) error {
	logger := log.WithField("user_id", userID)
	updMap := map[string]interface{}{}
	if request.Role != nil {
		updMap["Role"] = *request.Role
	}
	if request.FirstName != nil {
		updMap["FirstName"] = *request.FirstName
	}
	if request.LastName != nil {
		updMap["LastName"] = *request.LastName
	}
	if request.Password != nil {
		hash, err := authutils.HashPassword(*request.Password)
		if err != nil {
			return err
		}
		updMap["Password"] = hash
	}
	if request.IsActive != nil {
		updMap["IsActive"] = *request.IsActive
	}
	err := i.store.Update(userID, updMap)
	if err != nil {
		logger.
			WithField("fields", fmt.Sprintf("%v", keys(updMap))).
			WithError(err).
			Error("staff account update failed")
		return err
	}
	logger.Info("staff account updated")
	return nil
}

func (i impl) GetUser(userID string) (adminpanelapimodels.UserView, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("staff account lookup failed")
		return adminpanelapimodels.UserView{}, err
	}
	if rec == nil {
		return adminpanelapimodels.UserView{}, models.NotFound("user")
	}
	return adminpanelapimodels.UserConvert(*rec), nil
}

func (i impl) List() ([]adminpanelapimodels.UserView, error) {
	list, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("staff account list failed")
		return nil, err
	}
	result := make([]adminpanelapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, adminpanelapimodels.UserConvert(rec))
	}
	return result, nil
}

// ListSupervisors returns the active accounts that may approve an enforcement action.
func (i impl) ListSupervisors() ([]adminpanelapimodels.SupervisorView, error) {
	list, err := i.store.ListByRoles([]models.UserRole{models.UserRoleSupervisor, models.UserRoleAdmin})
	if err != nil {
		log.WithError(err).Error("supervisor list failed")
		return nil, err
	}
	result := make([]adminpanelapimodels.SupervisorView, 0, len(list))
	for _, rec := range list {
		result = append(result, adminpanelapimodels.SupervisorConvert(rec))
	}
	return result, nil
}

// keys keeps password hashes out of the log.
func keys(m map[string]interface{}) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
