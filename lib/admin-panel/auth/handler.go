package adminpanelauthhandler

import (
	"time"

	"childminder-backend/db"
	adminpaneluserstore "childminder-backend/lib/admin-panel/store"
	authutils "childminder-backend/lib/utils/auth-utils"
	authapimodels "childminder-backend/models/api/auth"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

var ErrBadCredentials = errors.New("invalid email or password")

func NewHandler(secret string, expireIn time.Duration) {
	Instance = impl{
		store:    adminpaneluserstore.NewInstance(db.DB),
		secret:   secret,
		expireIn: expireIn,
	}
}

type impl struct {
	store    adminpaneluserstore.Provider
	secret   string
	expireIn time.Duration
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("staff account lookup failed")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("no staff account with this email")
		return authapimodels.JWTResponse{}, ErrBadCredentials
	}
	if !user.IsActive {
		logger.Debug("staff account is deactivated")
		return authapimodels.JWTResponse{}, ErrBadCredentials
	}
	if !authutils.CheckPassword(user.Password, password) {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, ErrBadCredentials
	}
	token, expiresAt, err := authutils.GetToken(i.secret, i.expireIn, user.ID, user.GetFullName(), user.Role)
	if err != nil {
		logger.WithError(err).Error("jwt sign failed")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"LastLogin": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("last login update failed")
	}
	return authapimodels.JWTResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
