package adminpanelauthhandler

import (
	"strings"
	"testing"
	"time"

	adminpaneluserstore "childminder-backend/lib/admin-panel/store"
	authutils "childminder-backend/lib/utils/auth-utils"
	"childminder-backend/models"
	dbmodels "childminder-backend/models/db"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	adminpaneluserstore.Provider
	users   []dbmodels.AdminUser
	updated map[string]interface{}
}

func (f *fakeStore) FindByEmail(email string) (*dbmodels.AdminUser, error) {
	for _, rec := range f.users {
		if strings.EqualFold(rec.Email, email) {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Update(userID string, updMap map[string]interface{}) error {
	f.updated = updMap
	return nil
}

func TestLogin(t *testing.T) {
	hash, err := authutils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	store := &fakeStore{users: []dbmodels.AdminUser{
		{BaseModel: dbmodels.BaseModel{ID: "u1"}, Email: "olivia@agency.org", Password: hash, FirstName: "Olivia", LastName: "Grant", Role: models.UserRoleOfficer, IsActive: true},
		{BaseModel: dbmodels.BaseModel{ID: "u2"}, Email: "gone@agency.org", Password: hash, Role: models.UserRoleOfficer},
	}}
	h := impl{store: store, secret: "secret", expireIn: time.Hour}

	t.Run(`valid credentials`, func(t *testing.T) {
		resp, err := h.Login("Olivia@agency.org", "s3cret-pass")
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		require.True(t, resp.ExpiresAt.After(time.Now()))
		require.Contains(t, store.updated, "LastLogin")
	})
	t.Run(`wrong password`, func(t *testing.T) {
		_, err := h.Login("olivia@agency.org", "nope")
		require.ErrorIs(t, err, ErrBadCredentials)
	})
	t.Run(`unknown email`, func(t *testing.T) {
		_, err := h.Login("who@agency.org", "s3cret-pass")
		require.ErrorIs(t, err, ErrBadCredentials)
	})
	t.Run(`deactivated account`, func(t *testing.T) {
		_, err := h.Login("gone@agency.org", "s3cret-pass")
		require.ErrorIs(t, err, ErrBadCredentials)
	})
}
