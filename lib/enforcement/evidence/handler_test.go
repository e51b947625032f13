package evidencehandler

import (
	"context"
	"strings"
	"testing"

	enforcementhandler "childminder-backend/lib/enforcement"
	evidencestore "childminder-backend/lib/enforcement/evidence-store"
	"childminder-backend/models"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	dbmodels "childminder-backend/models/db"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeEnforcement struct {
	enforcementhandler.Provider
}

func (fakeEnforcement) GetCase(id string) (enforcementapimodels.CaseView, error) {
	if id != "c1" {
		return enforcementapimodels.CaseView{}, models.NotFound("case")
	}
	return enforcementapimodels.CaseView{ID: id}, nil
}

type fakeStore struct {
	evidencestore.Provider
	rows []dbmodels.EvidenceFile
}

func (f *fakeStore) Create(rec dbmodels.EvidenceFile) (string, error) {
	rec.ID = strings.Repeat("e", len(f.rows)+1)
	f.rows = append(f.rows, rec)
	return rec.ID, nil
}

func (f *fakeStore) GetByID(caseID, id string) (*dbmodels.EvidenceFile, error) {
	for _, rec := range f.rows {
		if rec.CaseID == caseID && rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) List(caseID string) ([]dbmodels.EvidenceFile, error) {
	return f.rows, nil
}

type fakeFiles struct {
	objects map[string][]byte
	putErr  error
}

func (f *fakeFiles) PutFile(ctx context.Context, key string, file []byte, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[key] = file
	return nil
}

func (f *fakeFiles) GetFile(ctx context.Context, key string) ([]byte, error) {
	body, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return body, nil
}

func (f *fakeFiles) MakeBucket(ctx context.Context) error { return nil }

func newTestImpl() (impl, *fakeStore, *fakeFiles) {
	store := &fakeStore{}
	files := &fakeFiles{objects: map[string][]byte{}}
	return impl{enforcement: fakeEnforcement{}, store: store, files: files, maxSize: 16}, store, files
}

func TestUpload(t *testing.T) {
	actor := enforcementhandler.Actor{Name: "Officer One"}

	t.Run(`stored under the case prefix`, func(t *testing.T) {
		h, store, files := newTestImpl()
		view, err := h.Upload(context.Background(), "c1", []byte("photo"), "../../Kitchen.JPG", "image/jpeg", actor)
		require.NoError(t, err)
		require.Equal(t, "Kitchen.JPG", view.FileName)
		require.Equal(t, int64(5), view.Size)
		require.Equal(t, "Officer One", view.UploadedBy)
		require.Len(t, store.rows, 1)
		key := store.rows[0].ObjectKey
		require.True(t, strings.HasPrefix(key, "cases/c1/"))
		require.True(t, strings.HasSuffix(key, ".jpg"))
		require.Equal(t, []byte("photo"), files.objects[key])

		_, body, err := h.Download(context.Background(), "c1", view.ID)
		require.NoError(t, err)
		require.Equal(t, []byte("photo"), body)
	})
	t.Run(`rejects empty and oversized files`, func(t *testing.T) {
		h, _, _ := newTestImpl()
		_, err := h.Upload(context.Background(), "c1", nil, "a.pdf", "", actor)
		require.ErrorIs(t, err, models.ErrValidation)
		_, err = h.Upload(context.Background(), "c1", make([]byte, 17), "a.pdf", "", actor)
		require.ErrorIs(t, err, models.ErrValidation)
		_, err = h.Upload(context.Background(), "c1", []byte("x"), " ", "", actor)
		require.ErrorIs(t, err, models.ErrValidation)
	})
	t.Run(`unknown case`, func(t *testing.T) {
		h, _, files := newTestImpl()
		_, err := h.Upload(context.Background(), "c2", []byte("x"), "a.pdf", "", actor)
		require.ErrorIs(t, err, models.ErrNotFound)
		require.Empty(t, files.objects)
	})
	t.Run(`storage failure writes no row`, func(t *testing.T) {
		h, store, files := newTestImpl()
		files.putErr = errors.New("s3 down")
		_, err := h.Upload(context.Background(), "c1", []byte("x"), "a.pdf", "", actor)
		require.Error(t, err)
		require.Empty(t, store.rows)
	})
}

func TestDownloadUnknown(t *testing.T) {
	h, _, _ := newTestImpl()
	_, _, err := h.Download(context.Background(), "c1", "missing")
	require.ErrorIs(t, err, models.ErrNotFound)
}
