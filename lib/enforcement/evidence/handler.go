package evidencehandler

import (
	"context"
	"fmt"
	"path"
	"strings"

	"childminder-backend/db"
	enforcementhandler "childminder-backend/lib/enforcement"
	evidencestore "childminder-backend/lib/enforcement/evidence-store"
	filestorage "childminder-backend/lib/file-storage"
	initchecker "childminder-backend/lib/utils/init-checker"
	"childminder-backend/models"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	dbmodels "childminder-backend/models/db"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Upload(ctx context.Context, caseID string, file []byte, fileName, contentType string, actor enforcementhandler.Actor) (enforcementapimodels.EvidenceView, error)
	List(caseID string) ([]enforcementapimodels.EvidenceView, error)
	Download(ctx context.Context, caseID, id string) (enforcementapimodels.EvidenceView, []byte, error)
}

var Instance Provider

func NewHandler(maxSize int64) {
	instance := impl{
		enforcement: enforcementhandler.Instance,
		store:       evidencestore.NewInstance(db.DB),
		files:       filestorage.Instance,
		maxSize:     maxSize,
	}
	initchecker.CheckInit(
		"enforcement", instance.enforcement,
		"file storage", instance.files,
	)
	Instance = instance
}

type impl struct {
	enforcement enforcementhandler.Provider
	store       evidencestore.Provider
	files       filestorage.Provider
	maxSize     int64
}

func (i impl) Upload(ctx context.Context, caseID string, file []byte, fileName, contentType string, actor enforcementhandler.Actor) (enforcementapimodels.EvidenceView, error) {
	fileName = path.Base(strings.ReplaceAll(strings.TrimSpace(fileName), "\\", "/"))
	if fileName == "" || fileName == "." || fileName == "/" {
		return enforcementapimodels.EvidenceView{}, models.NewValidationError("file", "file name is required")
	}
	if len(file) == 0 {
		return enforcementapimodels.EvidenceView{}, models.NewValidationError("file", "file is empty")
	}
	if i.maxSize > 0 && int64(len(file)) > i.maxSize {
		return enforcementapimodels.EvidenceView{}, models.NewValidationError("file", fmt.Sprintf("file is larger than %d bytes", i.maxSize))
	}
	if _, err := i.enforcement.GetCase(caseID); err != nil {
		return enforcementapimodels.EvidenceView{}, err
	}
	logger := log.WithField("case_id", caseID).WithField("file_name", fileName)

	key := fmt.Sprintf("cases/%s/%s%s", caseID, uuid.NewString(), strings.ToLower(path.Ext(fileName)))
	if err := i.files.PutFile(ctx, key, file, contentType); err != nil {
		logger.WithError(err).Error("evidence upload failed")
		return enforcementapimodels.EvidenceView{}, err
	}
	rec := dbmodels.EvidenceFile{
		BaseCaseModel: dbmodels.BaseCaseModel{CaseID: caseID},
		FileName:      fileName,
		ContentType:   contentType,
		Size:          int64(len(file)),
		ObjectKey:     key,
		UploadedBy:    actor.Name,
	}
	if rec.UploadedBy == "" {
		rec.UploadedBy = models.SystemUser
	}
	id, err := i.store.Create(rec)
	if err != nil {
		// the object stays orphaned in the bucket, it is never listed
		logger.WithError(err).WithField("object_key", key).Error("evidence record create failed")
		return enforcementapimodels.EvidenceView{}, err
	}
	rec.ID = id
	return enforcementapimodels.EvidenceConvert(rec), nil
}

func (i impl) List(caseID string) ([]enforcementapimodels.EvidenceView, error) {
	if _, err := i.enforcement.GetCase(caseID); err != nil {
		return nil, err
	}
	list, err := i.store.List(caseID)
	if err != nil {
		log.WithField("case_id", caseID).WithError(err).Error("evidence list failed")
		return nil, err
	}
	result := make([]enforcementapimodels.EvidenceView, 0, len(list))
	for _, rec := range list {
		result = append(result, enforcementapimodels.EvidenceConvert(rec))
	}
	return result, nil
}

func (i impl) Download(ctx context.Context, caseID, id string) (enforcementapimodels.EvidenceView, []byte, error) {
	rec, err := i.store.GetByID(caseID, id)
	if err != nil {
		return enforcementapimodels.EvidenceView{}, nil, err
	}
	if rec == nil {
		return enforcementapimodels.EvidenceView{}, nil, models.NotFound("evidence file")
	}
	body, err := i.files.GetFile(ctx, rec.ObjectKey)
	if err != nil {
		log.WithField("case_id", caseID).WithField("object_key", rec.ObjectKey).WithError(err).Error("evidence download failed")
		return enforcementapimodels.EvidenceView{}, nil, err
	}
	return enforcementapimodels.EvidenceConvert(*rec), body, nil
}
