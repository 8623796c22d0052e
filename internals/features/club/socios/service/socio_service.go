// internals/features/club/socios/service/socio_service.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"time"

	"clubsocios_backend/internals/constants"
	database "clubsocios_backend/internals/databases"
	"clubsocios_backend/internals/features/club/socios/dto"
	model "clubsocios_backend/internals/features/club/socios/model"
	socioRepo "clubsocios_backend/internals/features/club/socios/repository"
	helper "clubsocios_backend/internals/helpers"
	"clubsocios_backend/internals/helpers/dbtime"
	helperOSS "clubsocios_backend/internals/helpers/oss"

	"gorm.io/gorm"
)

const photoCleanupTimeout = 15 * time.Second

type SocioService struct {
	DB    *gorm.DB
	Blob  helperOSS.BlobService
	Today func() time.Time
}

func NewSocioService(db *gorm.DB, blob helperOSS.BlobService) *SocioService {
	if blob == nil {
		blob = helperOSS.DisabledBlobService{}
	}
	return &SocioService{DB: db, Blob: blob, Today: dbtime.Today}
}

func (s *SocioService) today() time.Time {
	if s.Today != nil {
		return s.Today()
	}
	return dbtime.Today()
}

// Create stores a new member. The photo, when present, is uploaded first and a
// failed upload aborts the creation.
func (s *SocioService) Create(ctx context.Context, req *dto.CreateSocioRequest, foto *multipart.FileHeader) (*model.SocioModel, error) {
	if err := dto.ValidateCreate(req, s.today()); err != nil {
		return nil, err
	}

	exists, err := socioRepo.ExistsDNI(ctx, s.DB, req.DNI, 0)
	if err != nil {
		return nil, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	if exists {
		return nil, helper.ErrValidation(constants.MsgDniDuplicado)
	}

	m, err := req.ToModel(s.today())
	if err != nil {
		return nil, err
	}

	if foto != nil {
		url, err := s.upload(ctx, foto)
		if err != nil {
			return nil, err
		}
		m.FotoURL = &url
	}

	if err := socioRepo.Create(ctx, s.DB, m); err != nil {
		if m.FotoURL != nil {
			s.deletePhoto(ctx, *m.FotoURL, "creación fallida")
		}
		if database.IsUniqueViolation(err) {
			return nil, helper.ErrValidation(constants.MsgDniDuplicado)
		}
		return nil, helper.ErrInternal("Error guardando el socio", err)
	}
	return m, nil
}

// Update replaces the fields sent. A replaced or removed photo is deleted
// from storage after the row is saved; that cleanup never fails the update.
func (s *SocioService) Update(ctx context.Context, id uint, req *dto.UpdateSocioRequest, foto *multipart.FileHeader) (*model.SocioModel, error) {
	if err := dto.ValidateUpdate(req, s.today()); err != nil {
		return nil, err
	}

	m, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DNI != nil && *req.DNI != "" && *req.DNI != m.DNI {
		exists, err := socioRepo.ExistsDNI(ctx, s.DB, *req.DNI, m.ID)
		if err != nil {
			return nil, helper.ErrInternal(constants.MsgErrorInterno, err)
		}
		if exists {
			return nil, helper.ErrValidation(constants.MsgDniDuplicado)
		}
	}

	if err := req.ApplyToModel(m); err != nil {
		return nil, err
	}

	oldURL := m.FotoURL
	var newURL *string
	switch {
	case foto != nil:
		url, err := s.upload(ctx, foto)
		if err != nil {
			return nil, err
		}
		newURL = &url
		m.FotoURL = newURL
	case req.WantsPhotoRemoved():
		m.FotoURL = nil
	}

	if err := socioRepo.Save(ctx, s.DB, m); err != nil {
		if newURL != nil {
			s.deletePhoto(ctx, *newURL, "actualización fallida")
		}
		if database.IsUniqueViolation(err) {
			return nil, helper.ErrValidation(constants.MsgDniDuplicado)
		}
		return nil, helper.ErrInternal("Error al actualizar el socio", err)
	}

	if oldURL != nil && *oldURL != "" && (m.FotoURL == nil || *m.FotoURL != *oldURL) {
		s.deletePhoto(ctx, *oldURL, "foto reemplazada")
	}
	return m, nil
}

func (s *SocioService) FindByID(ctx context.Context, id uint) (*model.SocioModel, error) {
	m, err := socioRepo.FindByID(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound(constants.MsgSocioNoEncontrado)
		}
		return nil, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	return m, nil
}

func (s *SocioService) FindPage(ctx context.Context, p helper.Paging) ([]model.SocioModel, int64, error) {
	list, total, err := socioRepo.FindPage(ctx, s.DB, p)
	if err != nil {
		return nil, 0, helper.ErrInternal("Error obteniendo socios", err)
	}
	return list, total, nil
}

// Delete removes the member with its season associations and detaches its
// entry log rows, all in one transaction.
func (s *SocioService) Delete(ctx context.Context, id uint) error {
	var fotoURL *string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := socioRepo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		fotoURL = m.FotoURL

		if err := tx.Exec("DELETE FROM socio_temporadas WHERE socio_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("UPDATE registro_ingresos SET socio_id = NULL WHERE socio_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SocioModel{}, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound(constants.MsgSocioNoEncontrado)
		}
		return helper.ErrInternal("Error eliminando el socio", err)
	}

	if fotoURL != nil && *fotoURL != "" {
		s.deletePhoto(ctx, *fotoURL, "socio eliminado")
	}
	return nil
}

func (s *SocioService) upload(ctx context.Context, foto *multipart.FileHeader) (string, error) {
	if !constants.IsImageFile(foto.Filename, foto.Header.Get("Content-Type")) {
		return "", helper.ErrValidation(constants.MsgErrorSubirFoto)
	}
	url, err := s.Blob.UploadImage(ctx, foto)
	if err != nil {
		if errors.Is(err, helperOSS.ErrStorageDisabled) {
			return "", helper.ErrValidation(constants.MsgAlmacenamientoNoConfig)
		}
		slog.Error("photo upload failed", "file", foto.Filename, "err", err)
		return "", helper.ErrValidation(constants.MsgErrorSubirFoto).WithCause(err)
	}
	return url, nil
}

// deletePhoto is best effort: the row change already happened, so a failure
// only leaves an orphaned object behind, which is logged for operators.
func (s *SocioService) deletePhoto(ctx context.Context, url, reason string) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), photoCleanupTimeout)
	defer cancel()
	if err := s.Blob.DeleteByPublicURL(cctx, url); err != nil {
		slog.Warn("orphaned photo left in storage", "url", url, "reason", reason, "err", err)
	}
}
