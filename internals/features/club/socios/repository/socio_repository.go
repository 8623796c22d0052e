// internals/features/club/socios/repository/socio_repository.go
package repository

import (
	"context"
	"strings"

	model "clubsocios_backend/internals/features/club/socios/model"
	helper "clubsocios_backend/internals/helpers"

	"gorm.io/gorm"
)

const OrderByNombre = "socios.apellido ASC, socios.nombre ASC, socios.id ASC"

// LIKE escape character; '!' needs no quoting on postgres, mysql or sqlite.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// SearchScope matches term case-insensitively as a literal substring of
// nombre, apellido, dni or email. An empty term adds no condition.
func SearchScope(term string) func(*gorm.DB) *gorm.DB {
	term = strings.ToLower(strings.TrimSpace(term))
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		like := "%" + likeEscaper.Replace(term) + "%"
		return db.Where(
			"(LOWER(socios.nombre) LIKE ? ESCAPE '!' OR LOWER(socios.apellido) LIKE ? ESCAPE '!' OR "+
				"LOWER(socios.dni) LIKE ? ESCAPE '!' OR LOWER(COALESCE(socios.email, '')) LIKE ? ESCAPE '!')",
			like, like, like, like,
		)
	}
}

func FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.SocioModel, error) {
	var m model.SocioModel
	if err := db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func FindByDNI(ctx context.Context, db *gorm.DB, dni string) (*model.SocioModel, error) {
	var m model.SocioModel
	if err := db.WithContext(ctx).Where("dni = ?", strings.TrimSpace(dni)).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ExistsDNI ignores excludeID so an update can keep its own DNI.
func ExistsDNI(ctx context.Context, db *gorm.DB, dni string, excludeID uint) (bool, error) {
	var n int64
	q := db.WithContext(ctx).Model(&model.SocioModel{}).Where("dni = ?", strings.TrimSpace(dni))
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// FindPage counts and lists with the same scopes, ordered by apellido, nombre.
func FindPage(ctx context.Context, db *gorm.DB, p helper.Paging, scopes ...func(*gorm.DB) *gorm.DB) ([]model.SocioModel, int64, error) {
	scopes = append(scopes, SearchScope(p.Search))

	var total int64
	if err := db.WithContext(ctx).Model(&model.SocioModel{}).Scopes(scopes...).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	list := make([]model.SocioModel, 0, p.Limit)
	if total == 0 {
		return list, 0, nil
	}
	if err := db.WithContext(ctx).Model(&model.SocioModel{}).
		Scopes(scopes...).
		Order(OrderByNombre).
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func Create(ctx context.Context, db *gorm.DB, m *model.SocioModel) error {
	return db.WithContext(ctx).Create(m).Error
}

func Save(ctx context.Context, db *gorm.DB, m *model.SocioModel) error {
	return db.WithContext(ctx).Save(m).Error
}

func CountByEstado(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	var rows []struct {
		Estado string
		Total  int64
	}
	if err := db.WithContext(ctx).Model(&model.SocioModel{}).
		Select("estado, COUNT(*) AS total").
		Group("estado").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Estado] = r.Total
	}
	return out, nil
}
