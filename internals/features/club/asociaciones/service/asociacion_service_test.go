package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clubsocios_backend/internals/constants"
	database "clubsocios_backend/internals/databases"
	model "clubsocios_backend/internals/features/club/asociaciones/model"
	socioModel "clubsocios_backend/internals/features/club/socios/model"
	temporadaModel "clubsocios_backend/internals/features/club/temporadas/model"
	helper "clubsocios_backend/internals/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var today = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func newTestService(t *testing.T) *AsociacionService {
	t.Helper()
	db := database.OpenTestDB(t,
		&socioModel.SocioModel{},
		&temporadaModel.TemporadaModel{},
		&model.SocioTemporadaModel{},
	)
	svc := NewAsociacionService(db)
	svc.Today = func() time.Time { return today }
	svc.LockEnded = false
	return svc
}

func seedSocio(t *testing.T, svc *AsociacionService, nombre, apellido, dni string) socioModel.SocioModel {
	t.Helper()
	s := socioModel.SocioModel{
		Nombre: nombre, Apellido: apellido, DNI: dni, Estado: constants.EstadoActivo,
		FechaNacimiento: date(1990, 1, 1),
		FechaAlta:       date(2025, 1, 1),
	}
	require.NoError(t, svc.DB.Create(&s).Error)
	return s
}

func seedTemporada(t *testing.T, svc *AsociacionService, nombre string, ini, fin datatypes.Date) temporadaModel.TemporadaModel {
	t.Helper()
	tm := temporadaModel.TemporadaModel{Nombre: nombre, FechaInicio: ini, FechaFin: fin}
	require.NoError(t, svc.DB.Create(&tm).Error)
	return tm
}

func ids(list []socioModel.SocioModel) []uint {
	out := make([]uint, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}

func TestAddThenAvailableExcludesMember(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	ana := seedSocio(t, svc, "Ana", "Pérez", "12345678")
	luis := seedSocio(t, svc, "Luis", "Gomez", "22345678")
	temp := seedTemporada(t, svc, "Verano 2025", date(2025, 12, 1), date(2026, 3, 31))

	p := helper.NewPaging(1, 10, 10, 100)
	list, total, err := svc.AvailableMembers(ctx, temp.ID, p)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.ElementsMatch(t, []uint{ana.ID, luis.ID}, ids(list))

	created, err := svc.AddMemberToSeason(ctx, temp.ID, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, ana.ID, created.SocioID)
	require.NotNil(t, created.Socio)

	list, total, err = svc.AvailableMembers(ctx, temp.ID, p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, []uint{luis.ID}, ids(list))

	members, err := svc.ListMembersOfSeason(ctx, temp.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, ana.ID, members[0].SocioID)
	require.NotNil(t, members[0].Socio)
	assert.Equal(t, "Ana", members[0].Socio.Nombre)

	require.NoError(t, svc.RemoveMemberFromSeason(ctx, temp.ID, ana.ID))
	list, _, err = svc.AvailableMembers(ctx, temp.ID, p)
	require.NoError(t, err)
	assert.Contains(t, ids(list), ana.ID)
}

func TestAvailable_AssociatedMemberNeverMatchesSearch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a := seedSocio(t, svc, "Ana", "Fernandez", "30000001")
	seedSocio(t, svc, "Beto", "Lopez", "30000002")
	c := seedSocio(t, svc, "Carla", "Hernandez", "30000003")
	seedSocio(t, svc, "Dario", "Lopez", "30000004")
	temp := seedTemporada(t, svc, "Verano", date(2025, 12, 1), date(2026, 3, 31))
	_, err := svc.AddMemberToSeason(ctx, temp.ID, a.ID)
	require.NoError(t, err)

	p := helper.NewPaging(1, 10, 10, 100)
	p.Search = "NANDEZ"
	list, total, err := svc.AvailableMembers(ctx, temp.ID, p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, []uint{c.ID}, ids(list))
	assert.NotContains(t, ids(list), a.ID)

	p.Search = "fern"
	list, _, err = svc.AvailableMembers(ctx, temp.ID, p)
	require.NoError(t, err)
	assert.NotContains(t, ids(list), a.ID)
}

func TestAvailable_PageBeyondLast(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seedSocio(t, svc, fmt.Sprintf("N%d", i), fmt.Sprintf("A%d", i), fmt.Sprintf("4000000%d", i))
	}
	temp := seedTemporada(t, svc, "Verano", date(2025, 12, 1), date(2026, 3, 31))

	p := helper.NewPaging(2, 10, 10, 100)
	list, total, err := svc.AvailableMembers(ctx, temp.ID, p)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.EqualValues(t, 5, total)

	pg := helper.BuildPagination(total, p.Page, p.Limit)
	assert.Equal(t, 2, pg.Page)
	assert.Equal(t, 1, pg.TotalPages)
}

func TestAvailable_IdempotentAndOrdered(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seedSocio(t, svc, "Zoe", "Alvarez", "50000001")
	seedSocio(t, svc, "Ana", "Alvarez", "50000002")
	seedSocio(t, svc, "Bruno", "Benitez", "50000003")
	temp := seedTemporada(t, svc, "Verano", date(2025, 12, 1), date(2026, 3, 31))

	p := helper.NewPaging(1, 2, 10, 100)
	first, total1, err := svc.AvailableMembers(ctx, temp.ID, p)
	require.NoError(t, err)
	second, total2, err := svc.AvailableMembers(ctx, temp.ID, p)
	require.NoError(t, err)

	assert.Equal(t, total1, total2)
	assert.Equal(t, ids(first), ids(second))
	require.Len(t, first, 2)
	assert.Equal(t, "Ana", first[0].Nombre)
	assert.Equal(t, "Zoe", first[1].Nombre)
}

func TestAvailable_UnknownSeason(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.AvailableMembers(context.Background(), 77, helper.NewPaging(1, 10, 10, 100))
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.KindNotFound))
	assert.Contains(t, err.Error(), constants.MsgTemporadaNoEncontrada)
}

func TestAdd_DuplicateAndMissing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	ana := seedSocio(t, svc, "Ana", "Pérez", "12345678")
	temp := seedTemporada(t, svc, "Verano", date(2025, 12, 1), date(2026, 3, 31))

	_, err := svc.AddMemberToSeason(ctx, temp.ID, ana.ID)
	require.NoError(t, err)

	_, err = svc.AddMemberToSeason(ctx, temp.ID, ana.ID)
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.KindValidation))
	assert.Contains(t, err.Error(), constants.MsgAsociacionDuplicada)

	_, err = svc.AddMemberToSeason(ctx, temp.ID, 999)
	assert.True(t, helper.IsKind(err, helper.KindNotFound))
	_, err = svc.AddMemberToSeason(ctx, 999, ana.ID)
	assert.True(t, helper.IsKind(err, helper.KindNotFound))

	var n int64
	require.NoError(t, svc.DB.Model(&model.SocioTemporadaModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestUniqueIndexBacksDuplicateCheck(t *testing.T) {
	svc := newTestService(t)

	ana := seedSocio(t, svc, "Ana", "Pérez", "12345678")
	temp := seedTemporada(t, svc, "Verano", date(2025, 12, 1), date(2026, 3, 31))
	require.NoError(t, svc.DB.Create(&model.SocioTemporadaModel{SocioID: ana.ID, TemporadaID: temp.ID}).Error)

	err := svc.DB.Create(&model.SocioTemporadaModel{SocioID: ana.ID, TemporadaID: temp.ID}).Error
	require.Error(t, err)
	assert.True(t, database.IsUniqueViolation(err))
}

func TestRemove_MissingPairTouchesNothing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	ana := seedSocio(t, svc, "Ana", "Pérez", "12345678")
	luis := seedSocio(t, svc, "Luis", "Gomez", "22345678")
	temp := seedTemporada(t, svc, "Verano", date(2025, 12, 1), date(2026, 3, 31))
	_, err := svc.AddMemberToSeason(ctx, temp.ID, ana.ID)
	require.NoError(t, err)

	err = svc.RemoveMemberFromSeason(ctx, temp.ID, luis.ID)
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.KindNotFound))
	assert.Contains(t, err.Error(), constants.MsgAsociacionNoEncontrada)

	var n int64
	require.NoError(t, svc.DB.Model(&model.SocioTemporadaModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestLockEnded(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	ana := seedSocio(t, svc, "Ana", "Pérez", "12345678")
	luis := seedSocio(t, svc, "Luis", "Gomez", "22345678")
	ended := seedTemporada(t, svc, "Verano 2024", date(2024, 12, 1), date(2025, 3, 31))

	// permissive by default
	_, err := svc.AddMemberToSeason(ctx, ended.ID, ana.ID)
	require.NoError(t, err)

	svc.LockEnded = true
	_, err = svc.AddMemberToSeason(ctx, ended.ID, luis.ID)
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.KindValidation))
	assert.Contains(t, err.Error(), constants.MsgTemporadaFinalizada)

	err = svc.RemoveMemberFromSeason(ctx, ended.ID, ana.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), constants.MsgTemporadaFinalizada)

	running := seedTemporada(t, svc, "Verano 2025", date(2025, 12, 1), date(2026, 3, 31))
	_, err = svc.AddMemberToSeason(ctx, running.ID, luis.ID)
	assert.NoError(t, err)
}
