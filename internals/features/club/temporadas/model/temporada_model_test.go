package model

import (
	"testing"
	"time"

	"clubsocios_backend/internals/constants"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEstadoEn(t *testing.T) {
	temp := TemporadaModel{
		FechaInicio: datatypes.Date(day(2024, 12, 1)),
		FechaFin:    datatypes.Date(day(2025, 3, 1)),
	}

	tests := []struct {
		today time.Time
		want  string
	}{
		{day(2024, 11, 30), constants.TemporadaFutura},
		{day(2024, 12, 1), constants.TemporadaActiva},
		{day(2025, 1, 15), constants.TemporadaActiva},
		{day(2025, 3, 1), constants.TemporadaActiva},
		{day(2025, 3, 2), constants.TemporadaFinalizada},
		// the clock part of today is ignored
		{time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC), constants.TemporadaActiva},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, temp.EstadoEn(tt.today), tt.today.String())
	}
}
