// Package dashboard filtra em memória as listas globais que o backend expõe.
// As listas chegam inteiras; o recorte por barbeiro e por dia é local.
package dashboard

import (
	"time"

	"github.com/BruksfildServices01/barbearia-client/internal/models"
)

// ForBarber recorta a lista para o barbeiro autenticado.
func ForBarber(list []models.Appointment, barberID uint) []models.Appointment {
	out := make([]models.Appointment, 0, len(list))
	for _, ap := range list {
		if ap.BarberID() == barberID {
			out = append(out, ap)
		}
	}
	return out
}

// OnDay mantém apenas agendamentos cujo ano/mês/dia coincide com day,
// comparado no fuso de day. Não é um recorte por faixa de timestamp.
func OnDay(list []models.Appointment, day time.Time) []models.Appointment {
	y, m, d := day.Date()
	out := make([]models.Appointment, 0, len(list))
	for _, ap := range list {
		ay, am, ad := ap.DataHorario.In(day.Location()).Date()
		if ay == y && am == m && ad == d {
			out = append(out, ap)
		}
	}
	return out
}

type Stats struct {
	Pendentes       int
	ConfirmadosHoje int
	ValorHoje       float64
}

// BuildStats deriva os números dos cartões a partir das listas já recortadas.
func BuildStats(pendentes, confirmadosHoje []models.Appointment) Stats {
	st := Stats{
		Pendentes:       len(pendentes),
		ConfirmadosHoje: len(confirmadosHoje),
	}
	for _, ap := range confirmadosHoje {
		st.ValorHoje += ap.ValorTotal
	}
	return st
}
