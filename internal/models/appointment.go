package models

import "github.com/BruksfildServices01/barbearia-client/internal/domain/appointment"

// Appointment é a entidade central; o status dirige toda a UI.
type Appointment struct {
	ID          uint               `json:"id"`
	Cliente     *Client            `json:"cliente"`
	Barbeiro    *Barber            `json:"barbeiro"`
	Servicos    []Service          `json:"servicos"`
	DataHorario LocalTime          `json:"dataHorario"`
	ValorTotal  float64            `json:"valorTotal"`
	Status      appointment.Status `json:"status"`
	Observacoes string             `json:"observacoes,omitempty"`
	DataCriacao LocalTime          `json:"dataCriacao,omitzero"`
	// Preenchido quando o barbeiro confirma ou recusa.
	DataResposta *LocalTime `json:"dataResposta,omitempty"`
}

// BarberID tolera respostas com o barbeiro omitido.
func (a *Appointment) BarberID() uint {
	if a.Barbeiro == nil {
		return 0
	}
	return a.Barbeiro.ID
}

func (a *Appointment) ServiceNames() []string {
	names := make([]string, 0, len(a.Servicos))
	for _, s := range a.Servicos {
		names = append(names, s.Nome)
	}
	return names
}
