package appointment

import (
	"encoding/json"
	"fmt"

	"github.com/BruksfildServices01/barbearia-client/internal/apierr"
)

// ===============================
// Appointment Status
// ===============================

// Status é o conjunto fechado de estados que o backend publica.
// O cliente nunca inventa nem reverte estados.
type Status string

const (
	StatusPendente   Status = "PENDENTE"
	StatusConfirmado Status = "CONFIRMADO"
	StatusCancelado  Status = "CANCELADO"
	StatusRecusado   Status = "RECUSADO"
	StatusConcluido  Status = "CONCLUIDO"
)

func Parse(s string) (Status, error) {
	switch Status(s) {
	case StatusPendente, StatusConfirmado, StatusCancelado, StatusRecusado, StatusConcluido:
		return Status(s), nil
	}
	return "", fmt.Errorf("status de agendamento desconhecido: %q", s)
}

func (s Status) Valid() bool {
	_, err := Parse(string(s))
	return err == nil
}

// UnmarshalJSON fecha o conjunto na fronteira de decodificação:
// um status fora da lista derruba o decode da resposta inteira.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

var labels = map[Status]string{
	StatusPendente:   "Aguardando Confirmação",
	StatusConfirmado: "Confirmado",
	StatusCancelado:  "Cancelado",
	StatusRecusado:   "Recusado",
	StatusConcluido:  "Concluído",
}

// Label é o texto exibido ao usuário. O mapa cobre todos os estados;
// o que não está nele nunca passa do decode.
func (s Status) Label() string {
	return labels[s]
}

// Terminal indica estados que nunca transicionam de novo.
func (s Status) Terminal() bool {
	switch s {
	case StatusCancelado, StatusRecusado, StatusConcluido:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanCancel barra o cancelamento no cliente antes de enviar a requisição.
func CanCancel(current Status) error {
	if current != StatusPendente && current != StatusConfirmado {
		return apierr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanRespond define se o barbeiro ainda pode confirmar ou recusar.
func CanRespond(current Status) error {
	if current != StatusPendente {
		return apierr.ErrBusiness("invalid_state")
	}
	return nil
}
