// Package booking concentra o estado e a validação do formulário de agendamento.
package booking

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barbearia-client/internal/models"
	"github.com/BruksfildServices01/barbearia-client/internal/validators"
)

// Campos do mapa de erros, um por campo do formulário.
const (
	FieldNome        = "nomeCliente"
	FieldEmail       = "emailCliente"
	FieldBarbeiro    = "barbeiroId"
	FieldServicos    = "servicoIds"
	FieldDataHorario = "dataHorario"
)

type Form struct {
	NomeCliente  string
	EmailCliente string
	BarbeiroID   uint
	ServicoIDs   []uint
	DataHorario  time.Time
	Observacoes  string
}

// ToggleService alterna a presença do serviço na seleção.
// A ordem não importa para o servidor; preservamos a de marcação.
func (f *Form) ToggleService(id uint) {
	for i, sid := range f.ServicoIDs {
		if sid == id {
			f.ServicoIDs = append(f.ServicoIDs[:i], f.ServicoIDs[i+1:]...)
			return
		}
	}
	f.ServicoIDs = append(f.ServicoIDs, id)
}

func (f *Form) HasService(id uint) bool {
	for _, sid := range f.ServicoIDs {
		if sid == id {
			return true
		}
	}
	return false
}

// Validate coleta todas as violações de uma vez; nada de curto-circuito.
// Um mapa vazio libera o envio.
func (f *Form) Validate(now time.Time) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.NomeCliente) == "" {
		errs[FieldNome] = "Nome é obrigatório"
	}

	email := strings.TrimSpace(f.EmailCliente)
	switch {
	case email == "":
		errs[FieldEmail] = "Email é obrigatório"
	case !validators.IsEmailValid(email):
		errs[FieldEmail] = "Email inválido"
	}

	if f.BarbeiroID == 0 {
		errs[FieldBarbeiro] = "Selecione um barbeiro"
	}

	if len(f.ServicoIDs) == 0 {
		errs[FieldServicos] = "Selecione pelo menos um serviço"
	}

	switch {
	case f.DataHorario.IsZero():
		errs[FieldDataHorario] = "Selecione data e horário"
	case !f.DataHorario.After(now):
		errs[FieldDataHorario] = "Data e horário devem ser futuros"
	}

	return errs
}

// Payload monta a requisição de criação com o horário no formato fixo.
func (f *Form) Payload() models.CreateAppointmentRequest {
	return models.CreateAppointmentRequest{
		NomeCliente:  strings.TrimSpace(f.NomeCliente),
		EmailCliente: strings.TrimSpace(f.EmailCliente),
		BarbeiroID:   f.BarbeiroID,
		ServicoIDs:   f.ServicoIDs,
		DataHorario:  f.DataHorario.Format(models.LocalTimeLayout),
		Observacoes:  strings.TrimSpace(f.Observacoes),
	}
}

// Reset limpa o formulário após um envio bem-sucedido.
func (f *Form) Reset() {
	*f = Form{}
}
