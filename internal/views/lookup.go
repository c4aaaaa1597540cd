package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/barbearia-client/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-client/internal/models"
	"github.com/BruksfildServices01/barbearia-client/internal/validators"
)

// lookupView consulta agendamentos por email e permite cancelamento
// dos que ainda estão em estado cancelável.
func (s *Shell) lookupView(ctx context.Context) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "--- Consultar Agendamento ---")

	email, err := s.prompt("Digite seu email")
	if err != nil {
		return
	}
	if email == "" {
		s.notifyError("Digite seu email para consultar")
		return
	}
	if !validators.IsEmailValid(email) {
		s.notifyError("Email inválido")
		return
	}

	agendamentos, err := s.api.ListAppointmentsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("consulta: falha ao buscar agendamentos", "error", err)
		s.notifyError("Erro ao buscar agendamentos. Tente novamente.")
		return
	}

	// Resultado vazio é um estado normal, não um erro.
	if len(agendamentos) == 0 {
		s.notifyInfo("Nenhum agendamento encontrado para este email.")
		return
	}

	for {
		s.renderAppointments(agendamentos)

		raw, err := s.prompt("Cancelar qual agendamento? (número, vazio para voltar)")
		if err != nil || raw == "" {
			return
		}

		idx, convErr := strconv.Atoi(raw)
		if convErr != nil || idx < 1 || idx > len(agendamentos) {
			s.notifyError("Agendamento inválido")
			continue
		}

		s.cancelFlow(ctx, &agendamentos[idx-1])
	}
}

func (s *Shell) renderAppointments(list []models.Appointment) {
	fmt.Fprintf(s.out, "\n%d agendamento(s) encontrado(s)\n", len(list))
	for i, ap := range list {
		barbeiro := ""
		if ap.Barbeiro != nil {
			barbeiro = ap.Barbeiro.Nome
		}
		fmt.Fprintf(s.out, "%d. %s — %s — %s — %s\n",
			i+1,
			FormatDateTime(ap.DataHorario.Time),
			barbeiro,
			FormatPrice(ap.ValorTotal),
			ap.Status.Label(),
		)
		if len(ap.Servicos) > 0 {
			fmt.Fprintf(s.out, "   Serviços: %s\n", strings.Join(ap.ServiceNames(), ", "))
		}
	}
}

// cancelFlow valida o estado no cliente antes de qualquer requisição e,
// em caso de sucesso, marca o item local como cancelado sem recarregar.
func (s *Shell) cancelFlow(ctx context.Context, ap *models.Appointment) {
	if err := appointment.CanCancel(ap.Status); err != nil {
		s.notifyError("Este agendamento não pode ser cancelado")
		return
	}

	motivo, err := s.prompt("Motivo do cancelamento")
	if err != nil {
		return
	}
	if strings.TrimSpace(motivo) == "" {
		s.notifyError("Digite o motivo do cancelamento")
		return
	}

	if err := s.api.CancelAppointment(ctx, ap.ID, motivo); err != nil {
		s.logger.Error("consulta: falha ao cancelar", "error", err, "id", ap.ID)
		s.notifyError("Erro ao cancelar agendamento. Tente novamente.")
		return
	}

	ap.Status = appointment.StatusCancelado
	s.notifySuccess("Agendamento cancelado com sucesso")
}
