package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/barbearia-client/internal/dashboard"
	"github.com/BruksfildServices01/barbearia-client/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-client/internal/models"
	"github.com/BruksfildServices01/barbearia-client/internal/session"
	"github.com/BruksfildServices01/barbearia-client/internal/timezone"
)

type dashboardData struct {
	pendentes       []models.Appointment
	confirmadosHoje []models.Appointment
	naoLidas        int64
	stats           dashboard.Stats
}

// dashboardView exige sessão válida; sem ela, o login roda primeiro.
func (s *Shell) dashboardView(ctx context.Context) {
	sess, err := s.store.Load()
	if err != nil {
		s.logger.Error("dashboard: falha ao ler sessão", "error", err)
		s.notifyError("Não foi possível ler a sessão")
		return
	}
	if sess == nil {
		if sess = s.loginView(ctx); sess == nil {
			return
		}
	}

	data, err := s.loadDashboard(ctx, sess.Barbeiro.ID)
	if err != nil {
		s.logger.Error("dashboard: falha ao carregar dados", "error", err)
		s.notifyError("Erro ao carregar dados do dashboard")
		return
	}

	for {
		s.renderDashboard(sess, data)

		raw, err := s.prompt("Ação (número responde pendente, e=exportar, m=mensagens, r=recarregar, s=sair, vazio volta)")
		if err != nil {
			return
		}

		switch strings.ToLower(raw) {
		case "":
			return
		case "s":
			if err := s.store.Clear(); err != nil {
				s.logger.Error("dashboard: falha ao limpar sessão", "error", err)
			}
			s.notifyInfo("Logout realizado com sucesso")
			return
		case "r":
			if reloaded, rerr := s.loadDashboard(ctx, sess.Barbeiro.ID); rerr != nil {
				s.logger.Error("dashboard: falha ao recarregar", "error", rerr)
				s.notifyError("Erro ao carregar dados do dashboard")
			} else {
				data = reloaded
			}
		case "e":
			s.exportAgenda(sess, data)
		case "m":
			s.messagesView(ctx, sess.Barbeiro.ID)
		default:
			idx, convErr := strconv.Atoi(raw)
			if convErr != nil || idx < 1 || idx > len(data.pendentes) {
				s.notifyError("Opção inválida")
				continue
			}
			if s.respondFlow(ctx, sess, data.pendentes[idx-1]) {
				// sucesso recarrega tudo do zero, sem remendo local
				if reloaded, rerr := s.loadDashboard(ctx, sess.Barbeiro.ID); rerr != nil {
					s.logger.Error("dashboard: falha ao recarregar", "error", rerr)
					s.notifyError("Erro ao carregar dados do dashboard")
				} else {
					data = reloaded
				}
			}
		}
	}
}

// loadDashboard busca as listas globais e recorta localmente:
// pendentes do barbeiro e confirmados de hoje no fuso da barbearia.
func (s *Shell) loadDashboard(ctx context.Context, barberID uint) (*dashboardData, error) {
	pendentes, err := s.api.ListPendingAppointments(ctx)
	if err != nil {
		return nil, err
	}

	confirmados, err := s.api.ListConfirmedAppointments(ctx)
	if err != nil {
		return nil, err
	}

	naoLidas, err := s.api.CountUnreadMessages(ctx, barberID)
	if err != nil {
		return nil, err
	}

	data := &dashboardData{
		pendentes:       dashboard.ForBarber(pendentes, barberID),
		confirmadosHoje: dashboard.OnDay(dashboard.ForBarber(confirmados, barberID), timezone.Now()),
		naoLidas:        naoLidas,
	}
	data.stats = dashboard.BuildStats(data.pendentes, data.confirmadosHoje)
	return data, nil
}

func (s *Shell) renderDashboard(sess *session.Session, data *dashboardData) {
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "--- Dashboard — %s ---\n", sess.Barbeiro.Nome)
	fmt.Fprintf(s.out, "Pendentes: %d | Confirmados hoje: %d | Valor de hoje: %s | Mensagens não lidas: %d\n",
		data.stats.Pendentes, data.stats.ConfirmadosHoje, FormatPrice(data.stats.ValorHoje), data.naoLidas)

	fmt.Fprintln(s.out, "Agendamentos pendentes:")
	if len(data.pendentes) == 0 {
		fmt.Fprintln(s.out, "  (nenhum)")
	}
	for i, ap := range data.pendentes {
		cliente := ""
		if ap.Cliente != nil {
			cliente = ap.Cliente.NomeCompleto
		}
		fmt.Fprintf(s.out, "  %d. %s — %s — %s — %s\n",
			i+1, FormatDateTime(ap.DataHorario.Time), cliente,
			strings.Join(ap.ServiceNames(), ", "), FormatPrice(ap.ValorTotal))
	}

	fmt.Fprintln(s.out, "Confirmados de hoje:")
	if len(data.confirmadosHoje) == 0 {
		fmt.Fprintln(s.out, "  (nenhum)")
	}
	for _, ap := range data.confirmadosHoje {
		cliente := ""
		if ap.Cliente != nil {
			cliente = ap.Cliente.NomeCompleto
		}
		fmt.Fprintf(s.out, "  %s — %s — %s\n",
			FormatTime(ap.DataHorario.Time), cliente, FormatPrice(ap.ValorTotal))
	}
}

// respondFlow confirma ou recusa um pendente. Recusa exige motivo;
// sem motivo nenhuma requisição é enviada. Retorna true em sucesso.
func (s *Shell) respondFlow(ctx context.Context, sess *session.Session, ap models.Appointment) bool {
	if err := appointment.CanRespond(ap.Status); err != nil {
		s.notifyError("Este agendamento não está mais pendente")
		return false
	}

	aceitar, err := s.confirm("Confirmar o agendamento? (n recusa)")
	if err != nil {
		return false
	}

	motivo := ""
	if !aceitar {
		if motivo, err = s.prompt("Motivo da recusa"); err != nil {
			return false
		}
		if strings.TrimSpace(motivo) == "" {
			s.notifyError("Digite o motivo da recusa")
			return false
		}
	}

	if err := s.api.RespondAppointment(ctx, sess.Barbeiro.ID, ap.ID, aceitar, motivo); err != nil {
		s.logger.Error("dashboard: falha ao responder agendamento", "error", err, "id", ap.ID)
		s.notifyError("Erro ao responder agendamento")
		return false
	}

	if aceitar {
		s.notifySuccess("Agendamento confirmado com sucesso!")
	} else {
		s.notifySuccess("Agendamento recusado com sucesso!")
	}
	return true
}

func (s *Shell) exportAgenda(sess *session.Session, data *dashboardData) {
	path, err := dashboard.ExportDay(s.cfg.ExportsPath, sess.Barbeiro, timezone.Now(), data.confirmadosHoje)
	if err != nil {
		s.logger.Error("dashboard: falha ao exportar agenda", "error", err)
		s.notifyError("Erro ao exportar a agenda")
		return
	}
	s.notifySuccess(fmt.Sprintf("Agenda exportada em %s", path))
}

// messagesView lista as mensagens não lidas e permite marcá-las como lidas.
func (s *Shell) messagesView(ctx context.Context, barberID uint) {
	msgs, err := s.api.ListUnreadMessages(ctx, barberID)
	if err != nil {
		s.logger.Error("mensagens: falha ao listar", "error", err)
		s.notifyError("Erro ao carregar mensagens")
		return
	}

	if len(msgs) == 0 {
		s.notifyInfo("Nenhuma mensagem não lida.")
		return
	}

	fmt.Fprintln(s.out, "Mensagens não lidas:")
	for _, m := range msgs {
		fmt.Fprintf(s.out, "  - %s (%s)\n", m.Conteudo, FormatDateTime(m.DataEnvio.Time))
	}

	marcar, err := s.confirm("Marcar todas como lidas?")
	if err != nil || !marcar {
		return
	}
	if err := s.api.MarkAllMessagesRead(ctx, barberID); err != nil {
		s.logger.Error("mensagens: falha ao marcar como lidas", "error", err)
		s.notifyError("Erro ao marcar mensagens como lidas")
		return
	}
	s.notifySuccess("Mensagens marcadas como lidas")
}
