package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/BruksfildServices01/barbearia-client/internal/apierr"
	"github.com/BruksfildServices01/barbearia-client/internal/booking"
	"github.com/BruksfildServices01/barbearia-client/internal/models"
	"github.com/BruksfildServices01/barbearia-client/internal/timezone"
)

// bookingView conduz o formulário de agendamento: dados do cliente,
// barbeiro, serviços, data/hora e observações.
func (s *Shell) bookingView(ctx context.Context) {
	servicos, barbeiros, err := s.loadBookingData(ctx)
	if err != nil {
		s.logger.Error("agendamento: falha ao carregar dados", "error", err)
		s.notifyError("Erro ao carregar dados. Tente novamente.")
		return
	}
	if len(servicos) == 0 || len(barbeiros) == 0 {
		s.notifyInfo("Agendamento indisponível: sem serviços ou barbeiros ativos.")
		return
	}

	form := &booking.Form{}
	total := 0.0

	for {
		if err := s.fillForm(ctx, form, servicos, barbeiros, &total); err != nil {
			return
		}

		if errs := form.Validate(timezone.Now()); len(errs) > 0 {
			s.notifyError("Por favor, corrija os erros no formulário")
			for _, field := range []string{
				booking.FieldNome, booking.FieldEmail, booking.FieldBarbeiro,
				booking.FieldServicos, booking.FieldDataHorario,
			} {
				if msg, ok := errs[field]; ok {
					fmt.Fprintf(s.out, "  - %s\n", msg)
				}
			}

			again, err := s.confirm("Corrigir o formulário?")
			if err != nil || !again {
				return
			}
			continue
		}

		fmt.Fprintf(s.out, "Valor total: %s\n", FormatPrice(total))
		ok, err := s.confirm("Confirmar agendamento?")
		if err != nil {
			return
		}
		if !ok {
			return
		}

		if _, err := s.api.CreateAppointment(ctx, form.Payload()); err != nil {
			s.logger.Error("agendamento: falha ao criar", "error", err)
			s.notifyError(apierr.ServerMessage(err, "Erro ao criar agendamento. Tente novamente."))

			retry, cerr := s.confirm("Tentar novamente?")
			if cerr != nil || !retry {
				return
			}
			// formulário permanece preenchido para a nova tentativa
			continue
		}

		s.notifySuccess("Agendamento realizado com sucesso! Aguarde a confirmação do barbeiro.")
		form.Reset()
		return
	}
}

// loadBookingData busca serviços e barbeiros em paralelo e espera os dois.
func (s *Shell) loadBookingData(ctx context.Context) ([]models.Service, []models.Barber, error) {
	var (
		wg        sync.WaitGroup
		servicos  []models.Service
		barbeiros []models.Barber
		svcErr    error
		barberErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		servicos, svcErr = s.api.ListActiveServices(ctx)
	}()
	go func() {
		defer wg.Done()
		barbeiros, barberErr = s.api.ListActiveBarbers(ctx)
	}()
	wg.Wait()

	if svcErr != nil {
		return nil, nil, svcErr
	}
	if barberErr != nil {
		return nil, nil, barberErr
	}
	return servicos, barbeiros, nil
}

func (s *Shell) fillForm(ctx context.Context, form *booking.Form, servicos []models.Service, barbeiros []models.Barber, total *float64) error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "--- Agendar Serviço ---")

	var err error
	if form.NomeCliente, err = s.promptDefault("Nome", form.NomeCliente); err != nil {
		return err
	}
	if form.EmailCliente, err = s.promptDefault("Email", form.EmailCliente); err != nil {
		return err
	}

	if err := s.chooseBarber(form, barbeiros); err != nil {
		return err
	}
	if err := s.chooseServices(ctx, form, servicos, total); err != nil {
		return err
	}

	current := ""
	if !form.DataHorario.IsZero() {
		current = FormatDateTime(form.DataHorario)
	}
	raw, err := s.promptDefault("Data e horário (DD/MM/AAAA HH:MM)", current)
	if err != nil {
		return err
	}
	if raw != "" {
		if t, perr := ParseDateTime(raw); perr == nil {
			form.DataHorario = t
		} else {
			s.notifyError(perr.Error())
		}
	}

	if form.Observacoes, err = s.promptDefault("Observações (opcional)", form.Observacoes); err != nil {
		return err
	}
	return nil
}

func (s *Shell) chooseBarber(form *booking.Form, barbeiros []models.Barber) error {
	fmt.Fprintln(s.out, "Barbeiros:")
	for i, b := range barbeiros {
		marker := " "
		if form.BarbeiroID == b.ID {
			marker = "*"
		}
		fmt.Fprintf(s.out, "  %s %d. %s\n", marker, i+1, b.Nome)
	}

	raw, err := s.prompt("Barbeiro (número, vazio mantém)")
	if err != nil {
		return err
	}
	if raw == "" {
		return nil
	}

	idx := 0
	if _, convErr := fmt.Sscanf(raw, "%d", &idx); convErr != nil || idx < 1 || idx > len(barbeiros) {
		s.notifyError("Barbeiro inválido")
		return nil
	}
	form.BarbeiroID = barbeiros[idx-1].ID
	return nil
}

// chooseServices alterna serviços até o usuário encerrar; a cada mudança
// o total é recalculado no servidor. Falha no cálculo não bloqueia: o
// total anterior permanece e o erro só vai para o log.
func (s *Shell) chooseServices(ctx context.Context, form *booking.Form, servicos []models.Service, total *float64) error {
	for {
		fmt.Fprintln(s.out, "Serviços (digite o número para marcar/desmarcar, vazio para continuar):")
		for i, sv := range servicos {
			marker := "[ ]"
			if form.HasService(sv.ID) {
				marker = "[x]"
			}
			fmt.Fprintf(s.out, "  %s %d. %s — %s (%s)\n",
				marker, i+1, sv.Nome, FormatPrice(sv.Preco), FormatDuration(sv.DuracaoMinutos))
		}
		fmt.Fprintf(s.out, "Valor total: %s\n", FormatPrice(*total))

		raw, err := s.prompt("Serviço")
		if err != nil {
			return err
		}
		if raw == "" {
			return nil
		}

		idx := 0
		if _, convErr := fmt.Sscanf(raw, "%d", &idx); convErr != nil || idx < 1 || idx > len(servicos) {
			s.notifyError("Serviço inválido")
			continue
		}
		form.ToggleService(servicos[idx-1].ID)

		if v, calcErr := s.api.ComputeTotal(ctx, form.ServicoIDs); calcErr != nil {
			s.logger.Warn("agendamento: falha ao calcular valor", "error", calcErr)
		} else {
			*total = v
		}
	}
}
