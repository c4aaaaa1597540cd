// Package views implementa as telas do terminal: catálogo, agendamento,
// consulta e a área do barbeiro. Cada tela busca seus dados na API ao
// entrar e só conversa com as outras através da sessão e do servidor.
package views

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/BruksfildServices01/barbearia-client/internal/api"
	"github.com/BruksfildServices01/barbearia-client/internal/config"
	"github.com/BruksfildServices01/barbearia-client/internal/session"
	"github.com/BruksfildServices01/barbearia-client/pkg/logging"
)

type Shell struct {
	api    *api.Client
	store  *session.Store
	logger *logging.Logger
	cfg    *config.Config
	in     *bufio.Reader
	out    io.Writer
}

func NewShell(apiClient *api.Client, store *session.Store, logger *logging.Logger, cfg *config.Config, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		api:    apiClient,
		store:  store,
		logger: logger,
		cfg:    cfg,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Run é o laço de navegação entre as telas.
func (s *Shell) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "=== Barbearia ===")
		fmt.Fprintln(s.out, "1. Nossos Serviços")
		fmt.Fprintln(s.out, "2. Agendar Serviço")
		fmt.Fprintln(s.out, "3. Consultar Agendamento")
		fmt.Fprintln(s.out, "4. Área do Barbeiro")
		fmt.Fprintln(s.out, "0. Sair")

		choice, err := s.prompt("Opção")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.catalogView(ctx)
		case "2":
			s.bookingView(ctx)
		case "3":
			s.lookupView(ctx)
		case "4":
			s.dashboardView(ctx)
		case "0", "":
			fmt.Fprintln(s.out, "Até logo!")
			return nil
		default:
			s.notifyError("Opção inválida")
		}
	}
}

// --------------------------------------------------
// Entrada
// --------------------------------------------------

func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprintf(s.out, "%s: ", label)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptDefault mantém o valor atual quando a entrada é vazia,
// deixando o formulário preenchido entre tentativas.
func (s *Shell) promptDefault(label, current string) (string, error) {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := s.prompt(label)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

func (s *Shell) confirm(label string) (bool, error) {
	v, err := s.prompt(label + " (s/n)")
	if err != nil {
		return false, err
	}
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "s" || v == "sim", nil
}

// --------------------------------------------------
// Notificações
// --------------------------------------------------

func (s *Shell) notifySuccess(msg string) {
	fmt.Fprintf(s.out, "[OK] %s\n", msg)
}

func (s *Shell) notifyError(msg string) {
	fmt.Fprintf(s.out, "[ERRO] %s\n", msg)
}

func (s *Shell) notifyInfo(msg string) {
	fmt.Fprintf(s.out, "[INFO] %s\n", msg)
}
