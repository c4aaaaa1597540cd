package views

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/barbearia-client/internal/apierr"
	"github.com/BruksfildServices01/barbearia-client/internal/session"
)

// loginView autentica o barbeiro e grava a sessão.
// Retorna nil quando o usuário desiste ou a autenticação falha.
func (s *Shell) loginView(ctx context.Context) *session.Session {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "--- Login Barbeiro ---")

	login, err := s.prompt("Login")
	if err != nil {
		return nil
	}
	if login == "" {
		s.notifyError("Digite seu login")
		return nil
	}

	senha, err := s.prompt("Senha")
	if err != nil {
		return nil
	}
	if senha == "" {
		s.notifyError("Digite sua senha")
		return nil
	}

	resp, err := s.api.Authenticate(ctx, login, senha)
	if err != nil {
		switch {
		case apierr.IsUnauthorized(err):
			s.notifyError("Login ou senha incorretos")
		case apierr.IsNotFound(err):
			s.notifyError("Usuário não encontrado")
		default:
			s.logger.Error("login: falha na autenticação", "error", err)
			s.notifyError("Erro ao fazer login. Tente novamente.")
		}
		return nil
	}

	if !resp.Success || resp.Barbeiro.ID == 0 {
		s.notifyError("Resposta inválida do servidor")
		return nil
	}

	sess := &session.Session{
		Barbeiro: resp.Barbeiro,
		Token:    resp.Token,
		LoggedIn: true,
		CriadoEm: time.Now(),
	}
	if err := s.store.Save(sess); err != nil {
		s.logger.Error("login: falha ao gravar sessão", "error", err)
		s.notifyError("Não foi possível salvar a sessão")
		return nil
	}

	s.notifySuccess(fmt.Sprintf("Bem-vindo, %s!", resp.Barbeiro.Nome))
	return sess
}
