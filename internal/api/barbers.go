package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/barbearia-client/internal/models"
)

func (c *Client) ListActiveBarbers(ctx context.Context) ([]models.Barber, error) {
	var out []models.Barber
	if err := c.do(ctx, http.MethodGet, "/barbeiros", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Authenticate troca login e senha pelo perfil do barbeiro e um token.
// Credenciais inválidas chegam como APIError 401.
func (c *Client) Authenticate(ctx context.Context, login, senha string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	req := models.LoginRequest{Login: login, Senha: senha}
	if err := c.do(ctx, http.MethodPost, "/barbeiros/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RespondAppointment confirma (aceitar=true) ou recusa um agendamento pendente.
func (c *Client) RespondAppointment(ctx context.Context, barberID, appointmentID uint, aceitar bool, motivo string) error {
	path := fmt.Sprintf("/barbeiros/%d/agendamentos/%d/responder", barberID, appointmentID)
	req := models.RespondAppointmentRequest{Aceitar: aceitar, Motivo: motivo}
	return c.do(ctx, http.MethodPut, path, req, nil)
}
