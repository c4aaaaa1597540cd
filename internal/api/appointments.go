package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/BruksfildServices01/barbearia-client/internal/models"
)

// CreateAppointment envia a criação; o status inicial (PENDENTE) é do servidor.
func (c *Client) CreateAppointment(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	var out models.Appointment
	if err := c.do(ctx, http.MethodPost, "/agendamentos", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	var out models.Appointment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/agendamentos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelAppointment(ctx context.Context, id uint, motivo string) error {
	path := fmt.Sprintf("/agendamentos/%d/cancelar", id)
	return c.do(ctx, http.MethodPut, path, models.CancelAppointmentRequest{Motivo: motivo}, nil)
}

// ComputeTotal pede ao servidor o valor da seleção atual.
// Seleção vazia vale zero e não gera requisição.
func (c *Client) ComputeTotal(ctx context.Context, servicoIDs []uint) (float64, error) {
	if len(servicoIDs) == 0 {
		return 0, nil
	}

	var out models.ComputeTotalResponse
	req := models.ComputeTotalRequest{ServicoIDs: servicoIDs}
	if err := c.do(ctx, http.MethodPost, "/agendamentos/calcular-valor", req, &out); err != nil {
		return 0, err
	}
	return out.ValorTotal, nil
}

// ListAppointmentsByEmail retorna os agendamentos do cliente na ordem do servidor.
func (c *Client) ListAppointmentsByEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	var out []models.Appointment
	path := "/agendamentos/cliente/" + url.PathEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAppointmentsByBarber(ctx context.Context, barberID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/agendamentos/barbeiro/%d", barberID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPendingAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/agendamentos/pendentes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListConfirmedAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/agendamentos/confirmados", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/agendamentos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
