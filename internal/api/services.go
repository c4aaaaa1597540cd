package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/barbearia-client/internal/models"
)

// ListActiveServices retorna o catálogo de serviços ativos.
func (c *Client) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	if err := c.do(ctx, http.MethodGet, "/servicos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var out models.Service
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/servicos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateService(ctx context.Context, svc models.Service) (*models.Service, error) {
	var out models.Service
	if err := c.do(ctx, http.MethodPost, "/servicos", svc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
