package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/BruksfildServices01/barbearia-client/internal/models"
)

func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := c.do(ctx, http.MethodGet, "/clientes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	var out models.Client
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/clientes/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	var out models.Client
	path := "/clientes/email/" + url.PathEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateClient(ctx context.Context, client models.Client) (*models.Client, error) {
	var out models.Client
	if err := c.do(ctx, http.MethodPost, "/clientes", client, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateClient(ctx context.Context, id uint, client models.Client) (*models.Client, error) {
	var out models.Client
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/clientes/%d", id), client, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteClient(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/clientes/%d", id), nil, nil)
}

func (c *Client) ClientEmailExists(ctx context.Context, email string) (bool, error) {
	var out models.EmailExistsResponse
	path := "/clientes/exists/" + url.PathEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}
