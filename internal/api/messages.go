package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/barbearia-client/internal/models"
)

// CountUnreadMessages alimenta o badge do dashboard.
func (c *Client) CountUnreadMessages(ctx context.Context, barberID uint) (int64, error) {
	var out int64
	path := fmt.Sprintf("/mensagens/barbeiro/%d/count-nao-lidas", barberID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return 0, err
	}
	return out, nil
}

func (c *Client) ListUnreadMessages(ctx context.Context, barberID uint) ([]models.Message, error) {
	var out []models.Message
	path := fmt.Sprintf("/mensagens/barbeiro/%d/nao-lidas", barberID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMessagesByBarber(ctx context.Context, barberID uint) ([]models.Message, error) {
	var out []models.Message
	path := fmt.Sprintf("/mensagens/barbeiro/%d", barberID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MarkMessageRead(ctx context.Context, messageID uint) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/mensagens/%d/lida", messageID), nil, nil)
}

func (c *Client) MarkAllMessagesRead(ctx context.Context, barberID uint) error {
	path := fmt.Sprintf("/mensagens/barbeiro/%d/marcar-todas-lidas", barberID)
	return c.do(ctx, http.MethodPut, path, nil, nil)
}
