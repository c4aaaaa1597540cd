package views

import (
	"context"
	"fmt"
)

// catalogView lista os serviços ativos com preço e duração. Somente leitura.
func (s *Shell) catalogView(ctx context.Context) {
	servicos, err := s.api.ListActiveServices(ctx)
	if err != nil {
		s.logger.Error("catálogo: falha ao carregar serviços", "error", err)
		s.notifyError("Erro ao carregar serviços")
		return
	}

	if len(servicos) == 0 {
		s.notifyInfo("Nenhum serviço disponível no momento.")
		return
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "--- Nossos Serviços ---")
	for _, sv := range servicos {
		fmt.Fprintf(s.out, "%-20s %10s  %s\n", sv.Nome, FormatPrice(sv.Preco), FormatDuration(sv.DuracaoMinutos))
		if sv.Descricao != "" {
			fmt.Fprintf(s.out, "    %s\n", sv.Descricao)
		}
	}
}
