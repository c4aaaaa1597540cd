package models

// Cópias transitórias das entidades do backend, com os nomes
// de campo que a API serializa.

type Service struct {
	ID             uint    `json:"id"`
	Nome           string  `json:"nome"`
	Descricao      string  `json:"descricao"`
	Preco          float64 `json:"preco"`
	DuracaoMinutos int     `json:"duracaoMinutos"`
	Ativo          bool    `json:"ativo"`
}

type Barber struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Login string `json:"login"`
	Ativo bool   `json:"ativo"`
}

// Cliente não tem login próprio; o email é a chave de consulta.
type Client struct {
	ID           uint      `json:"id"`
	NomeCompleto string    `json:"nomeCompleto"`
	Email        string    `json:"email"`
	Telefone     string    `json:"telefone,omitempty"`
	DataCriacao  LocalTime `json:"dataCriacao,omitzero"`
}

type Message struct {
	ID        uint      `json:"id"`
	Conteudo  string    `json:"conteudo"`
	Lida      bool      `json:"lida"`
	Tipo      string    `json:"tipo"`
	DataEnvio LocalTime `json:"dataEnvio,omitzero"`
}
