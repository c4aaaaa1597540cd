package models

// ===============================
// Request / Response DTOs
// ===============================

type CreateAppointmentRequest struct {
	NomeCliente  string `json:"nomeCliente"`
	EmailCliente string `json:"emailCliente"`
	BarbeiroID   uint   `json:"barbeiroId"`
	ServicoIDs   []uint `json:"servicoIds"`
	// Formato fixo, sem fuso: 2006-01-02T15:04:05.
	DataHorario string `json:"dataHorario"`
	Observacoes string `json:"observacoes,omitempty"`
}

type CancelAppointmentRequest struct {
	Motivo string `json:"motivo"`
}

type ComputeTotalRequest struct {
	ServicoIDs []uint `json:"servicoIds"`
}

type ComputeTotalResponse struct {
	ValorTotal float64 `json:"valorTotal"`
}

type LoginRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	Barbeiro Barber `json:"barbeiro"`
	Token    string `json:"token"`
}

type RespondAppointmentRequest struct {
	Aceitar bool   `json:"aceitar"`
	Motivo  string `json:"motivo,omitempty"`
}

type EmailExistsResponse struct {
	Exists bool `json:"exists"`
}
