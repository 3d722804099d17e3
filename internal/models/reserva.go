package models

import "strings"

// Chaves de saída da extração, na ordem em que o formulário de reserva as exibe
const (
	ChaveEventoNome        = "eventoNome"
	ChaveEquipamento       = "equipamento"
	ChaveResponsavel       = "responsavel"
	ChaveUnidade           = "unidade"
	ChaveSiape             = "siape"
	ChaveEmail             = "email"
	ChaveTelefone          = "telefone"
	ChaveHorarioContato    = "horarioContato"
	ChaveEventoLocal       = "eventoLocal"
	ChaveDataInicio        = "dataInicio"
	ChaveDataFim           = "dataFim"
	ChavePublicoTipo       = "publicoTipo"
	ChaveVerbaPublica      = "verbaPublica"
	ChaveRetiradaDataHora  = "retiradaDataHora"
	ChaveDevolucaoDataHora = "devolucaoDataHora"
	ChaveMontagemDataHora  = "montagemDataHora"
	ChaveDesejaMontagem    = "desejaMontagem"
	ChaveObservacoes       = "observacoes"
)

// ChavesReserva lista todas as chaves de ReservaExtraida
var ChavesReserva = []string{
	ChaveEventoNome, ChaveEquipamento, ChaveResponsavel, ChaveUnidade,
	ChaveSiape, ChaveEmail, ChaveTelefone, ChaveHorarioContato,
	ChaveEventoLocal, ChaveDataInicio, ChaveDataFim, ChavePublicoTipo,
	ChaveVerbaPublica, ChaveRetiradaDataHora, ChaveDevolucaoDataHora,
	ChaveMontagemDataHora, ChaveDesejaMontagem, ChaveObservacoes,
}

// ReservaExtraida é o registro produzido a partir do texto de um chamado GLPI.
// Campos ausentes no texto ficam com string vazia.
type ReservaExtraida struct {
	EventoNome        string `json:"eventoNome"`
	Equipamento       string `json:"equipamento"`
	Responsavel       string `json:"responsavel"`
	Unidade           string `json:"unidade"`
	Siape             string `json:"siape"`
	Email             string `json:"email"`
	Telefone          string `json:"telefone"`
	HorarioContato    string `json:"horarioContato"`
	EventoLocal       string `json:"eventoLocal"`
	DataInicio        string `json:"dataInicio"`        // AAAA-MM-DDTHH:mm
	DataFim           string `json:"dataFim"`           // AAAA-MM-DDTHH:mm
	PublicoTipo       string `json:"publicoTipo"`
	VerbaPublica      string `json:"verbaPublica"`
	RetiradaDataHora  string `json:"retiradaDataHora"`  // AAAA-MM-DDTHH:mm
	DevolucaoDataHora string `json:"devolucaoDataHora"` // AAAA-MM-DDTHH:mm
	MontagemDataHora  string `json:"montagemDataHora"`  // AAAA-MM-DDTHH:mm
	DesejaMontagem    string `json:"desejaMontagem"`    // texto livre, normalmente "Sim" ou "Não"
	Observacoes       string `json:"observacoes"`
}

// QuerMontagem interpreta DesejaMontagem como booleano estrito
func (r ReservaExtraida) QuerMontagem() bool {
	return strings.EqualFold(strings.TrimSpace(r.DesejaMontagem), "sim")
}

// ToMap devolve o registro como mapa chave -> valor, sempre com todas as chaves
func (r ReservaExtraida) ToMap() map[string]string {
	return map[string]string{
		ChaveEventoNome:        r.EventoNome,
		ChaveEquipamento:       r.Equipamento,
		ChaveResponsavel:       r.Responsavel,
		ChaveUnidade:           r.Unidade,
		ChaveSiape:             r.Siape,
		ChaveEmail:             r.Email,
		ChaveTelefone:          r.Telefone,
		ChaveHorarioContato:    r.HorarioContato,
		ChaveEventoLocal:       r.EventoLocal,
		ChaveDataInicio:        r.DataInicio,
		ChaveDataFim:           r.DataFim,
		ChavePublicoTipo:       r.PublicoTipo,
		ChaveVerbaPublica:      r.VerbaPublica,
		ChaveRetiradaDataHora:  r.RetiradaDataHora,
		ChaveDevolucaoDataHora: r.DevolucaoDataHora,
		ChaveMontagemDataHora:  r.MontagemDataHora,
		ChaveDesejaMontagem:    r.DesejaMontagem,
		ChaveObservacoes:       r.Observacoes,
	}
}

// ReservaRequest representa o formulário de reserva revisado pelo usuário
type ReservaRequest struct {
	EventoNome        string `json:"eventoNome" validate:"max=500"`
	Equipamento       string `json:"equipamento" validate:"required,max=5000"`
	Responsavel       string `json:"responsavel" validate:"required,max=500"`
	Unidade           string `json:"unidade" validate:"max=500"`
	Siape             string `json:"siape" validate:"max=50"`
	Email             string `json:"email" validate:"omitempty,email"`
	Telefone          string `json:"telefone" validate:"max=100"`
	HorarioContato    string `json:"horarioContato" validate:"max=500"`
	EventoLocal       string `json:"eventoLocal" validate:"max=500"`
	DataInicio        string `json:"dataInicio" validate:"required,datetime=2006-01-02T15:04"`
	DataFim           string `json:"dataFim" validate:"required,datetime=2006-01-02T15:04"`
	PublicoTipo       string `json:"publicoTipo" validate:"max=500"`
	VerbaPublica      string `json:"verbaPublica" validate:"max=500"`
	RetiradaDataHora  string `json:"retiradaDataHora" validate:"omitempty,datetime=2006-01-02T15:04"`
	DevolucaoDataHora string `json:"devolucaoDataHora" validate:"omitempty,datetime=2006-01-02T15:04"`
	MontagemDataHora  string `json:"montagemDataHora" validate:"omitempty,datetime=2006-01-02T15:04"`
	DesejaMontagem    bool   `json:"desejaMontagem"`
	Observacoes       string `json:"observacoes" validate:"max=20000"`
}

// Reserva é o payload enviado ao backend de persistência (ação addReservation)
type Reserva struct {
	ID                string `json:"id"`
	Slug              string `json:"slug"`
	EventoNome        string `json:"eventoNome"`
	Equipamento       string `json:"equipamento"`
	Responsavel       string `json:"responsavel"`
	Unidade           string `json:"unidade"`
	Siape             string `json:"siape"`
	Email             string `json:"email"`
	Telefone          string `json:"telefone"`
	HorarioContato    string `json:"horarioContato"`
	EventoLocal       string `json:"eventoLocal"`
	DataInicio        string `json:"dataInicio"`
	DataFim           string `json:"dataFim"`
	PublicoTipo       string `json:"publicoTipo"`
	VerbaPublica      string `json:"verbaPublica"`
	RetiradaDataHora  string `json:"retiradaDataHora"`
	DevolucaoDataHora string `json:"devolucaoDataHora"`
	MontagemDataHora  string `json:"montagemDataHora"`
	DesejaMontagem    string `json:"desejaMontagem"` // "Sim" ou "Não"
	Observacoes       string `json:"observacoes"`

	// Campos legados, ainda lidos pelo calendário
	Data       string `json:"data"`
	HoraInicio string `json:"horaInicio"`
	HoraFim    string `json:"horaFim"`

	CriadoPor string `json:"criadoPor,omitempty"`
	CriadoEm  int64  `json:"criadoEm"`
}

// DividirDataHora separa "AAAA-MM-DDTHH:mm" em data e hora.
// Sem o separador T, devolve o valor inteiro como data e hora vazia.
func DividirDataHora(dataHora string) (data, hora string) {
	data, hora, _ = strings.Cut(dataHora, "T")
	return data, hora
}
