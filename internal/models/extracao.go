package models

// Formatos aceitos para o texto do chamado
const (
	FormatoTexto    = "texto"
	FormatoMarkdown = "markdown"
)

// ExtracaoRequest representa o texto colado pelo usuário para pré-preenchimento
type ExtracaoRequest struct {
	Texto   string `json:"texto"`
	Formato string `json:"formato,omitempty" validate:"omitempty,oneof=texto markdown"`
	Resumo  bool   `json:"resumo,omitempty"`
}

// ExtracaoResponse representa o resultado da extração devolvido ao formulário
type ExtracaoResponse struct {
	Reserva           ReservaExtraida `json:"reserva"`
	QuerMontagem      bool            `json:"quer_montagem"`
	CamposEncontrados []string        `json:"campos_encontrados"`
	CamposAusentes    []string        `json:"campos_ausentes"`
	ResumoHTML        string          `json:"resumo_html,omitempty"`
	EmCache           bool            `json:"em_cache"`
}
