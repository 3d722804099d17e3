package glpi

import (
	"reflect"
	"strings"
	"testing"

	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/models"
	"golang.org/x/text/unicode/norm"
)

const chamadoExemplo = `1) Nome do Solicitante: Maria Souza
2) Órgão/Unidade solicitante: Pró-Reitoria de Extensão
3) SIAPE: 1234567
4) E-mail: maria.souza@ufx.edu.br
5) Telefone para contato: (61) 3333-4444
6) Preferencia de horário para a equipe entrar em contato: Manhã, após as 9h
7) Nome da atividade/evento: Semana de Extensão
8) Local do evento / Destino do material: Auditório Central
9) Data e horário de início: 2025-03-10 14:30
10) Data e horário de término: 2025-03-10 18:00
11) Tipo de público: Interno e externo
12) O evento utiliza verba pública? Sim
Especifique qual?: Edital PROEX 01/2025
13) Informações gerais sobre o evento: Abertura com a reitoria
e transmissão ao vivo
14) Marque os itens necessários: Caixa de som, Microfone sem fio
15) Descreva detalhadamente: Duas caixas amplificadas
1) microfone de lapela
2) pedestal

Logística de Empréstimo
16) Data e horário da retirada na Secom: 10/03/2025 10:00
17) Data e horário da devolução na Secom: 2025-03-11 09:00
18) Deseja montagem dos equipamentos emprestados?: Sim
19) Data e horário para montagem dos equipamentos: 2025-03-10 12:00
20) Observações gerais: Retirar com antecedência
`

func TestExtrair_ChamadoCompleto(t *testing.T) {
	got := ExtrairCampos(chamadoExemplo)

	want := models.ReservaExtraida{
		EventoNome:        "Semana de Extensão",
		Equipamento:       "Caixa de som, Microfone sem fio. Detalhes: Duas caixas amplificadas 1) microfone de lapela 2) pedestal",
		Responsavel:       "Maria Souza",
		Unidade:           "Pró-Reitoria de Extensão",
		Siape:             "1234567",
		Email:             "maria.souza@ufx.edu.br",
		Telefone:          "(61) 3333-4444",
		HorarioContato:    "Manhã, após as 9h",
		EventoLocal:       "Auditório Central",
		DataInicio:        "2025-03-10T14:30",
		DataFim:           "2025-03-10T18:00",
		PublicoTipo:       "Interno e externo",
		VerbaPublica:      "Edital PROEX 01/2025",
		RetiradaDataHora:  "2025-03-10T10:00",
		DevolucaoDataHora: "2025-03-11T09:00",
		MontagemDataHora:  "2025-03-10T12:00",
		DesejaMontagem:    "Sim",
		Observacoes:       "Info Evento: Abertura com a reitoria e transmissão ao vivo\nObs Finais: Retirar com antecedência",
	}

	gotMap, wantMap := got.ToMap(), want.ToMap()
	for _, chave := range models.ChavesReserva {
		if gotMap[chave] != wantMap[chave] {
			t.Errorf("%s = %q, want %q", chave, gotMap[chave], wantMap[chave])
		}
	}

	if !got.QuerMontagem() {
		t.Error("QuerMontagem() deveria ser true")
	}
}

func TestExtrair_QuebrasCRLF(t *testing.T) {
	lf := ExtrairCampos(chamadoExemplo)
	crlf := ExtrairCampos(strings.ReplaceAll(chamadoExemplo, "\n", "\r\n"))

	if lf != crlf {
		t.Errorf("resultado com CRLF difere do resultado com LF:\n%+v\n%+v", crlf, lf)
	}
}

func TestExtrair_AcentosDecompostos(t *testing.T) {
	nfc := ExtrairCampos(chamadoExemplo)
	nfd := ExtrairCampos(norm.NFD.String(chamadoExemplo))

	if nfd != nfc {
		t.Errorf("resultado com texto NFD difere do resultado com NFC:\n%+v\n%+v", nfd, nfc)
	}

	got := ExtrairCampos(norm.NFD.String("Órgão/Unidade solicitante: Secom\nData e horário da devolução na Secom: 2025-03-11 09:00"))
	if got.Unidade != "Secom" {
		t.Errorf("unidade = %q, want %q", got.Unidade, "Secom")
	}
	if got.DevolucaoDataHora != "2025-03-11T09:00" {
		t.Errorf("devolucaoDataHora = %q, want %q", got.DevolucaoDataHora, "2025-03-11T09:00")
	}
}

func TestExtrair_TextoVazio(t *testing.T) {
	got := ExtrairCampos("")

	for chave, valor := range got.ToMap() {
		switch chave {
		case models.ChaveEquipamento:
			if valor != ". Detalhes:" {
				t.Errorf("equipamento = %q, want %q", valor, ". Detalhes:")
			}
		case models.ChaveObservacoes:
			if valor != "Info Evento: \nObs Finais:" {
				t.Errorf("observacoes = %q, want %q", valor, "Info Evento: \nObs Finais:")
			}
		default:
			if valor != "" {
				t.Errorf("%s = %q, want vazio", chave, valor)
			}
		}
	}
}

func TestExtrair_TodasAsChavesPresentes(t *testing.T) {
	inputs := []string{
		"",
		"texto qualquer sem rótulos",
		"SIAPE:",
		"::::\n\n\n1)2)3)",
		"Nome do Solicitante: Ana\x00\xff\xfe",
	}

	for _, input := range inputs {
		resultado := NewExtrator().Extrair(input)
		m := resultado.Reserva.ToMap()
		for _, chave := range models.ChavesReserva {
			if _, ok := m[chave]; !ok {
				t.Errorf("Extrair(%q) sem a chave %q", input, chave)
			}
		}
		if len(resultado.Encontrados)+len(resultado.Ausentes) != len(models.ChavesReserva) {
			t.Errorf("Extrair(%q): encontrados + ausentes = %d, want %d",
				input, len(resultado.Encontrados)+len(resultado.Ausentes), len(models.ChavesReserva))
		}
		for _, c := range Campos() {
			if _, ok := resultado.Campos[c.Chave]; !ok {
				t.Errorf("Extrair(%q): Campos sem a chave %q", input, c.Chave)
			}
		}
	}
}

func TestExtrair_IdaEVolta(t *testing.T) {
	valores := map[string]string{
		models.ChaveResponsavel:       "Maria Souza",
		models.ChaveUnidade:           "Pró-Reitoria de Extensão",
		models.ChaveSiape:             "1234567",
		models.ChaveEmail:             "maria.souza@ufx.edu.br",
		models.ChaveTelefone:          "(61) 3333-4444",
		models.ChaveHorarioContato:    "Manhã",
		models.ChaveEventoNome:        "Semana de Extensão",
		models.ChaveEventoLocal:       "Auditório Central",
		models.ChaveDataInicio:        "2025-03-10 14:30",
		models.ChaveDataFim:           "2025-03-10 18:00",
		models.ChavePublicoTipo:       "Comunidade interna",
		models.ChaveVerbaPublica:      "Edital PROEX 01/2025",
		models.ChaveRetiradaDataHora:  "2025-03-10 10:00",
		models.ChaveDevolucaoDataHora: "2025-03-11 09:00",
		models.ChaveMontagemDataHora:  "2025-03-10 12:00",
		models.ChaveDesejaMontagem:    "Sim",
		ChaveItensNecessarios:         "Caixa de som, Microfone",
		ChaveDescricaoDetalhada:       "Duas caixas amplificadas",
		ChaveInfoEvento:               "Evento aberto ao público",
		ChaveObsFinais:                "Retirar com antecedência",
	}

	var b strings.Builder
	for _, c := range Campos() {
		b.WriteString(c.Rotulo + ": " + valores[c.Chave] + "\n\n")
	}

	resultado := NewExtrator().Extrair(b.String())

	for _, c := range Campos() {
		want := strings.TrimSpace(valores[c.Chave])
		if c.Tipo == CapturaDataHora {
			want = strings.Replace(want, " ", "T", 1)
		}
		if got := resultado.Campos[c.Chave]; got != want {
			t.Errorf("%s (%s) = %q, want %q", c.Rotulo, c.Chave, got, want)
		}
	}

	if len(resultado.Ausentes) != 0 {
		t.Errorf("Ausentes = %v, want nenhum", resultado.Ausentes)
	}
}

func TestExtrair_Idempotente(t *testing.T) {
	extrator := NewExtrator()

	primeiro := extrator.Extrair(chamadoExemplo)
	segundo := extrator.Extrair(chamadoExemplo)

	if !reflect.DeepEqual(primeiro, segundo) {
		t.Errorf("Extrair não é idempotente:\n%+v\n%+v", primeiro, segundo)
	}
}

func TestExtrair_Fronteiras(t *testing.T) {
	tests := []struct {
		name  string
		input string
		chave string
		want  string
	}{
		{
			name:  "próximo rótulo com hífen",
			input: "SIAPE: 12345\nE-mail: a@b.com",
			chave: models.ChaveSiape,
			want:  "12345",
		},
		{
			name:  "último campo vai até o fim",
			input: "SIAPE: 12345\nE-mail: a@b.com",
			chave: models.ChaveEmail,
			want:  "a@b.com",
		},
		{
			name:  "parágrafo encerra captura",
			input: "Nome do Solicitante: Ana\n\nTexto solto depois",
			chave: models.ChaveResponsavel,
			want:  "Ana",
		},
		{
			name:  "pergunta numerada encerra captura",
			input: "Tipo de público: Interno\n  4) Outra pergunta sem dois pontos",
			chave: models.ChavePublicoTipo,
			want:  "Interno",
		},
		{
			name:  "linha de continuação é anexada",
			input: "Observações gerais: linha um\nlinha dois\nSIAPE: 1",
			chave: ChaveObsFinais,
			want:  "linha um linha dois",
		},
		{
			name:  "valor na linha seguinte ao rótulo",
			input: "SIAPE:\n12345\nE-mail: a@b.com",
			chave: models.ChaveSiape,
			want:  "12345",
		},
		{
			name:  "rótulo vazio não engole o próximo campo",
			input: "SIAPE:\n\nE-mail: a@b.com",
			chave: models.ChaveSiape,
			want:  "",
		},
		{
			name:  "rótulo vazio seguido de rótulo",
			input: "SIAPE:\nE-mail: a@b.com",
			chave: models.ChaveSiape,
			want:  "",
		},
		{
			name:  "dois pontos duplos",
			input: "SIAPE:: 12345",
			chave: models.ChaveSiape,
			want:  "12345",
		},
		{
			name:  "URL em linha de continuação",
			input: "Observações gerais: ver edital em\nhttps://ufx.br/edital",
			chave: ChaveObsFinais,
			want:  "ver edital em https://ufx.br/edital",
		},
		{
			name:  "rótulo dentro de outra palavra não casa",
			input: "XSIAPE: 999",
			chave: models.ChaveSiape,
			want:  "",
		},
		{
			name:  "descrição atravessa perguntas numeradas",
			input: "Descreva detalhadamente: caixas\n1) microfone\n2) pedestal\nLogística de Empréstimo\nSIAPE: 1",
			chave: ChaveDescricaoDetalhada,
			want:  "caixas 1) microfone 2) pedestal",
		},
		{
			name:  "descrição termina no parágrafo seguinte",
			input: "Descreva detalhadamente: caixas\nde som\n\nInformações gerais sobre o evento: aula",
			chave: ChaveDescricaoDetalhada,
			want:  "caixas de som",
		},
		{
			name:  "descrição na mesma linha do título de seção",
			input: "Descreva detalhadamente: caixas LOGISTICA DE EMPRESTIMO",
			chave: ChaveDescricaoDetalhada,
			want:  "caixas",
		},
	}

	extrator := NewExtrator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extrator.Extrair(tt.input).Campos[tt.chave]
			if got != tt.want {
				t.Errorf("%s = %q, want %q", tt.chave, got, tt.want)
			}
		})
	}
}

func TestExtrair_RotulosSemCaixaNemAcento(t *testing.T) {
	tests := []struct {
		input string
		chave string
		want  string
	}{
		{"siape: 12345", models.ChaveSiape, "12345"},
		{"Siape: 12345", models.ChaveSiape, "12345"},
		{"NOME DO SOLICITANTE: Ana", models.ChaveResponsavel, "Ana"},
		{"Orgao/Unidade solicitante: Secom", models.ChaveUnidade, "Secom"},
		{"ÓRGÃO/UNIDADE SOLICITANTE: Secom", models.ChaveUnidade, "Secom"},
		{"Email: a@b.com", models.ChaveEmail, "a@b.com"},
		{"Data e horario de inicio: 2025-03-10 14:30", models.ChaveDataInicio, "2025-03-10T14:30"},
		{"Data e horário de termino : 2025-03-10 18:00", models.ChaveDataFim, "2025-03-10T18:00"},
		{"Local do evento/Destino do material: Pátio", models.ChaveEventoLocal, "Pátio"},
		{"Preferência de horário para a equipe entrar em contato: Tarde", models.ChaveHorarioContato, "Tarde"},
	}

	extrator := NewExtrator()
	for _, tt := range tests {
		got := extrator.Extrair(tt.input).Campos[tt.chave]
		if got != tt.want {
			t.Errorf("Extrair(%q)[%s] = %q, want %q", tt.input, tt.chave, got, tt.want)
		}
	}
}

func TestExtrair_DataHora(t *testing.T) {
	got := ExtrairCampos("Data e horário de início: 2025-03-10 14:30")
	if got.DataInicio != "2025-03-10T14:30" {
		t.Errorf("dataInicio = %q, want %q", got.DataInicio, "2025-03-10T14:30")
	}
	if got.DataFim != "" {
		t.Errorf("dataFim = %q, want vazio", got.DataFim)
	}
}

func TestExtrair_CamposCompostos(t *testing.T) {
	got := ExtrairCampos("Marque os itens necessários: Caixa de som\nDescreva detalhadamente: Som ambiente para o pátio")

	want := "Caixa de som. Detalhes: Som ambiente para o pátio"
	if got.Equipamento != want {
		t.Errorf("equipamento = %q, want %q", got.Equipamento, want)
	}

	got = ExtrairCampos("Informações gerais sobre o evento: Aula magna\nObservações gerais: Nenhuma")
	want = "Info Evento: Aula magna\nObs Finais: Nenhuma"
	if got.Observacoes != want {
		t.Errorf("observacoes = %q, want %q", got.Observacoes, want)
	}
}

func TestExtrair_Encontrados(t *testing.T) {
	resultado := NewExtrator().Extrair("SIAPE: 12345\nMarque os itens necessários: Projetor")

	want := []string{models.ChaveEquipamento, models.ChaveSiape}
	if !reflect.DeepEqual(resultado.Encontrados, want) {
		t.Errorf("Encontrados = %v, want %v", resultado.Encontrados, want)
	}
	if len(resultado.Ausentes) != len(models.ChavesReserva)-len(want) {
		t.Errorf("len(Ausentes) = %d, want %d", len(resultado.Ausentes), len(models.ChavesReserva)-len(want))
	}
}

func TestExtrair_EntradaPatologica(t *testing.T) {
	inputs := []string{
		"Nome do Solicitante: " + strings.Repeat("a ", 500000),
		"Descreva detalhadamente: " + strings.Repeat("linha\n\n ", 100000),
		strings.Repeat("Nome do Solicitante", 50000),
		strings.Repeat("x\n", 200000),
		"Observações gerais: " + strings.Repeat("palavra palavra palavra\n", 100000),
	}

	extrator := NewExtrator()
	for i, input := range inputs {
		resultado := extrator.Extrair(input)
		if resultado == nil {
			t.Fatalf("entrada %d: resultado nil", i)
		}
	}
}

func TestBuscarCampo(t *testing.T) {
	tests := []struct {
		nome      string
		wantChave string
		wantOK    bool
	}{
		{"siape", models.ChaveSiape, true},
		{"SIAPE", models.ChaveSiape, true},
		{"dataInicio", models.ChaveDataInicio, true},
		{"data e horario de inicio", models.ChaveDataInicio, true},
		{"Observacoes gerais", ChaveObsFinais, true},
		{"inexistente", "", false},
	}

	for _, tt := range tests {
		campo, ok := BuscarCampo(tt.nome)
		if ok != tt.wantOK || campo.Chave != tt.wantChave {
			t.Errorf("BuscarCampo(%q) = (%q, %v), want (%q, %v)", tt.nome, campo.Chave, ok, tt.wantChave, tt.wantOK)
		}
	}
}

func BenchmarkExtrair(b *testing.B) {
	extrator := NewExtrator()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		extrator.Extrair(chamadoExemplo)
	}
}

func TestExtrair_ComLimpeza(t *testing.T) {
	extrator := NewExtrator(ComLimpeza(strings.ToUpper))

	got := extrator.Extrair("SIAPE: abc\nData e horário de início: 2025-03-10 14:30").Campos

	if got[models.ChaveSiape] != "ABC" {
		t.Errorf("siape = %q, want %q", got[models.ChaveSiape], "ABC")
	}
	if got[models.ChaveDataInicio] != "2025-03-10T14:30" {
		t.Errorf("dataInicio = %q, want %q", got[models.ChaveDataInicio], "2025-03-10T14:30")
	}
	if got[models.ChaveEmail] != "" {
		t.Errorf("email = %q, want vazio", got[models.ChaveEmail])
	}
}
