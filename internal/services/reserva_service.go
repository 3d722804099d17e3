package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/glpi"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/models"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ReservaService prepara reservas de equipamentos a partir de chamados GLPI
type ReservaService struct {
	extrator         *glpi.Extrator
	extratorMarkdown *glpi.Extrator
	cache            *glpi.Cache
	validator        *validator.Validate
	maxTextoBytes    int

	agora  func() time.Time
	novoID func() string
}

// NewReservaService cria um novo serviço de reservas. cache pode ser nil.
func NewReservaService(cache *glpi.Cache, maxTextoBytes int) *ReservaService {
	return &ReservaService{
		extrator:         glpi.NewExtrator(),
		extratorMarkdown: glpi.NewExtrator(glpi.ComLimpeza(utils.StripMarkdown)),
		cache:            cache,
		validator:        validator.New(),
		maxTextoBytes:    maxTextoBytes,
		agora:            time.Now,
		novoID:           uuid.NewString,
	}
}

// ExtrairTexto extrai os campos da reserva do texto colado pelo usuário
func (s *ReservaService) ExtrairTexto(ctx context.Context, req *models.ExtracaoRequest) (*models.ExtracaoResponse, error) {
	ctx, span := otel.Tracer("reservas").Start(ctx, "ExtrairTexto")
	defer span.End()

	if strings.TrimSpace(req.Texto) == "" {
		span.SetStatus(codes.Error, models.ErrTextoVazio.Error())
		return nil, models.ErrTextoVazio
	}
	if s.maxTextoBytes > 0 && len(req.Texto) > s.maxTextoBytes {
		span.SetStatus(codes.Error, models.ErrTextoMuitoLongo.Error())
		return nil, fmt.Errorf("%w: %d bytes (máximo %d)", models.ErrTextoMuitoLongo, len(req.Texto), s.maxTextoBytes)
	}

	request := *req
	if request.Formato == "" {
		request.Formato = models.FormatoTexto
	}
	if err := s.validator.Struct(&request); err != nil {
		span.SetStatus(codes.Error, models.ErrFormatoInvalido.Error())
		return nil, models.ErrFormatoInvalido
	}
	formato := request.Formato

	span.SetAttributes(
		attribute.Int("glpi.texto_bytes", len(req.Texto)),
		attribute.String("glpi.formato", formato),
	)

	key := glpi.GerarChave(req.Texto, formato)
	var resultado *glpi.Resultado
	if s.cache != nil {
		resultado = s.cache.Get(key)
	}
	emCache := resultado != nil

	if resultado == nil {
		_, extracaoSpan := otel.Tracer("reservas").Start(ctx, "glpi.Extrair")
		extrator := s.extrator
		if formato == models.FormatoMarkdown {
			extrator = s.extratorMarkdown
		}
		resultado = extrator.Extrair(req.Texto)
		extracaoSpan.SetAttributes(attribute.Int("glpi.campos_encontrados", len(resultado.Encontrados)))
		extracaoSpan.End()

		if s.cache != nil {
			s.cache.Set(key, resultado)
		}
	}

	span.SetAttributes(
		attribute.Bool("glpi.em_cache", emCache),
		attribute.Int("glpi.campos_encontrados", len(resultado.Encontrados)),
	)
	span.SetStatus(codes.Ok, "extração concluída")

	response := &models.ExtracaoResponse{
		Reserva:           resultado.Reserva,
		QuerMontagem:      resultado.Reserva.QuerMontagem(),
		CamposEncontrados: resultado.Encontrados,
		CamposAusentes:    resultado.Ausentes,
		EmCache:           emCache,
	}
	if req.Resumo {
		response.ResumoHTML = utils.RenderMarkdown(MontarResumo(resultado.Reserva))
	}

	log.Printf("[reservas] extração concluída: %d/%d campos encontrados (formato=%s, cache=%v)",
		len(resultado.Encontrados), len(models.ChavesReserva), formato, emCache)

	return response, nil
}

// PrepararReserva valida o formulário revisado e monta o payload de addReservation
func (s *ReservaService) PrepararReserva(ctx context.Context, req *models.ReservaRequest, criadoPor string) (*models.Reserva, error) {
	_, span := otel.Tracer("reservas").Start(ctx, "PrepararReserva")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		span.SetStatus(codes.Error, "validação falhou")
		return nil, fmt.Errorf("%w: %v", models.ErrValidacao, err)
	}

	inicio, err := time.Parse(glpi.LayoutDataHora, req.DataInicio)
	if err != nil {
		return nil, fmt.Errorf("%w: dataInicio: %v", models.ErrValidacao, err)
	}
	fim, err := time.Parse(glpi.LayoutDataHora, req.DataFim)
	if err != nil {
		return nil, fmt.Errorf("%w: dataFim: %v", models.ErrValidacao, err)
	}
	if fim.Before(inicio) {
		span.SetStatus(codes.Error, models.ErrIntervaloInvalido.Error())
		return nil, models.ErrIntervaloInvalido
	}

	id := s.novoID()
	nomeSlug := req.EventoNome
	if nomeSlug == "" {
		nomeSlug = req.Equipamento
	}

	desejaMontagem := "Não"
	if req.DesejaMontagem {
		desejaMontagem = "Sim"
	}

	data, horaInicio := models.DividirDataHora(req.DataInicio)
	_, horaFim := models.DividirDataHora(req.DataFim)

	reserva := &models.Reserva{
		ID:                id,
		Slug:              utils.GenerateSlug(nomeSlug, id),
		EventoNome:        strings.TrimSpace(req.EventoNome),
		Equipamento:       strings.TrimSpace(req.Equipamento),
		Responsavel:       strings.TrimSpace(req.Responsavel),
		Unidade:           strings.TrimSpace(req.Unidade),
		Siape:             strings.TrimSpace(req.Siape),
		Email:             strings.TrimSpace(req.Email),
		Telefone:          strings.TrimSpace(req.Telefone),
		HorarioContato:    strings.TrimSpace(req.HorarioContato),
		EventoLocal:       strings.TrimSpace(req.EventoLocal),
		DataInicio:        req.DataInicio,
		DataFim:           req.DataFim,
		PublicoTipo:       strings.TrimSpace(req.PublicoTipo),
		VerbaPublica:      strings.TrimSpace(req.VerbaPublica),
		RetiradaDataHora:  req.RetiradaDataHora,
		DevolucaoDataHora: req.DevolucaoDataHora,
		MontagemDataHora:  req.MontagemDataHora,
		DesejaMontagem:    desejaMontagem,
		Observacoes:       strings.TrimSpace(req.Observacoes),
		Data:              data,
		HoraInicio:        horaInicio,
		HoraFim:           horaFim,
		CriadoPor:         criadoPor,
		CriadoEm:          s.agora().Unix(),
	}

	span.SetAttributes(attribute.String("reserva.id", reserva.ID))
	log.Printf("[reservas] reserva %s preparada para %s (%s)", reserva.Slug, reserva.Data, criadoPor)

	return reserva, nil
}
