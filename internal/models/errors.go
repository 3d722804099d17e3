package models

import "errors"

var (
	ErrTextoVazio        = errors.New("texto do chamado é obrigatório")
	ErrTextoMuitoLongo   = errors.New("texto do chamado excede o tamanho máximo permitido")
	ErrFormatoInvalido   = errors.New("formato inválido (use: texto, markdown)")
	ErrIntervaloInvalido = errors.New("data de término anterior à data de início")
	ErrValidacao         = errors.New("dados da reserva inválidos")
)
