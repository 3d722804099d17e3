package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/config"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/glpi"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/models"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/services"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/utils"
)

func main() {
	arquivo := flag.String("arquivo", "", "Arquivo com o texto do chamado (padrão: stdin)")
	formato := flag.String("formato", models.FormatoTexto, "Formato do texto: texto, markdown")
	campo := flag.String("campo", "", "Imprimir apenas um campo (chave ou rótulo)")
	resumo := flag.Bool("resumo", false, "Imprimir o resumo em markdown em vez do JSON")

	flag.Parse()

	log.SetFlags(0)

	cfg := config.LoadConfig()

	texto, err := lerTexto(*arquivo)
	if err != nil {
		log.Fatalf("Erro ao ler chamado: %v", err)
	}

	svc := services.NewReservaService(nil, cfg.Extracao.MaxTextoBytes)
	response, err := svc.ExtrairTexto(context.Background(), &models.ExtracaoRequest{
		Texto:   texto,
		Formato: *formato,
	})
	if err != nil {
		log.Fatalf("Erro na extração: %v", err)
	}

	switch {
	case *campo != "":
		valor, err := valorCampo(response.Reserva, texto, *formato, *campo)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(valor)
	case *resumo:
		fmt.Print(services.MontarResumo(response.Reserva))
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(response); err != nil {
			log.Fatalf("Erro ao serializar resultado: %v", err)
		}
	}
}

func lerTexto(arquivo string) (string, error) {
	if arquivo == "" || arquivo == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(arquivo)
	return string(data), err
}

// valorCampo aceita uma chave do registro final (ex.: "equipamento") ou
// qualquer campo do formulário, pela chave ou pelo rótulo
func valorCampo(reserva models.ReservaExtraida, texto, formato, nome string) (string, error) {
	if valor, ok := reserva.ToMap()[nome]; ok {
		return valor, nil
	}

	c, ok := glpi.BuscarCampo(nome)
	if !ok {
		return "", fmt.Errorf("campo desconhecido: %q", nome)
	}

	extrator := glpi.NewExtrator()
	if formato == models.FormatoMarkdown {
		extrator = glpi.NewExtrator(glpi.ComLimpeza(utils.StripMarkdown))
	}
	return extrator.Extrair(texto).Campos[c.Chave], nil
}
