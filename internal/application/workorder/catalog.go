package workorder

import "github.com/shopspring/decimal"

// CatalogEntry item da tabela fixa de serviços comuns, usada pelo atalho de
// lançamento rápido no editor de OS.
type CatalogEntry struct {
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// Catalog tabela estática de serviços e preços de referência da funilaria.
var Catalog = []CatalogEntry{
	{Description: "Funilaria - Porta", Price: decimal.NewFromInt(450)},
	{Description: "Funilaria - Para-lama", Price: decimal.NewFromInt(350)},
	{Description: "Funilaria - Capô", Price: decimal.NewFromInt(600)},
	{Description: "Pintura - Peça Inteira", Price: decimal.NewFromInt(350)},
	{Description: "Pintura - Retoque", Price: decimal.NewFromInt(200)},
	{Description: "Polimento Completo", Price: decimal.NewFromInt(400)},
	{Description: "Cristalização", Price: decimal.NewFromInt(600)},
	{Description: "Martelinho de Ouro (unid)", Price: decimal.NewFromInt(150)},
	{Description: "Montagem/Desmontagem", Price: decimal.NewFromInt(180)},
}
