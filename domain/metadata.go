package domain

import (
	"github.com/x-xyz/marketfront/base/ctx"
)

// MetadataDocument is the off-chain document a tokenURI points at
type MetadataDocument struct {
	Image       string `json:"image"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type MetadataUseCase interface {
	GetFromUrl(ctx.Ctx, string) (*MetadataDocument, error)
}
