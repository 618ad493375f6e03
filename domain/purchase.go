package domain

import (
	"github.com/x-xyz/marketfront/base/ctx"
)

type PurchaseResult struct {
	TokenId     int64   `json:"tokenId"`
	Buyer       Address `json:"buyer"`
	Value       string  `json:"value"`
	TxHash      TxHash  `json:"txHash"`
	BlockNumber uint64  `json:"blockNumber"`
	GasUsed     uint64  `json:"gasUsed"`
}

type PurchaseUseCase interface {
	// Purchase buys item at its displayed price and reloads the catalog once confirmed
	Purchase(ctx.Ctx, *DisplayItem) (*PurchaseResult, error)
}
