package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/x-xyz/marketfront/base/ctx"
)

// MarketItem is an unsold listing as returned by the marketplace contract
type MarketItem struct {
	TokenId *big.Int
	Seller  Address
	Owner   Address
	// Price in base units (wei)
	Price *big.Int
	Sold  bool
}

// DisplayItem is a MarketItem enriched with its metadata document and a
// display price in whole currency units
type DisplayItem struct {
	TokenId     int64   `json:"tokenId"`
	Seller      Address `json:"seller"`
	Owner       Address `json:"owner"`
	Price       string  `json:"price"`
	Image       string  `json:"image"`
	Name        string  `json:"name"`
	Description string  `json:"description"`

	SellerName string `json:"sellerName,omitempty"`
	OwnerName  string `json:"ownerName,omitempty"`
	// MetadataError is only set for placeholder items when per-item
	// failure isolation is enabled
	MetadataError string `json:"metadataError,omitempty"`
}

// MarketplaceReader is the read-only side of the marketplace contract
type MarketplaceReader interface {
	FetchMarketItems(ctx.Ctx) ([]*MarketItem, error)
	TokenURI(ctx.Ctx, *big.Int) (string, error)
	GetListingPrice(ctx.Ctx) (*big.Int, error)
}

// MarketplaceTransactor is the signing side of the marketplace contract
type MarketplaceTransactor interface {
	CreateMarketSale(c ctx.Ctx, tokenId *big.Int, value *big.Int) (*types.Transaction, error)
}

// MarketplaceTransactorFactory binds a transactor to a signing identity
type MarketplaceTransactorFactory interface {
	New(*SigningIdentity) (MarketplaceTransactor, error)
}

// TxWaiter blocks until a transaction is mined
type TxWaiter interface {
	WaitMined(ctx.Ctx, *types.Transaction) (*types.Receipt, error)
}

// NameResolver resolves an address to a human readable name, e.g. ENS
type NameResolver interface {
	ReverseResolve(ctx.Ctx, Address) (string, error)
}
