package domain

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/x-xyz/marketfront/base/ctx"
)

// SigningIdentity is a wallet-derived credential able to authorize transactions
type SigningIdentity struct {
	From   common.Address
	Signer bind.SignerFn
}

// WalletConnector establishes a wallet connection and yields its signing identity
type WalletConnector interface {
	Connect(ctx.Ctx) (*SigningIdentity, error)
}
