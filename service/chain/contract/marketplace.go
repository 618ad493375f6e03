package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/marketfront/base/abi"
	bCtx "github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/log"
	"github.com/x-xyz/marketfront/domain"
	"github.com/x-xyz/marketfront/service/chain"
)

type Marketplace struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      common.Address
}

func NewMarketplace(chainService chain.Client, address common.Address) domain.MarketplaceReader {
	return &Marketplace{
		chainService: chainService,
		abi:          baseabi.MarketplaceABI,
		address:      address,
	}
}

func (m *Marketplace) FetchMarketItems(ctx bCtx.Ctx) ([]*domain.MarketItem, error) {
	method := "fetchMarketItems"
	unpacked, err := m.chainService.Call(ctx, m.address, nil, m.abi, method)
	if err != nil {
		return nil, err
	}
	if len(unpacked) != 1 {
		return nil, xerrors.Errorf("unexpected %s outputs: %d", method, len(unpacked))
	}
	raw := *ethabi.ConvertType(unpacked[0], new([]baseabi.MarketItem)).(*[]baseabi.MarketItem)
	items := make([]*domain.MarketItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, &domain.MarketItem{
			TokenId: r.TokenId,
			Seller:  domain.ToAddress(r.Seller),
			Owner:   domain.ToAddress(r.Owner),
			Price:   r.Price,
			Sold:    r.Sold,
		})
	}
	return items, nil
}

func (m *Marketplace) TokenURI(ctx bCtx.Ctx, tokenId *big.Int) (string, error) {
	method := "tokenURI"
	unpacked, err := m.chainService.Call(ctx, m.address, nil, m.abi, method, tokenId)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (m *Marketplace) GetListingPrice(ctx bCtx.Ctx) (*big.Int, error) {
	method := "getListingPrice"
	unpacked, err := m.chainService.Call(ctx, m.address, nil, m.abi, method)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

type marketplaceTransactorFactory struct {
	address common.Address
	backend bind.ContractBackend
}

func NewMarketplaceTransactorFactory(address common.Address, backend bind.ContractBackend) domain.MarketplaceTransactorFactory {
	return &marketplaceTransactorFactory{
		address: address,
		backend: backend,
	}
}

func (f *marketplaceTransactorFactory) New(identity *domain.SigningIdentity) (domain.MarketplaceTransactor, error) {
	if identity == nil || identity.Signer == nil {
		return nil, domain.ErrWalletUnavailable
	}
	return &marketplaceTransactor{
		contract: bind.NewBoundContract(f.address, baseabi.MarketplaceABI, f.backend, f.backend, f.backend),
		identity: identity,
	}, nil
}

type marketplaceTransactor struct {
	contract *bind.BoundContract
	identity *domain.SigningIdentity
}

func (t *marketplaceTransactor) CreateMarketSale(ctx bCtx.Ctx, tokenId *big.Int, value *big.Int) (*types.Transaction, error) {
	opts := &bind.TransactOpts{
		From:    t.identity.From,
		Signer:  t.identity.Signer,
		Value:   value,
		Context: ctx,
	}
	tx, err := t.contract.Transact(opts, "createMarketSale", tokenId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
			"from":    t.identity.From.Hex(),
		}).Error("createMarketSale failed")
		return nil, err
	}
	return tx, nil
}
