package usecase

import (
	"fmt"
	"math/big"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/log"
	"github.com/x-xyz/marketfront/base/metrics"
	priceformatter "github.com/x-xyz/marketfront/base/price_formatter"
	"github.com/x-xyz/marketfront/domain"
)

type PurchaseUseCaseCfg struct {
	Wallet      domain.WalletConnector
	Transactors domain.MarketplaceTransactorFactory
	Waiter      domain.TxWaiter
	Catalog     domain.CatalogUseCase
	Notifier    domain.Notifier
}

type purchaseUseCase struct {
	wallet      domain.WalletConnector
	transactors domain.MarketplaceTransactorFactory
	waiter      domain.TxWaiter
	catalog     domain.CatalogUseCase
	notifier    domain.Notifier
	formatter   priceformatter.PriceFormatter
	metrics     metrics.Service
}

func NewPurchaseUseCase(cfg *PurchaseUseCaseCfg) domain.PurchaseUseCase {
	return &purchaseUseCase{
		wallet:      cfg.Wallet,
		transactors: cfg.Transactors,
		waiter:      cfg.Waiter,
		catalog:     cfg.Catalog,
		notifier:    cfg.Notifier,
		formatter:   priceformatter.NewPriceFormatter(priceformatter.EtherDecimals),
		metrics:     metrics.New("purchase"),
	}
}

// Purchase runs detached from c's cancellation, a submitted transaction is
// always waited for.
func (u *purchaseUseCase) Purchase(c bCtx.Ctx, item *domain.DisplayItem) (*domain.PurchaseResult, error) {
	defer u.metrics.BumpTime("time").End()

	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.TokenId < 0 {
		return nil, domain.ErrInvalidTokenId
	}
	c = bCtx.WithFields(bCtx.Detach(c), log.Fields{
		"tokenId": item.TokenId,
		"price":   item.Price,
	})

	res, err := u.purchase(c, item)
	if err != nil {
		u.metrics.BumpSum("err", 1)
		u.notifier.Notify(c, domain.NotificationLevelError, domain.NotificationSourcePurchase, err.Error())
		return nil, err
	}

	u.notifier.Notify(c, domain.NotificationLevelSuccess, domain.NotificationSourcePurchase, successMessage(item, res))
	if _, err := u.catalog.Load(c); err != nil {
		// the catalog notifies its own failures
		c.WithField("err", err).Warn("catalog.Load after purchase failed")
	}
	return res, nil
}

func (u *purchaseUseCase) purchase(c bCtx.Ctx, item *domain.DisplayItem) (*domain.PurchaseResult, error) {
	identity, err := u.wallet.Connect(c)
	if err != nil {
		c.WithField("err", err).Error("wallet.Connect failed")
		return nil, xerrors.Errorf("wallet connection failed: %w", err)
	}
	c = bCtx.WithFields(c, log.Fields{"buyer": identity.From.Hex()})

	transactor, err := u.transactors.New(identity)
	if err != nil {
		c.WithField("err", err).Error("transactors.New failed")
		return nil, xerrors.Errorf("failed to bind marketplace: %w", err)
	}

	value, err := u.formatter.Parse(item.Price)
	if err != nil {
		c.WithField("err", err).Error("formatter.Parse failed")
		return nil, xerrors.Errorf("%w: price %q: %v", domain.ErrBadParamInput, item.Price, err)
	}

	tx, err := transactor.CreateMarketSale(c, big.NewInt(item.TokenId), value)
	if err != nil {
		c.WithField("err", err).Error("transactor.CreateMarketSale failed")
		return nil, xerrors.Errorf("transaction failed: %w", err)
	}
	c = bCtx.WithFields(c, log.Fields{"txHash": tx.Hash().Hex()})
	c.Info("purchase submitted")

	receipt, err := u.waiter.WaitMined(c, tx)
	if err != nil {
		c.WithField("err", err).Error("waiter.WaitMined failed")
		return nil, xerrors.Errorf("transaction %s: %w", tx.Hash().Hex(), err)
	}
	c.Info("purchase confirmed")

	res := &domain.PurchaseResult{
		TokenId: item.TokenId,
		Buyer:   domain.Address(identity.From.Hex()).ToLower(),
		Value:   priceformatter.FormatEther(value),
		TxHash:  domain.TxHash(tx.Hash().Hex()),
		GasUsed: receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		res.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return res, nil
}

func successMessage(item *domain.DisplayItem, res *domain.PurchaseResult) string {
	name := item.Name
	if name == "" {
		name = fmt.Sprintf("token #%d", item.TokenId)
	}
	return fmt.Sprintf("Purchased %s for %s ETH", name, res.Value)
}
