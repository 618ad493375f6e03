package usecase

import (
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/log"
	"github.com/x-xyz/marketfront/base/metrics"
	priceformatter "github.com/x-xyz/marketfront/base/price_formatter"
	"github.com/x-xyz/marketfront/domain"
)

const defaultWorkers = 8

type CatalogUseCaseCfg struct {
	Marketplace domain.MarketplaceReader
	Metadata    domain.MetadataUseCase
	Notifier    domain.Notifier
	// Names is optional, seller and owner names are left empty without it
	Names domain.NameResolver
	// Workers bounds the items enriched concurrently
	Workers int
	// IsolateFailures renders a placeholder for an item whose enrichment
	// failed instead of failing the whole load
	IsolateFailures bool
}

type catalogUseCase struct {
	marketplace     domain.MarketplaceReader
	metadata        domain.MetadataUseCase
	notifier        domain.Notifier
	names           domain.NameResolver
	formatter       priceformatter.PriceFormatter
	workers         int
	isolateFailures bool
	metrics         metrics.Service
	now             func() time.Time

	mu    sync.Mutex
	state domain.CatalogState
}

func NewCatalogUseCase(cfg *CatalogUseCaseCfg) domain.CatalogUseCase {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &catalogUseCase{
		marketplace:     cfg.Marketplace,
		metadata:        cfg.Metadata,
		notifier:        cfg.Notifier,
		names:           cfg.Names,
		formatter:       priceformatter.NewPriceFormatter(priceformatter.EtherDecimals),
		workers:         workers,
		isolateFailures: cfg.IsolateFailures,
		metrics:         metrics.New("catalog"),
		now:             time.Now,
		state:           domain.CatalogState{Status: domain.LoadStatusNotLoaded, Items: []*domain.DisplayItem{}},
	}
}

func (u *catalogUseCase) State() domain.CatalogState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.Snapshot()
}

func (u *catalogUseCase) Load(c bCtx.Ctx) ([]*domain.DisplayItem, error) {
	defer u.metrics.BumpTime("load.time").End()

	u.mu.Lock()
	var gen uint64
	u.state, gen = u.state.Begin()
	u.mu.Unlock()

	c = bCtx.WithFields(c, log.Fields{"gen": gen})
	items, err := u.load(c)
	if err != nil {
		u.metrics.BumpSum("load.err", 1)
		items = []*domain.DisplayItem{}
	}

	u.mu.Lock()
	next, ok := u.state.Complete(gen, items, err, u.now())
	u.state = next
	u.mu.Unlock()
	if !ok {
		c.WithField("err", err).Info("a newer load was already applied, result dropped")
	} else if err != nil {
		u.notifier.Notify(c, domain.NotificationLevelError, domain.NotificationSourceCatalog, fmt.Sprintf("Failed to load marketplace items: %v", err))
	}

	if err != nil {
		return nil, err
	}
	return items, nil
}

func (u *catalogUseCase) load(c bCtx.Ctx) ([]*domain.DisplayItem, error) {
	marketItems, err := u.marketplace.FetchMarketItems(c)
	if err != nil {
		c.WithField("err", err).Error("marketplace.FetchMarketItems failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrMarketItemsUnavailable, err)
	}
	if len(marketItems) == 0 {
		return []*domain.DisplayItem{}, nil
	}

	type enriched struct {
		idx  int
		item *domain.DisplayItem
	}

	b := goroutines.NewBatch(u.workers, goroutines.WithBatchSize(len(marketItems)))
	defer b.Close()
	for i := 0; i < len(marketItems); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			m := marketItems[idx]
			// a placeholder cannot stand in for an item it cannot identify
			tokenId, err := displayTokenId(m.TokenId)
			if err != nil {
				c.WithFields(log.Fields{"err": err, "tokenId": m.TokenId}).Error("unsupported token id")
				return nil, err
			}
			item, err := u.enrich(c, tokenId, m)
			if err != nil && u.isolateFailures {
				item, err = u.placeholder(tokenId, m, err), nil
			}
			if err != nil {
				return nil, err
			}
			return &enriched{idx: idx, item: item}, nil
		})
	}
	b.QueueComplete()

	var firstErr error
	items := make([]*domain.DisplayItem, len(marketItems))
	for ret := range b.Results() {
		if ret.Error() != nil {
			if firstErr == nil {
				firstErr = ret.Error()
			}
			continue
		}
		e := ret.Value().(*enriched)
		items[e.idx] = e.item
	}
	if firstErr != nil {
		return nil, firstErr
	}

	if u.names != nil {
		u.resolveNames(c, items)
	}
	return items, nil
}

func (u *catalogUseCase) enrich(c bCtx.Ctx, tokenId int64, m *domain.MarketItem) (*domain.DisplayItem, error) {
	c = bCtx.WithFields(c, log.Fields{"tokenId": m.TokenId})

	uri, err := u.marketplace.TokenURI(c, m.TokenId)
	if err != nil {
		c.WithField("err", err).Error("marketplace.TokenURI failed")
		return nil, err
	}

	doc, err := u.metadata.GetFromUrl(c, uri)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"uri": uri,
		}).Error("metadata.GetFromUrl failed")
		return nil, err
	}

	price, err := u.formatter.Format(m.Price)
	if err != nil {
		c.WithField("err", err).Error("formatter.Format failed")
		return nil, err
	}

	return &domain.DisplayItem{
		TokenId:     tokenId,
		Seller:      m.Seller,
		Owner:       m.Owner,
		Price:       price,
		Image:       doc.Image,
		Name:        doc.Name,
		Description: doc.Description,
	}, nil
}

func (u *catalogUseCase) placeholder(tokenId int64, m *domain.MarketItem, err error) *domain.DisplayItem {
	item := &domain.DisplayItem{
		TokenId:       tokenId,
		Seller:        m.Seller,
		Owner:         m.Owner,
		MetadataError: err.Error(),
	}
	if price, err := u.formatter.Format(m.Price); err == nil {
		item.Price = price
	}
	return item
}

// displayTokenId rejects ids the int64 keyed catalog cannot hold unchanged
func displayTokenId(id *big.Int) (int64, error) {
	if id == nil || id.Sign() < 0 || !id.IsInt64() {
		return 0, xerrors.Errorf("%w: %v", domain.ErrInvalidTokenId, id)
	}
	return id.Int64(), nil
}

// resolveNames fills seller and owner names, failures leave them empty
func (u *catalogUseCase) resolveNames(c bCtx.Ctx, items []*domain.DisplayItem) {
	resolve := func(addr domain.Address) string {
		if addr.IsEmpty() || addr.Equals(domain.EmptyAddress) {
			return ""
		}
		name, err := u.names.ReverseResolve(c, addr)
		if err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"address": addr,
			}).Warn("names.ReverseResolve failed")
			return ""
		}
		return name
	}
	for _, item := range items {
		item.SellerName = resolve(item.Seller)
		item.OwnerName = resolve(item.Owner)
	}
}

func (u *catalogUseCase) ListingPrice(c bCtx.Ctx) (string, error) {
	price, err := u.marketplace.GetListingPrice(c)
	if err != nil {
		c.WithField("err", err).Error("marketplace.GetListingPrice failed")
		return "", err
	}
	return u.formatter.Format(price)
}
