// Package bootstrap builds the marketfront use cases from viper config
package bootstrap

import (
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/database/redisclient"
	"github.com/x-xyz/marketfront/base/ethereum"
	"github.com/x-xyz/marketfront/base/log"
	"github.com/x-xyz/marketfront/base/metrics"
	bValidator "github.com/x-xyz/marketfront/base/validator"
	"github.com/x-xyz/marketfront/domain"
	hcdomain "github.com/x-xyz/marketfront/domain/healthcheck"
	"github.com/x-xyz/marketfront/domain/keys"
	"github.com/x-xyz/marketfront/service/cache"
	"github.com/x-xyz/marketfront/service/cache/provider"
	"github.com/x-xyz/marketfront/service/cache/provider/compound"
	"github.com/x-xyz/marketfront/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/marketfront/service/cache/provider/redis"
	"github.com/x-xyz/marketfront/service/chain"
	"github.com/x-xyz/marketfront/service/chain/contract"
	"github.com/x-xyz/marketfront/service/ens"
	"github.com/x-xyz/marketfront/service/redis"
	"github.com/x-xyz/marketfront/service/wallet"
	catalog_usecase "github.com/x-xyz/marketfront/stores/catalog/usecase"
	hc_repo "github.com/x-xyz/marketfront/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/marketfront/stores/healthcheck/usecase"
	metadata_usecase "github.com/x-xyz/marketfront/stores/metadata/usecase"
	notification_repository "github.com/x-xyz/marketfront/stores/notification/repository"
	notification_usecase "github.com/x-xyz/marketfront/stores/notification/usecase"
	purchase_usecase "github.com/x-xyz/marketfront/stores/purchase/usecase"
	web_resource_repository "github.com/x-xyz/marketfront/stores/web_resource/repository"
	web_resource_usecase "github.com/x-xyz/marketfront/stores/web_resource/usecase"
)

const (
	CacheProviderMemory   = "memory"
	CacheProviderRedis    = "redis"
	CacheProviderCompound = "compound"
)

var ErrInvalidConfig = xerrors.New("invalid config")

type App struct {
	Catalog      domain.CatalogUseCase
	Purchase     domain.PurchaseUseCase
	Notification domain.NotificationUseCase
	HealthCheck  hcdomain.HealthCheckUsecase
	Cache        provider.Provider
}

func New(c ctx.Ctx) (*App, error) {
	marketplaceAddress := viper.GetString("marketplace.address")
	if !bValidator.IsValidAddress(marketplaceAddress) {
		return nil, xerrors.Errorf("%w: marketplace.address %q", ErrInvalidConfig, marketplaceAddress)
	}
	chainId := viper.GetInt64("chain.chainId")

	// init chain client
	c.Info("init chain client")
	rpcUrl := viper.GetString("chain.rpcUrl")
	client, err := ethclient.DialContext(c, rpcUrl)
	if err != nil {
		c.WithFields(log.Fields{"rpcUrl": rpcUrl, "err": err}).Error("ethclient.DialContext failed")
		return nil, err
	}
	throttled := ethereum.NewTrottledClient(client, viper.GetInt("chain.maxConcurrentCalls"))
	chainService := chain.NewClient(throttled)

	// init cache
	cacheProvider, err := newCacheProvider(c)
	if err != nil {
		return nil, err
	}

	// init notification
	var sinks []domain.NotificationSink
	if botKey := viper.GetString("discord.botKey"); botKey != "" {
		c.Info("init discord sink")
		sink, err := notification_repository.NewDiscordSink(botKey, viper.GetString("discord.channelId"))
		if err != nil {
			c.WithField("err", err).Error("NewDiscordSink failed")
			return nil, err
		}
		sinks = append(sinks, sink)
	}
	notification := notification_usecase.NewNotificationUseCase(&notification_usecase.NotificationUseCaseCfg{
		Capacity: viper.GetInt("notification.capacity"),
		Sinks:    sinks,
	})

	// init metadata
	metadataTimeout := viper.GetDuration("metadata.timeout")
	httpClient := &http.Client{}
	ipfsReader := web_resource_repository.NewIpfsGatewayReaderRepo(httpClient, viper.GetString("ipfs.gateway"), metadataTimeout)
	if nodeApi := viper.GetString("ipfs.nodeApi"); nodeApi != "" {
		ipfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeApi), metadataTimeout)
	}
	webResource := web_resource_usecase.NewWebResourceUseCase(&web_resource_usecase.WebResourceUseCaseCfg{
		HttpReader:    web_resource_repository.NewHttpReaderRepo(httpClient, metadataTimeout, nil),
		IpfsReader:    ipfsReader,
		DataUriReader: web_resource_repository.NewDataUriReaderRepo(),
		ArUriReader:   web_resource_repository.NewArReaderRepo(httpClient, viper.GetString("arweave.gateway"), metadataTimeout),
	})
	metadataCfg := &metadata_usecase.MetadataUseCaseCfg{WebResource: webResource}
	if ttl := viper.GetDuration("metadata.cacheTtl"); ttl > 0 {
		metadataCfg.Cache = cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   keys.PfxMetadata,
			Cache: cacheProvider,
		})
	}
	metadata := metadata_usecase.NewMetadataUseCase(metadataCfg)

	// init catalog
	address := common.HexToAddress(marketplaceAddress)
	catalogCfg := &catalog_usecase.CatalogUseCaseCfg{
		Marketplace:     contract.NewMarketplace(chainService, address),
		Metadata:        metadata,
		Notifier:        notification,
		Workers:         viper.GetInt("catalog.workers"),
		IsolateFailures: viper.GetBool("catalog.isolateFailures"),
	}
	if viper.GetBool("ens.enabled") {
		names, err := newNameResolver(c, throttled, cacheProvider)
		if err != nil {
			return nil, err
		}
		catalogCfg.Names = names
	}
	catalog := catalog_usecase.NewCatalogUseCase(catalogCfg)

	// init purchase
	purchase := purchase_usecase.NewPurchaseUseCase(&purchase_usecase.PurchaseUseCaseCfg{
		Wallet: wallet.New(&wallet.Cfg{
			ChainId:       chainId,
			KeystoreDir:   viper.GetString("wallet.keystore"),
			Passphrase:    viper.GetString("wallet.passphrase"),
			UnlockTimeout: viper.GetDuration("purchase.confirmTimeout"),
			PrivateKey:    viper.GetString("wallet.privateKey"),
		}),
		Transactors: contract.NewMarketplaceTransactorFactory(address, throttled),
		Waiter: chain.NewReceiptWaiter(&chain.ReceiptWaiterCfg{
			Client:       throttled,
			PollInterval: viper.GetDuration("purchase.pollInterval"),
			MaxInterval:  viper.GetDuration("purchase.maxPollInterval"),
			Timeout:      viper.GetDuration("purchase.confirmTimeout"),
		}),
		Catalog:  catalog,
		Notifier: notification,
	})

	return &App{
		Catalog:      catalog,
		Purchase:     purchase,
		Notification: notification,
		HealthCheck:  hc_usecase.New(hc_repo.New(throttled, cacheProvider)),
		Cache:        cacheProvider,
	}, nil
}

func newCacheProvider(c ctx.Ctx) (provider.Provider, error) {
	kind := viper.GetString("cache.provider")
	if kind == "" {
		kind = CacheProviderMemory
	}

	var layers []provider.Provider
	if kind == CacheProviderMemory || kind == CacheProviderCompound {
		c.Info("init memory cache")
		layers = append(layers, primitive.NewPrimitive("marketfront", viper.GetInt("cache.sizeMB")))
	}
	if kind == CacheProviderRedis || kind == CacheProviderCompound {
		c.Info("init redis cache")
		redisCacheName := viper.GetString("redis_cache.name")
		pool, err := redisclient.ConnectRedis(c, viper.GetString("redis_cache.uri"), viper.GetString("redis_cache.password"), redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retries:        viper.GetInt("redis_cache.retries"),
		})
		if err != nil {
			return nil, err
		}
		layers = append(layers, redisProvider.NewRedis(redis.New(redisCacheName, metrics.New(redisCacheName), pool)))
	}

	switch len(layers) {
	case 0:
		return nil, xerrors.Errorf("%w: cache.provider %q", ErrInvalidConfig, kind)
	case 1:
		return layers[0], nil
	}
	return compound.NewCompound(layers...), nil
}

// newNameResolver looks names up on ens.rpcUrl, or on the main rpc when unset
func newNameResolver(c ctx.Ctx, backend bind.ContractBackend, p provider.Provider) (domain.NameResolver, error) {
	if rpcUrl := viper.GetString("ens.rpcUrl"); rpcUrl != "" {
		client, err := ethclient.DialContext(c, rpcUrl)
		if err != nil {
			c.WithFields(log.Fields{"rpcUrl": rpcUrl, "err": err}).Error("ethclient.DialContext failed")
			return nil, err
		}
		backend = client
	}
	ttl := viper.GetDuration("ens.cacheTtl")
	if ttl <= 0 {
		ttl = time.Hour
	}
	return ens.New(backend, cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Cache: p,
	})), nil
}
