package contract

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	baseabi "github.com/x-xyz/marketfront/base/abi"
	bCtx "github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/domain"
	"github.com/x-xyz/marketfront/domain/mocks"
	"github.com/x-xyz/marketfront/service/chain"
)

var marketAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

func TestMarketplace_FetchMarketItems(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	raw := []baseabi.MarketItem{
		{TokenId: big.NewInt(1), Seller: common.HexToAddress("0xa"), Owner: marketAddr, Price: big.NewInt(2500000000000000000)},
		{TokenId: big.NewInt(7), Seller: common.HexToAddress("0xb"), Owner: marketAddr, Price: big.NewInt(1)},
	}
	encoded, err := baseabi.MarketplaceABI.Methods["fetchMarketItems"].Outputs.Pack(raw)
	req.NoError(err)

	eth := &mocks.EthClientRepo{}
	eth.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(encoded, nil)
	m := NewMarketplace(chain.NewClient(eth), marketAddr)

	items, err := m.FetchMarketItems(ctx)
	req.NoError(err)
	req.Equal([]*domain.MarketItem{
		{TokenId: big.NewInt(1), Seller: domain.ToAddress(common.HexToAddress("0xa")), Owner: domain.ToAddress(marketAddr), Price: big.NewInt(2500000000000000000)},
		{TokenId: big.NewInt(7), Seller: domain.ToAddress(common.HexToAddress("0xb")), Owner: domain.ToAddress(marketAddr), Price: big.NewInt(1)},
	}, items)
}

func TestMarketplace_FetchMarketItemsEmpty(t *testing.T) {
	req := require.New(t)
	encoded, err := baseabi.MarketplaceABI.Methods["fetchMarketItems"].Outputs.Pack([]baseabi.MarketItem{})
	req.NoError(err)

	eth := &mocks.EthClientRepo{}
	eth.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(encoded, nil)
	items, err := NewMarketplace(chain.NewClient(eth), marketAddr).FetchMarketItems(bCtx.Background())
	req.NoError(err)
	req.Empty(items)
}

func TestMarketplace_TokenURI(t *testing.T) {
	req := require.New(t)
	encoded, err := baseabi.MarketplaceABI.Methods["tokenURI"].Outputs.Pack("ipfs://QmHash/1.json")
	req.NoError(err)
	data, err := baseabi.MarketplaceABI.Pack("tokenURI", big.NewInt(1))
	req.NoError(err)

	eth := &mocks.EthClientRepo{}
	eth.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(encoded, nil)
	uri, err := NewMarketplace(chain.NewClient(eth), marketAddr).TokenURI(bCtx.Background(), big.NewInt(1))
	req.NoError(err)
	req.Equal("ipfs://QmHash/1.json", uri)
	req.Equal(data, eth.Calls[0].Arguments.Get(1).(ethereum.CallMsg).Data)
}

func TestMarketplace_GetListingPriceError(t *testing.T) {
	eth := &mocks.EthClientRepo{}
	eth.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("execution reverted"))
	_, err := NewMarketplace(chain.NewClient(eth), marketAddr).GetListingPrice(bCtx.Background())
	require.Error(t, err)
}

func TestMarketplaceTransactorFactory_New(t *testing.T) {
	f := NewMarketplaceTransactorFactory(marketAddr, nil)
	_, err := f.New(nil)
	require.ErrorIs(t, err, domain.ErrWalletUnavailable)
	_, err = f.New(&domain.SigningIdentity{From: common.HexToAddress("0x1")})
	require.ErrorIs(t, err, domain.ErrWalletUnavailable)
}
