package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestMarketplaceABI_Methods(t *testing.T) {
	req := require.New(t)
	for _, name := range []string{"fetchMarketItems", "tokenURI", "getListingPrice", "createMarketSale"} {
		_, ok := MarketplaceABI.Methods[name]
		req.True(ok, name)
	}
	req.True(MarketplaceABI.Methods["createMarketSale"].IsPayable())
	req.True(MarketplaceABI.Methods["fetchMarketItems"].IsConstant())
	_, ok := MarketplaceABI.Events["MarketItemCreated"]
	req.True(ok)
}

func TestMarketplaceABI_FetchMarketItemsDecode(t *testing.T) {
	req := require.New(t)
	items := []MarketItem{
		{TokenId: big.NewInt(1), Seller: common.HexToAddress("0xa"), Owner: common.HexToAddress("0xb"), Price: big.NewInt(1000)},
		{TokenId: big.NewInt(2), Seller: common.HexToAddress("0xc"), Owner: common.HexToAddress("0xd"), Price: big.NewInt(2000)},
	}
	encoded, err := MarketplaceABI.Methods["fetchMarketItems"].Outputs.Pack(items)
	req.NoError(err)

	unpacked, err := MarketplaceABI.Unpack("fetchMarketItems", encoded)
	req.NoError(err)
	req.Len(unpacked, 1)

	got := *abi.ConvertType(unpacked[0], new([]MarketItem)).(*[]MarketItem)
	req.Equal(items, got)
}
