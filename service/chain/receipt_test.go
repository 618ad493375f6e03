package chain

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/domain"
	"github.com/x-xyz/marketfront/domain/mocks"
)

func newTx() *types.Transaction {
	return types.NewTransaction(1, common.HexToAddress("0x1"), big.NewInt(1), 21000, big.NewInt(1), nil)
}

func TestReceiptWaiter_WaitMined(t *testing.T) {
	ctx := bCtx.Background()
	tx := newTx()

	t.Run("mined after polling", func(t *testing.T) {
		req := require.New(t)
		eth := &mocks.EthClientRepo{}
		receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(10), TxHash: tx.Hash()}
		eth.On("TransactionReceipt", mock.Anything, tx.Hash()).Return(nil, ethereum.NotFound).Twice()
		eth.On("TransactionReceipt", mock.Anything, tx.Hash()).Return(nil, errors.New("timeout")).Once()
		eth.On("TransactionReceipt", mock.Anything, tx.Hash()).Return(receipt, nil).Once()

		w := NewReceiptWaiter(&ReceiptWaiterCfg{Client: eth, PollInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond})
		got, err := w.WaitMined(ctx, tx)
		req.NoError(err)
		req.Equal(receipt, got)
		eth.AssertNumberOfCalls(t, "TransactionReceipt", 4)
	})

	t.Run("reverted", func(t *testing.T) {
		req := require.New(t)
		eth := &mocks.EthClientRepo{}
		receipt := &types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(10)}
		eth.On("TransactionReceipt", mock.Anything, tx.Hash()).Return(receipt, nil)

		w := NewReceiptWaiter(&ReceiptWaiterCfg{Client: eth, PollInterval: time.Millisecond})
		got, err := w.WaitMined(ctx, tx)
		req.ErrorIs(err, domain.ErrTransactionReverted)
		req.Equal(receipt, got)
	})

	t.Run("timeout", func(t *testing.T) {
		req := require.New(t)
		eth := &mocks.EthClientRepo{}
		eth.On("TransactionReceipt", mock.Anything, tx.Hash()).Return(nil, ethereum.NotFound)

		w := NewReceiptWaiter(&ReceiptWaiterCfg{Client: eth, PollInterval: 5 * time.Millisecond, Timeout: 30 * time.Millisecond})
		got, err := w.WaitMined(ctx, tx)
		req.Nil(got)
		req.ErrorIs(err, domain.ErrTransactionNotMined)
	})
}
