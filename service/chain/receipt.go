package chain

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketfront/base/backoff"
	bCtx "github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/log"
	"github.com/x-xyz/marketfront/domain"
)

type ReceiptWaiterCfg struct {
	Client       domain.EthClientRepo
	PollInterval time.Duration
	MaxInterval  time.Duration
	// Timeout bounds a single WaitMined call, 0 waits until ctx ends
	Timeout time.Duration
}

type receiptWaiter struct {
	client       domain.EthClientRepo
	pollInterval time.Duration
	maxInterval  time.Duration
	timeout      time.Duration
}

func NewReceiptWaiter(cfg *ReceiptWaiterCfg) domain.TxWaiter {
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	maxInterval := cfg.MaxInterval
	if maxInterval < pollInterval {
		maxInterval = pollInterval
	}
	return &receiptWaiter{
		client:       cfg.Client,
		pollInterval: pollInterval,
		maxInterval:  maxInterval,
		timeout:      cfg.Timeout,
	}
}

// WaitMined polls the receipt of tx until it is mined. A mined transaction
// whose status is not successful returns the receipt and ErrTransactionReverted.
func (w *receiptWaiter) WaitMined(ctx bCtx.Ctx, tx *types.Transaction) (*types.Receipt, error) {
	if w.timeout > 0 {
		var cancel func()
		ctx, cancel = bCtx.WithTimeout(ctx, w.timeout)
		defer cancel()
	}
	logger := ctx.WithField("txHash", tx.Hash().Hex())
	b := backoff.NewExponential(w.pollInterval, w.maxInterval)
	for {
		receipt, err := w.client.TransactionReceipt(ctx, tx.Hash())
		if err == nil && receipt != nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				logger.WithField("block", receipt.BlockNumber).Warn("transaction reverted")
				return receipt, domain.ErrTransactionReverted
			}
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			logger.WithField("err", err).Warn("client.TransactionReceipt failed, retrying")
		} else {
			logger.Debug("transaction not yet mined")
		}
		if err := b.Backoff(ctx); err != nil {
			logger.WithFields(log.Fields{
				"err":   err,
				"polls": b.Count() + 1,
			}).Error("stopped waiting for receipt")
			return nil, xerrors.Errorf("%w: %v", domain.ErrTransactionNotMined, err)
		}
	}
}
