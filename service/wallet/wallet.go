package wallet

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/ethereum"
	"github.com/x-xyz/marketfront/base/log"
	"github.com/x-xyz/marketfront/domain"
)

const (
	connectMessage       = "marketfront connect %d"
	defaultUnlockTimeout = 5 * time.Minute
)

type Cfg struct {
	ChainId int64
	// KeystoreDir holds encrypted keys, the first account is used
	KeystoreDir string
	Passphrase  string
	// UnlockTimeout is how long a keystore account stays unlocked after Connect
	UnlockTimeout time.Duration
	// PrivateKey is a hex key, used when KeystoreDir is empty
	PrivateKey string
}

// New picks the connector matching cfg. With nothing configured every
// Connect fails with ErrWalletUnavailable.
func New(cfg *Cfg) domain.WalletConnector {
	chainId := big.NewInt(cfg.ChainId)
	switch {
	case cfg.KeystoreDir != "":
		unlockTimeout := cfg.UnlockTimeout
		if unlockTimeout <= 0 {
			unlockTimeout = defaultUnlockTimeout
		}
		return &keystoreConnector{
			ks:            keystore.NewKeyStore(cfg.KeystoreDir, keystore.StandardScryptN, keystore.StandardScryptP),
			passphrase:    cfg.Passphrase,
			unlockTimeout: unlockTimeout,
			chainId:       chainId,
		}
	case cfg.PrivateKey != "":
		return &keyConnector{
			hexKey:  cfg.PrivateKey,
			chainId: chainId,
		}
	default:
		return unavailable{}
	}
}

type unavailable struct{}

func (unavailable) Connect(c ctx.Ctx) (*domain.SigningIdentity, error) {
	c.Warn("no wallet configured")
	return nil, domain.ErrWalletUnavailable
}

type keystoreConnector struct {
	ks            *keystore.KeyStore
	passphrase    string
	unlockTimeout time.Duration
	chainId       *big.Int
}

func (k *keystoreConnector) Connect(c ctx.Ctx) (*domain.SigningIdentity, error) {
	accs := k.ks.Accounts()
	if len(accs) == 0 {
		c.Warn("keystore has no accounts")
		return nil, domain.ErrWalletUnavailable
	}
	acc := accs[0]
	if err := k.ks.TimedUnlock(acc, k.passphrase, k.unlockTimeout); err != nil {
		c.WithFields(log.Fields{"err": err, "account": acc.Address.Hex()}).Warn("keystore.TimedUnlock failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrWalletDeclined, err)
	}

	msg := []byte(fmt.Sprintf(connectMessage, time.Now().UnixNano()))
	sig, err := k.ks.SignHash(acc, accounts.TextHash(msg))
	if err != nil {
		c.WithField("err", err).Error("keystore.SignHash failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrWalletDeclined, err)
	}
	if err := verify(msg, hexutil.Encode(sig), acc.Address); err != nil {
		c.WithField("err", err).Error("connect signature mismatch")
		return nil, err
	}

	opts, err := bind.NewKeyStoreTransactorWithChainID(k.ks, acc, k.chainId)
	if err != nil {
		c.WithField("err", err).Error("bind.NewKeyStoreTransactorWithChainID failed")
		return nil, err
	}
	c.WithField("account", acc.Address.Hex()).Info("wallet connected")
	return &domain.SigningIdentity{From: opts.From, Signer: opts.Signer}, nil
}

type keyConnector struct {
	hexKey  string
	chainId *big.Int
}

func (k *keyConnector) Connect(c ctx.Ctx) (*domain.SigningIdentity, error) {
	key, err := ethereum.ParseKey(k.hexKey)
	if err != nil {
		c.WithField("err", err).Warn("invalid private key")
		return nil, xerrors.Errorf("%w: %v", domain.ErrWalletDeclined, err)
	}
	from := ethereum.KeyAddress(key)
	if err := signAndVerify(key, from); err != nil {
		c.WithField("err", err).Error("connect signature mismatch")
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, k.chainId)
	if err != nil {
		c.WithField("err", err).Error("bind.NewKeyedTransactorWithChainID failed")
		return nil, err
	}
	c.WithField("account", from.Hex()).Info("wallet connected")
	return &domain.SigningIdentity{From: opts.From, Signer: opts.Signer}, nil
}

func signAndVerify(key *ecdsa.PrivateKey, from common.Address) error {
	msg := []byte(fmt.Sprintf(connectMessage, time.Now().UnixNano()))
	sig, err := ethereum.SignMsg(msg, key)
	if err != nil {
		return xerrors.Errorf("%w: %v", domain.ErrWalletDeclined, err)
	}
	return verify(msg, sig, from)
}

func verify(msg []byte, sig string, from common.Address) error {
	ok, err := ethereum.ValidateMsgSignature(msg, sig, from.Hex())
	if err != nil {
		return xerrors.Errorf("%w: %v", domain.ErrWalletDeclined, err)
	}
	if !ok {
		return xerrors.Errorf("%w: signer is not %s", domain.ErrWalletDeclined, from.Hex())
	}
	return nil
}
