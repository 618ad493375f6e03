package wallet

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/ethereum"
	"github.com/x-xyz/marketfront/domain"
)

func signs(t *testing.T, identity *domain.SigningIdentity, chainId int64) {
	tx := types.NewTransaction(0, common.HexToAddress("0x1"), big.NewInt(1), 21000, big.NewInt(1), nil)
	signed, err := identity.Signer(identity.From, tx)
	require.NoError(t, err)
	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(chainId)), signed)
	require.NoError(t, err)
	require.Equal(t, identity.From, sender)
}

func TestKeyConnector(t *testing.T) {
	req := require.New(t)
	key, pub, err := ethereum.GenerateKey()
	req.NoError(err)

	w := New(&Cfg{ChainId: 1337, PrivateKey: hexutil.Encode(crypto.FromECDSA(key))})
	identity, err := w.Connect(ctx.Background())
	req.NoError(err)
	req.Equal(crypto.PubkeyToAddress(*pub), identity.From)
	signs(t, identity, 1337)
}

func TestKeyConnectorInvalidKey(t *testing.T) {
	w := New(&Cfg{ChainId: 1, PrivateKey: "0xnothex"})
	_, err := w.Connect(ctx.Background())
	require.ErrorIs(t, err, domain.ErrWalletDeclined)
}

func TestUnavailable(t *testing.T) {
	_, err := New(&Cfg{ChainId: 1}).Connect(ctx.Background())
	require.ErrorIs(t, err, domain.ErrWalletUnavailable)
}

func TestKeystoreConnector(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	ks := keystore.NewKeyStore(dir, keystore.LightScryptN, keystore.LightScryptP)
	acc, err := ks.NewAccount("secret")
	req.NoError(err)

	w := &keystoreConnector{ks: ks, passphrase: "secret", unlockTimeout: time.Minute, chainId: big.NewInt(31337)}
	identity, err := w.Connect(ctx.Background())
	req.NoError(err)
	req.Equal(acc.Address, identity.From)
	signs(t, identity, 31337)

	declined := &keystoreConnector{ks: ks, passphrase: "wrong", unlockTimeout: time.Minute, chainId: big.NewInt(31337)}
	ks.Lock(acc.Address)
	_, err = declined.Connect(ctx.Background())
	req.ErrorIs(err, domain.ErrWalletDeclined)
}

func TestKeystoreConnectorEmpty(t *testing.T) {
	w := New(&Cfg{ChainId: 1, KeystoreDir: t.TempDir()})
	_, err := w.Connect(ctx.Background())
	require.ErrorIs(t, err, domain.ErrWalletUnavailable)
}

func TestKeystoreConnectorRelocks(t *testing.T) {
	req := require.New(t)
	ks := keystore.NewKeyStore(t.TempDir(), keystore.LightScryptN, keystore.LightScryptP)
	acc, err := ks.NewAccount("secret")
	req.NoError(err)

	w := &keystoreConnector{ks: ks, passphrase: "secret", unlockTimeout: 100 * time.Millisecond, chainId: big.NewInt(31337)}
	identity, err := w.Connect(ctx.Background())
	req.NoError(err)
	req.Equal(acc.Address, identity.From)

	tx := types.NewTransaction(0, common.HexToAddress("0x1"), big.NewInt(1), 21000, big.NewInt(1), nil)
	req.Eventually(func() bool {
		_, err := identity.Signer(identity.From, tx)
		return err == keystore.ErrLocked
	}, 3*time.Second, 20*time.Millisecond)
}
