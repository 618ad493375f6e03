package repository

import (
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/domain"
)

type ipfsGatewayReaderRepo struct {
	client     *http.Client
	gateway    string
	ctxTimeout time.Duration
}

// NewIpfsGatewayReaderRepo reads "<cid>/<path>" through an http gateway such as https://ipfs.io/ipfs
func NewIpfsGatewayReaderRepo(c *http.Client, gateway string, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsGatewayReaderRepo{client: c, gateway: strings.TrimSuffix(gateway, "/"), ctxTimeout: timeout}
}

func (r *ipfsGatewayReaderRepo) Get(c bCtx.Ctx, cid string) ([]byte, error) {
	return fetch(c, r.client, r.ctxTimeout, r.gateway+"/"+cid, nil)
}
