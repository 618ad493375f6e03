package repository

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/domain"
)

const (
	arUriSchema      = "ar://"
	DefaultArGateway = "https://arweave.net"
)

type arReaderRepo struct {
	client     *http.Client
	gateway    string
	ctxTimeout time.Duration
}

func NewArReaderRepo(client *http.Client, gateway string, timeout time.Duration) domain.WebResourceReaderRepository {
	if gateway == "" {
		gateway = DefaultArGateway
	}
	return &arReaderRepo{client: client, gateway: strings.TrimSuffix(gateway, "/"), ctxTimeout: timeout}
}

func (r *arReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	if !strings.HasPrefix(url, arUriSchema) {
		return nil, xerrors.Errorf("invalid ar uri")
	}
	return fetch(c, r.client, r.ctxTimeout, r.gateway+"/"+strings.TrimPrefix(url, arUriSchema), nil)
}
