package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/marketfront/base/ctx"
)

const rebirth = `{"name":"REBIRTH","description":"No. 6","image":"https://ipfs.pixura.io/ipfs/QmaByv7H1UCwpDpgSeMqga3hMGmuGzsrgyq9FU3S9JkkF5/srt.gif"}`

func newServer(t *testing.T) *httptest.Server {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/metadata.json", "/ipfs/QmHash/1.json", "/eXcwlbsV1BiRGCsGKXa60Mj0i-xDZU0k95l_ysNwv_w/1.json":
			if r.Header.Get("X-Api-Key") != "" && r.Header.Get("X-Api-Key") != "key" {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			w.Write([]byte(rebirth))
		case "/slow":
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte("late"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(s.Close)
	return s
}

func Test_httpReaderRepo_Get(t *testing.T) {
	s := newServer(t)
	ctx := bCtx.Background()

	t.Run("ok", func(t *testing.T) {
		r := NewHttpReaderRepo(s.Client(), time.Second, map[string]string{"X-Api-Key": "key"})
		b, err := r.Get(ctx, s.URL+"/metadata.json")
		require.NoError(t, err)
		require.Equal(t, []byte(rebirth), b)
	})

	t.Run("headers sent", func(t *testing.T) {
		r := NewHttpReaderRepo(s.Client(), time.Second, map[string]string{"X-Api-Key": "wrong"})
		_, err := r.Get(ctx, s.URL+"/metadata.json")
		require.Error(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		r := NewHttpReaderRepo(s.Client(), time.Second, nil)
		_, err := r.Get(ctx, s.URL+"/missing")
		require.Error(t, err)
	})

	t.Run("timeout", func(t *testing.T) {
		r := NewHttpReaderRepo(s.Client(), 20*time.Millisecond, nil)
		_, err := r.Get(ctx, s.URL+"/slow")
		require.Error(t, err)
	})
}

func Test_ipfsGatewayReaderRepo_Get(t *testing.T) {
	s := newServer(t)
	r := NewIpfsGatewayReaderRepo(s.Client(), s.URL+"/ipfs/", time.Second)
	b, err := r.Get(bCtx.Background(), "QmHash/1.json")
	require.NoError(t, err)
	require.Equal(t, []byte(rebirth), b)
}

func Test_arReaderRepo_Get(t *testing.T) {
	s := newServer(t)
	r := NewArReaderRepo(s.Client(), s.URL, time.Second)

	b, err := r.Get(bCtx.Background(), "ar://eXcwlbsV1BiRGCsGKXa60Mj0i-xDZU0k95l_ysNwv_w/1.json")
	require.NoError(t, err)
	require.Equal(t, []byte(rebirth), b)

	_, err = r.Get(bCtx.Background(), "https://arweave.net/x")
	require.Error(t, err)
}
