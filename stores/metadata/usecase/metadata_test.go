package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/domain"
	"github.com/x-xyz/marketfront/domain/mocks"
	"github.com/x-xyz/marketfront/service/cache"
	"github.com/x-xyz/marketfront/service/cache/provider/primitive"
)

const docUrl = "ipfs://QmHash/1.json"

type metadataSuite struct {
	suite.Suite

	ctx         bCtx.Ctx
	webResource *mocks.WebResourceUseCase
}

func (s *metadataSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.webResource = &mocks.WebResourceUseCase{}
}

func (s *metadataSuite) TearDownTest() {
	s.webResource.AssertExpectations(s.T())
}

func TestMetadataSuite(t *testing.T) {
	suite.Run(t, new(metadataSuite))
}

func (s *metadataSuite) TestGetFromUrl() {
	s.webResource.On("GetJson", mock.Anything, docUrl).
		Return([]byte(`{"image":"ipfs://QmImg","name":"Foo","description":"Bar","attributes":[]}`), nil).Once()

	u := NewMetadataUseCase(&MetadataUseCaseCfg{WebResource: s.webResource})
	doc, err := u.GetFromUrl(s.ctx, docUrl)
	s.NoError(err)
	s.Equal(&domain.MetadataDocument{Image: "ipfs://QmImg", Name: "Foo", Description: "Bar"}, doc)
}

func (s *metadataSuite) TestGetFromUrlCached() {
	s.webResource.On("GetJson", mock.Anything, docUrl).
		Return([]byte(`{"name":"Foo"}`), nil).Once()

	u := NewMetadataUseCase(&MetadataUseCaseCfg{
		WebResource: s.webResource,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "metadata",
			Cache: primitive.NewPrimitive("metadata", 1),
		}),
	})
	for i := 0; i < 3; i++ {
		doc, err := u.GetFromUrl(s.ctx, docUrl)
		s.NoError(err)
		s.Equal("Foo", doc.Name)
	}
}

func (s *metadataSuite) TestGetFromUrlErrors() {
	fetchErr := errors.New("gateway timeout")
	s.webResource.On("GetJson", mock.Anything, "https://a/1.json").Return(nil, fetchErr).Once()
	s.webResource.On("GetJson", mock.Anything, "https://a/2.json").Return([]byte(`["not","an","object"]`), nil).Once()

	u := NewMetadataUseCase(&MetadataUseCaseCfg{WebResource: s.webResource})

	_, err := u.GetFromUrl(s.ctx, "https://a/1.json")
	s.Equal(fetchErr, err)

	_, err = u.GetFromUrl(s.ctx, "https://a/2.json")
	s.True(errors.Is(err, domain.ErrInvalidJsonFormat))
}
