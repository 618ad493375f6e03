package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/marketfront/base/ctx"
)

func Test_dataUriReaderRepo_Get(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    []byte
		wantErr bool
	}{
		{
			name:    "invalid schema",
			uri:     "https://url",
			wantErr: true,
		},
		{
			name:    "empty data part",
			uri:     "data:application/json;base64,",
			wantErr: true,
		},
		{
			name:    "no data part",
			uri:     "data:application/json;base64",
			wantErr: true,
		},
		{
			name:    "bad base64",
			uri:     "data:application/json;base64,!!!",
			wantErr: true,
		},
		{
			name: "plain json",
			uri:  `data:application/json;utf8,{"name":"Enticing Delightful","image":"ipfs://QmcsrQJMKA9qC9GcEMgdjb9LPN99iDNAg8aQQJLJGpkHxk/1.svg"}`,
			want: []byte(`{"name":"Enticing Delightful","image":"ipfs://QmcsrQJMKA9qC9GcEMgdjb9LPN99iDNAg8aQQJLJGpkHxk/1.svg"}`),
		},
		{
			name: "percent encoded json",
			uri:  `data:application/json,%7B%22name%22%3A%22Drop%20%231%22%7D`,
			want: []byte(`{"name":"Drop #1"}`),
		},
		{
			name: "base64 json",
			uri:  "data:application/json;base64,eyJuYW1lIjogIml0ZW0gIzI2MzkzIn0=",
			want: []byte(`{"name": "item #26393"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewDataUriReaderRepo()
			got, err := r.Get(bCtx.Background(), tt.uri)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
