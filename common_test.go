package kitabu

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testAPIAddress          = "localhost:8080"
	testAPIToken            = "11235813213455"
	testClientAllowInsecure = true
)

func queryHas(r *http.Request, key string) bool {
	_, ok := r.URL.Query()[key]
	return ok
}

func requireBaseClient(t *testing.T, baseClient *BaseClient) {
	require.NotNil(t, baseClient)
	require.Equal(t, testAPIAddress, baseClient.APIAddress)
	require.NotNil(t, baseClient.HTTPClient)
}
