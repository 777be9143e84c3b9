package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	config "github.com/localscan/explorer/configs"
	"github.com/localscan/explorer/internal/storage"
	"github.com/localscan/explorer/internal/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) storage.IMetadataStorage {
	t.Helper()
	backend, err := storage.NewMemoryConnector(&config.MemoryConfig{})
	require.NoError(t, err)
	store := storage.NewMetadataStore(backend, "memory")
	t.Cleanup(func() { store.Close() })
	return store
}

func setupStorageRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(nil, newMemoryStore(t)).RegisterRoutes(router)
	return router
}

func doRequest(router http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestStorageAPI_SaveAndGet(t *testing.T) {
	router := setupStorageRouter(t)

	w := doRequest(router, "GET", "/api/storage/abis/"+storagetest.TokenAddress, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	body := `{"abi":` + string(storagetest.TokenABI) + `,"name":"Token"}`
	w = doRequest(router, "POST", "/api/storage/abis/"+storagetest.TokenAddress, body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doRequest(router, "GET", "/api/storage/abis/not-an-address", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, "GET", "/api/storage/abis/0x"+strings.ToUpper(storagetest.TokenAddress[2:]), "")
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.ElementsMatch(t, []string{"address", "abi", "name", "verified", "timestamp"}, keys(response))
	assert.JSONEq(t, `"`+strings.ToLower(storagetest.TokenAddress)+`"`, string(response["address"]))
	assert.JSONEq(t, string(storagetest.TokenABI), string(response["abi"]))
	assert.JSONEq(t, `"Token"`, string(response["name"]))
	assert.JSONEq(t, `true`, string(response["verified"]))
}

func TestStorageAPI_HumanReadableABI(t *testing.T) {
	router := setupStorageRouter(t)

	body := `{"abi":["function setGreeting(string _greeting)","event Greeted(address indexed by, string greeting)"],"name":"Greeter"}`
	w := doRequest(router, "POST", "/api/storage/abis/"+storagetest.GreeterAddress, body)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "GET", "/api/storage/abis/"+storagetest.GreeterAddress, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"setGreeting"`)
	assert.Contains(t, w.Body.String(), `"type":"event"`)
}

func TestStorageAPI_RejectsInvalidInput(t *testing.T) {
	router := setupStorageRouter(t)

	tests := []struct {
		name    string
		address string
		body    string
	}{
		{name: "malformed body", address: storagetest.TokenAddress, body: `{"abi":`},
		{name: "missing abi", address: storagetest.TokenAddress, body: `{"name":"Token"}`},
		{name: "null abi", address: storagetest.TokenAddress, body: `{"abi":null,"name":"Token"}`},
		{name: "abi not a list", address: storagetest.TokenAddress, body: `{"abi":{"type":"function"},"name":"Token"}`},
		{name: "bad signature", address: storagetest.TokenAddress, body: `{"abi":["function foo(uint7 x)"],"name":"Token"}`},
		{name: "bad address", address: "0x1234", body: `{"abi":[],"name":"Token"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, "POST", "/api/storage/abis/"+tt.address, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	w := doRequest(router, "GET", "/api/storage/contracts/verified", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestStorageAPI_ListAndClear(t *testing.T) {
	router := setupStorageRouter(t)

	for _, address := range []string{storagetest.VaultAddress, storagetest.TokenAddress} {
		w := doRequest(router, "POST", "/api/storage/abis/"+address, `{"abi":`+string(storagetest.TokenABI)+`,"name":"T"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(router, "GET", "/api/storage/contracts/verified", "")
	require.Equal(t, http.StatusOK, w.Code)
	var records []struct {
		Address string `json:"address"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, strings.ToLower(storagetest.TokenAddress), records[0].Address)
	assert.Equal(t, strings.ToLower(storagetest.VaultAddress), records[1].Address)

	w = doRequest(router, "POST", "/api/storage/clear", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doRequest(router, "GET", "/api/storage/contracts/verified", "")
	assert.JSONEq(t, `[]`, w.Body.String())
	w = doRequest(router, "GET", "/api/storage/abis/"+storagetest.TokenAddress, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// The remote backend must behave exactly like the store it fronts.
func TestRemoteMetadataStorage(t *testing.T) {
	storagetest.RunMetadataStorageSuite(t, func(t *testing.T) storage.IMetadataStorage {
		server := httptest.NewServer(setupStorageRouter(t))
		t.Cleanup(server.Close)

		backend, err := storage.NewRemoteConnector(&config.RemoteConfig{URL: server.URL})
		require.NoError(t, err)
		store := storage.NewMetadataStore(backend, "remote")
		t.Cleanup(func() { store.Close() })
		return store
	})
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
