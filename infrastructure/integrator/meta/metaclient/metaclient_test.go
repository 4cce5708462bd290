package metaclient

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/onboarding-api/internal/config"
)

func newTestClient(serverURL string) *MetaClient {
	cfg := &config.Config{}
	cfg.Meta.URL = serverURL
	cfg.Meta.AccessToken = "agency-token"
	cfg.Meta.BusinessManagerID = "9999"

	return &MetaClient{
		Cfg:            cfg,
		httpClient:     &http.Client{Timeout: 5 * time.Second},
		retryBaseDelay: time.Millisecond,
	}
}

func TestGetAdAccountFields_RetryAposRateLimit(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts <= 4 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"id":"act_123","name":"Loja A","account_status":1,"disable_reason":0,"currency":"BRL","timezone_name":"America/Sao_Paulo"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	fields, err := client.GetAdAccountFields("123")
	assert.NoError(t, err)
	assert.Equal(t, 5, attempts)
	assert.Equal(t, "act_123", fields.ID)
	assert.Equal(t, 1, fields.AccountStatus)
	assert.Equal(t, "BRL", fields.Currency)
}

func TestGetAdAccountFields_EsgotaTentativas(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetAdAccountFields("123")
	assert.ErrorIs(t, err, ErrMaxRetries)
	assert.Equal(t, 5, attempts)
	assert.Contains(t, err.Error(), "max retries exceeded")
}

func TestGetAdAccountFields_ErroNaoTransienteFalhaImediato(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Unsupported get request","type":"GraphMethodException","code":100}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetAdAccountFields("123")
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)

	var reqErr *RequestError
	assert.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "Unsupported get request", reqErr.Message)
}

func TestAddClientAdAccount_ExtraiMensagemDoEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "act_123", r.Form.Get("adaccount_id"))
		assert.Equal(t, "client-token", r.Form.Get("access_token"))

		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"(#200) The user must be an admin of the ad account","type":"OAuthException","code":200}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.AddClientAdAccount("client-token", "123")
	assert.Error(t, err)

	var reqErr *RequestError
	assert.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "(#200) The user must be an admin of the ad account", reqErr.Message)
}

func TestAddClientAdAccount_FallbackParaStatusHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.AddClientAdAccount("client-token", "123")
	assert.Error(t, err)

	var reqErr *RequestError
	assert.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "Failed with status 403", reqErr.Message)
}

func TestAddClientAdAccount_Sucesso(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_status":"CONFIRMED"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	assert.NoError(t, client.AddClientAdAccount("client-token", "act_123"))
}

func TestGetBusinesses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/businesses", r.URL.Path)
		w.Write([]byte(`{"data":[{"id":"1","name":"BM Um"},{"id":"2","name":"BM Dois"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	businesses, err := client.GetBusinesses("client-token")
	assert.NoError(t, err)
	assert.Len(t, businesses, 2)
	assert.Equal(t, "BM Um", businesses[0].Name)
}
