package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourcePaths(t *testing.T) {
	client := NewWithRouter(nil)

	r := client.Resource("usuarios")
	if p := r.Path(); p != "/usuarios/" {
		t.Fatal("unexpected path:", p)
	}

	paged := r.WithPage(1, 2)
	if p := paged.Path(); p != "/usuarios/?limit=2&skip=1" {
		t.Fatal("unexpected path:", p)
	}

	// the original resource is unchanged
	if p := r.Path(); p != "/usuarios/" {
		t.Fatal("unexpected path:", p)
	}
}

func TestWithHeaderDoesNotLeak(t *testing.T) {
	base := NewWithRouter(nil)
	withHeader := base.WithHeader("X-Test", "1")
	assert.Empty(t, base.defaultHeaders)
	assert.Equal(t, "1", withHeader.defaultHeaders["X-Test"])
}

func echoRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/things/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Seen", r.Header.Get("X-Test"))
		w.Write([]byte(`[{"id":1}]`))
	}).Methods(http.MethodGet)
	router.HandleFunc("/things/", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if string(body) == `{"fail":true}` {
			http.Error(w, "nope", http.StatusUnprocessableEntity)
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write(body)
	}).Methods(http.MethodPost)
	return router
}

func TestRouterRoundTrip(t *testing.T) {
	client := NewWithRouter(echoRouter()).WithHeader("X-Test", "yes")

	var list []map[string]int
	status, header, err := client.RawGetWithHeader("/things/", nil, &list)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "yes", header.Get("X-Seen"))
	assert.Equal(t, []map[string]int{{"id": 1}}, list)

	var created map[string]string
	status, err = client.Resource("things").Create(map[string]string{"nome": "a"}, &created)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "a", created["nome"])

	status, err = client.RawPost("/things/", map[string]bool{"fail": true}, nil)
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestURLRoundTrip(t *testing.T) {
	server := httptest.NewServer(echoRouter())
	defer server.Close()

	client := NewWithURL(server.URL + "/")
	var raw []byte
	status, err := client.Resource("things").List(&raw)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"id":1}]`, string(raw))
}
