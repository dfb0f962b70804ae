package backend

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relabs-tech/neurai/core/store"
)

func TestIfNoneMatchFound(t *testing.T) {
	etag := bytesToEtag([]byte(`[]`))
	assert.Equal(t, etag, bytesToEtag([]byte(`[]`)))
	assert.NotEqual(t, etag, bytesToEtag([]byte(`[{}]`)))

	assert.False(t, ifNoneMatchFound("", etag))
	assert.True(t, ifNoneMatchFound("*", etag))
	assert.True(t, ifNoneMatchFound(etag, etag))
	assert.True(t, ifNoneMatchFound(`"other", `+etag, etag))
	assert.True(t, ifNoneMatchFound(`W/`+etag, etag))
	assert.False(t, ifNoneMatchFound(`"other"`, etag))
}

func TestParsePage(t *testing.T) {
	testCases := []struct {
		query   string
		page    store.Page
		invalid bool
	}{
		{"", store.Page{Skip: 0, Limit: 100}, false},
		{"?skip=3", store.Page{Skip: 3, Limit: 100}, false},
		{"?skip=1&limit=2", store.Page{Skip: 1, Limit: 2}, false},
		{"?limit=0", store.Page{Skip: 0, Limit: 0}, false},
		{"?skip=x", store.Page{}, true},
		{"?limit=-1", store.Page{}, true},
	}
	for _, tc := range testCases {
		page, err := parsePage(httptest.NewRequest("GET", "/usuarios"+tc.query, nil))
		if tc.invalid {
			assert.Error(t, err, tc.query)
			continue
		}
		assert.NoError(t, err, tc.query)
		assert.Equal(t, tc.page, page, tc.query)
	}
}

func TestNormalizeIntegers(t *testing.T) {
	testCases := []struct {
		body     string
		expected string
		field    string
	}{
		{`{"id_pesquisa":1,"id_categoria":2}`, `{"id_pesquisa":1,"id_categoria":2}`, ""},
		{`{"id_pesquisa":1.0,"id_categoria":2}`, `{"id_pesquisa":1,"id_categoria":2}`, ""},
		{`{"id_pesquisa":-2E2,"nome":"1.0"}`, `{"id_pesquisa":-200,"nome":"1.0"}`, ""},
		{`{"id_pesquisa":1.5}`, `{"id_pesquisa":1.5}`, ""},
		{`{"id_pesquisa":null,"id_categoria":true}`, `{"id_pesquisa":null,"id_categoria":true}`, ""},
		{`{"id_pesquisa":1e30,"id_categoria":2}`, "", "id_pesquisa"},
		{`{"id_pesquisa":9223372036854775808}`, "", "id_pesquisa"},
		{`[1.0]`, `[1.0]`, ""},
	}
	for _, tc := range testCases {
		normalized, details, err := normalizeIntegers([]byte(tc.body))
		require.NoError(t, err, tc.body)
		if tc.field != "" {
			require.Len(t, details, 1, tc.body)
			assert.Equal(t, tc.field, details[0].Field)
			assert.Equal(t, "integer_range", details[0].Type)
			continue
		}
		assert.Empty(t, details, tc.body)
		assert.JSONEq(t, tc.expected, string(normalized), tc.body)
	}
}
