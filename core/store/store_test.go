package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/relabs-tech/neurai/core/csql"
	"github.com/relabs-tech/neurai/core/model"
	"github.com/relabs-tech/neurai/core/pointers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore returns an empty store. It runs against postgres if POSTGRES is set
// and against a temporary sqlite file otherwise.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	var db *csql.DB
	var err error
	if dsn := os.Getenv("POSTGRES"); dsn != "" {
		db, err = csql.OpenWithSchema(dsn, os.Getenv("POSTGRES_PASSWORD"), "_neurai_store_unit_test_")
		require.NoError(t, err)
	} else {
		db, err = csql.OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
		require.NoError(t, err)
	}
	require.NoError(t, db.ClearSchema(Tables()...))
	t.Cleanup(func() { db.Close() })

	s := New(db)
	require.NoError(t, s.CreateTables(context.Background()))
	return s
}

func openSession(t *testing.T, s *Store) *Session {
	t.Helper()
	sess, err := s.Session(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { sess.Close() })
	return sess
}

func TestCreateTablesIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.CreateTables(context.Background()))
	assert.NoError(t, s.Ping(context.Background()))
}

func TestUnknownDriver(t *testing.T) {
	s := New(&csql.DB{Driver: "oracle"})
	assert.ErrorIs(t, s.CreateTables(context.Background()), ErrUnknownDriver)
}

func TestCategoriaRoundTrip(t *testing.T) {
	s := openTestStore(t)
	sess := openSession(t, s)
	ctx := context.Background()

	created, err := sess.CreateCategoria(ctx, model.Categoria{
		Nome:      "Estrelas",
		Descricao: pointers.StringPtr("Categoria de estrelas"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Estrelas", created.Nome)
	assert.Equal(t, "Categoria de estrelas", pointers.SafeString(created.Descricao))
	assert.Nil(t, created.DataInsercao)
	assert.Nil(t, created.IDCategoriaPesquisa)

	all, err := sess.ListCategorias(ctx, DefaultPage())
	require.NoError(t, err)
	assert.Equal(t, []model.Categoria{created}, all)
}

func TestPesquisaOptionalColumnsStayNull(t *testing.T) {
	s := openTestStore(t)
	sess := openSession(t, s)
	ctx := context.Background()

	created, err := sess.CreatePesquisa(ctx, model.Pesquisa{Titulo: "Estudo X"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, model.Pesquisa{ID: created.ID, Titulo: "Estudo X"}, created)

	full, err := sess.CreatePesquisa(ctx, model.Pesquisa{
		Titulo:         "Curvas de rotacao",
		Autor:          pointers.StringPtr("Vera Rubin"),
		Referencia:     pointers.StringPtr("ApJ 159"),
		PalavrasChaves: pointers.StringPtr("galaxias"),
		Resumo:         pointers.StringPtr("materia escura"),
		Link:           pointers.StringPtr("https://example.org/rubin"),
		Astros:         pointers.StringPtr("M31"),
	})
	require.NoError(t, err)
	assert.Greater(t, full.ID, created.ID)
	assert.Equal(t, "Vera Rubin", pointers.SafeString(full.Autor))
	assert.Equal(t, "M31", pointers.SafeString(full.Astros))
}

func TestListPagination(t *testing.T) {
	s := openTestStore(t)
	sess := openSession(t, s)
	ctx := context.Background()

	names := []string{"ana", "bruno", "carla", "davi", "eva"}
	for _, nome := range names {
		_, err := sess.CreateUsuario(ctx, model.Usuario{Nome: nome, Senha: "x"})
		require.NoError(t, err)
	}

	page, err := sess.ListUsuarios(ctx, Page{Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "bruno", page[0].Nome)
	assert.Equal(t, "carla", page[1].Nome)

	all, err := sess.ListUsuarios(ctx, DefaultPage())
	require.NoError(t, err)
	require.Len(t, all, len(names))
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}

	empty, err := sess.ListUsuarios(ctx, Page{Skip: 10, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	none, err := sess.ListUsuarios(ctx, Page{Skip: 0, Limit: 0})
	require.NoError(t, err)
	assert.Empty(t, none)

	count, err := sess.Count(ctx, TableUsuario)
	require.NoError(t, err)
	assert.Equal(t, int64(len(names)), count)
}

func TestLinkAndHistory(t *testing.T) {
	s := openTestStore(t)
	sess := openSession(t, s)
	ctx := context.Background()

	c, err := sess.CreateCategoria(ctx, model.Categoria{Nome: "Galaxias"})
	require.NoError(t, err)
	p, err := sess.CreatePesquisa(ctx, model.Pesquisa{Titulo: "Estudo X", IDCategoriaPesquisa: &c.ID})
	require.NoError(t, err)
	assert.Equal(t, c.ID, pointers.SafeInt64(p.IDCategoriaPesquisa))

	l, err := sess.CreateInterCategoriaPesquisa(ctx, model.InterCategoriaPesquisa{IDPesquisa: p.ID, IDCategoria: c.ID})
	require.NoError(t, err)
	assert.NotZero(t, l.ID)
	assert.Equal(t, p.ID, l.IDPesquisa)
	assert.Equal(t, c.ID, l.IDCategoria)

	links, err := sess.ListInterCategoriaPesquisas(ctx, DefaultPage())
	require.NoError(t, err)
	assert.Equal(t, []model.InterCategoriaPesquisa{l}, links)

	u, err := sess.CreateUsuario(ctx, model.Usuario{Nome: "ana", Senha: "x"})
	require.NoError(t, err)
	assert.Nil(t, u.IDHistorico)

	h, err := sess.CreateHistorico(ctx, model.Historico{
		IDUsuario:    u.ID,
		IDPesquisas:  p.ID,
		DataInsercao: pointers.StringPtr("2024-05-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID, h.IDUsuario)
	assert.Equal(t, "2024-05-01", pointers.SafeString(h.DataInsercao))

	// a user may point to a history record, closing the cycle
	u2, err := sess.CreateUsuario(ctx, model.Usuario{Nome: "bruno", Senha: "y", IDHistorico: &h.ID})
	require.NoError(t, err)
	assert.Equal(t, h.ID, pointers.SafeInt64(u2.IDHistorico))

	history, err := sess.ListHistorico(ctx, DefaultPage())
	require.NoError(t, err)
	assert.Equal(t, []model.Historico{h}, history)
}

func TestCountUnknownTable(t *testing.T) {
	s := openTestStore(t)
	sess := openSession(t, s)
	_, err := sess.Count(context.Background(), "nope")
	assert.Error(t, err)
}
