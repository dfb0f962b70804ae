package backend

import (
	"github.com/gorilla/mux"
	"github.com/relabs-tech/neurai/core/model"
	"github.com/relabs-tech/neurai/core/schema"
	"github.com/relabs-tech/neurai/core/store"
)

func (b *Backend) handleCategorias(router *mux.Router) {
	createResource(b, router, resourceConfiguration[model.CategoriaCreate, model.Categoria]{
		resource:    "categorias",
		schemaID:    schema.CategoriaCreateID,
		fromPayload: model.CategoriaCreate.Categoria,
		create:      (*store.Session).CreateCategoria,
		list:        (*store.Session).ListCategorias,
		id:          func(c model.Categoria) int64 { return c.ID },
	})
}

func (b *Backend) handlePesquisas(router *mux.Router) {
	createResource(b, router, resourceConfiguration[model.PesquisaCreate, model.Pesquisa]{
		resource:    "pesquisas",
		schemaID:    schema.PesquisaCreateID,
		fromPayload: model.PesquisaCreate.Pesquisa,
		create:      (*store.Session).CreatePesquisa,
		list:        (*store.Session).ListPesquisas,
		id:          func(p model.Pesquisa) int64 { return p.ID },
	})
}

// handleInterCategoriaPesquisas links research entries with categories. The created
// link is returned as persisted, including its id.
func (b *Backend) handleInterCategoriaPesquisas(router *mux.Router) {
	createResource(b, router, resourceConfiguration[model.InterCategoriaPesquisaCreate, model.InterCategoriaPesquisa]{
		resource:    "inter_categoria_pesquisas",
		schemaID:    schema.InterCategoriaPesquisaCreateID,
		fromPayload: model.InterCategoriaPesquisaCreate.InterCategoriaPesquisa,
		create:      (*store.Session).CreateInterCategoriaPesquisa,
		list:        (*store.Session).ListInterCategoriaPesquisas,
		id:          func(l model.InterCategoriaPesquisa) int64 { return l.ID },
	})
}

func (b *Backend) handleUsuarios(router *mux.Router) {
	createResource(b, router, resourceConfiguration[model.UsuarioCreate, model.Usuario]{
		resource:    "usuarios",
		schemaID:    schema.UsuarioCreateID,
		fromPayload: model.UsuarioCreate.Usuario,
		create:      (*store.Session).CreateUsuario,
		list:        (*store.Session).ListUsuarios,
		id:          func(u model.Usuario) int64 { return u.ID },
	})
}

func (b *Backend) handleHistorico(router *mux.Router) {
	createResource(b, router, resourceConfiguration[model.HistoricoCreate, model.Historico]{
		resource:    "historico",
		schemaID:    schema.HistoricoCreateID,
		fromPayload: model.HistoricoCreate.Historico,
		create:      (*store.Session).CreateHistorico,
		list:        (*store.Session).ListHistorico,
		id:          func(h model.Historico) int64 { return h.ID },
	})
}
