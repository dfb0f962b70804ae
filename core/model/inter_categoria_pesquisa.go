package model

// InterCategoriaPesquisa links one research entry with one category
type InterCategoriaPesquisa struct {
	ID          int64 `json:"id"`
	IDPesquisa  int64 `json:"id_pesquisa"`
	IDCategoria int64 `json:"id_categoria"`
}

// InterCategoriaPesquisaCreate is the payload to link a research entry with a category
type InterCategoriaPesquisaCreate struct {
	IDPesquisa  int64 `json:"id_pesquisa"`
	IDCategoria int64 `json:"id_categoria"`
}

// InterCategoriaPesquisa maps the payload onto a not yet persisted link
func (c InterCategoriaPesquisaCreate) InterCategoriaPesquisa() InterCategoriaPesquisa {
	return InterCategoriaPesquisa{
		IDPesquisa:  c.IDPesquisa,
		IDCategoria: c.IDCategoria,
	}
}
