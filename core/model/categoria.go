package model

// Categoria is a category of research entries.
//
// IDCategoriaPesquisa is a loose reference without a foreign key.
type Categoria struct {
	ID                  int64   `json:"id"`
	DataInsercao        *string `json:"data_insercao"`
	Nome                string  `json:"nome"`
	Descricao           *string `json:"descricao"`
	IDCategoriaPesquisa *int64  `json:"id_categoria_pesquisa"`
}

// CategoriaCreate is the payload to create a category
type CategoriaCreate struct {
	Nome                string  `json:"nome"`
	Descricao           *string `json:"descricao"`
	DataInsercao        *string `json:"data_insercao"`
	IDCategoriaPesquisa *int64  `json:"id_categoria_pesquisa"`
}

// Categoria maps the payload onto a not yet persisted category
func (c CategoriaCreate) Categoria() Categoria {
	return Categoria{
		DataInsercao:        c.DataInsercao,
		Nome:                c.Nome,
		Descricao:           c.Descricao,
		IDCategoriaPesquisa: c.IDCategoriaPesquisa,
	}
}
