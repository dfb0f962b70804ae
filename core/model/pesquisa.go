package model

// Pesquisa is a research entry
type Pesquisa struct {
	ID                  int64   `json:"id"`
	Titulo              string  `json:"titulo"`
	Autor               *string `json:"autor"`
	Referencia          *string `json:"referencia"`
	PalavrasChaves      *string `json:"palavras_chaves"`
	Resumo              *string `json:"resumo"`
	Link                *string `json:"link"`
	Astros              *string `json:"astros"`
	IDCategoriaPesquisa *int64  `json:"id_categoria_pesquisa"`
}

// PesquisaCreate is the payload to create a research entry. Only the title is required.
type PesquisaCreate struct {
	Titulo              string  `json:"titulo"`
	Autor               *string `json:"autor"`
	Referencia          *string `json:"referencia"`
	PalavrasChaves      *string `json:"palavras_chaves"`
	Resumo              *string `json:"resumo"`
	Link                *string `json:"link"`
	Astros              *string `json:"astros"`
	IDCategoriaPesquisa *int64  `json:"id_categoria_pesquisa"`
}

// Pesquisa maps the payload onto a not yet persisted research entry
func (c PesquisaCreate) Pesquisa() Pesquisa {
	return Pesquisa{
		Titulo:              c.Titulo,
		Autor:               c.Autor,
		Referencia:          c.Referencia,
		PalavrasChaves:      c.PalavrasChaves,
		Resumo:              c.Resumo,
		Link:                c.Link,
		Astros:              c.Astros,
		IDCategoriaPesquisa: c.IDCategoriaPesquisa,
	}
}
