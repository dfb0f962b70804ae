package model

// Usuario is a user of the catalogue
type Usuario struct {
	ID          int64  `json:"id"`
	Nome        string `json:"nome"`
	Senha       string `json:"senha"`
	IDHistorico *int64 `json:"id_historico"`
}

// UsuarioCreate is the payload to create a user
type UsuarioCreate struct {
	Nome        string `json:"nome"`
	Senha       string `json:"senha"`
	IDHistorico *int64 `json:"id_historico"`
}

// Usuario maps the payload onto a not yet persisted user
func (c UsuarioCreate) Usuario() Usuario {
	return Usuario{
		Nome:        c.Nome,
		Senha:       c.Senha,
		IDHistorico: c.IDHistorico,
	}
}
