package model

// Historico records that a user viewed a research entry
type Historico struct {
	ID           int64   `json:"id"`
	DataInsercao *string `json:"data_insercao"`
	IDUsuario    int64   `json:"id_usuario"`
	IDPesquisas  int64   `json:"id_pesquisas"`
}

// HistoricoCreate is the payload to create a history record
type HistoricoCreate struct {
	IDUsuario    int64   `json:"id_usuario"`
	IDPesquisas  int64   `json:"id_pesquisas"`
	DataInsercao *string `json:"data_insercao"`
}

// Historico maps the payload onto a not yet persisted history record
func (c HistoricoCreate) Historico() Historico {
	return Historico{
		DataInsercao: c.DataInsercao,
		IDUsuario:    c.IDUsuario,
		IDPesquisas:  c.IDPesquisas,
	}
}
