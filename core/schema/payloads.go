package schema

import (
	"embed"
	"io/fs"
)

//go:embed payloads
var payloadFS embed.FS

const base = "https://neurai.relabs-tech.com/schemas/"

// Schema IDs of the create payloads
const (
	UsuarioCreateID                = base + "usuario_create.json"
	PesquisaCreateID               = base + "pesquisa_create.json"
	CategoriaCreateID              = base + "categoria_create.json"
	InterCategoriaPesquisaCreateID = base + "inter_categoria_pesquisa_create.json"
	HistoricoCreateID              = base + "historico_create.json"
)

// NewPayloadValidator returns a validator for all create payloads
func NewPayloadValidator() (*Validator, error) {
	sub, err := fs.Sub(payloadFS, "payloads")
	if err != nil {
		return nil, err
	}
	return NewValidatorFromFS(sub)
}
