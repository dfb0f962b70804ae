package store

import (
	"fmt"

	"github.com/relabs-tech/neurai/core/csql"
)

// tableColumns lists the columns of every table, primary key first
var tableColumns = map[string][]string{
	TableUsuario:                {"id", "nome", "senha", "id_historico"},
	TablePesquisas:              {"id", "titulo", "autor", "referencia", "palavras_chaves", "resumo", "link", "astros", "id_categoria_pesquisa"},
	TableCategorias:             {"id", "data_insercao", "nome", "descricao", "id_categoria_pesquisa"},
	TableInterCategoriaPesquisa: {"id", "id_pesquisa", "id_categoria"},
	TableHistorico:              {"id", "data_insercao", "id_usuario", "id_pesquisas"},
}

// postgresDDL creates the tables in dependency order. usuario and historico
// reference each other, the foreign key from usuario to historico is added once
// both tables exist.
func postgresDDL(db *csql.DB) []string {
	t := db.Table
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
id SERIAL PRIMARY KEY,
data_insercao VARCHAR(32),
nome VARCHAR(255) NOT NULL,
descricao TEXT,
id_categoria_pesquisa INTEGER
);`, t(TableCategorias)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
id SERIAL PRIMARY KEY,
titulo VARCHAR(512) NOT NULL,
autor VARCHAR(255),
referencia VARCHAR(512),
palavras_chaves VARCHAR(512),
resumo TEXT,
link VARCHAR(1024),
astros VARCHAR(255),
id_categoria_pesquisa INTEGER REFERENCES %s (id)
);`, t(TablePesquisas), t(TableCategorias)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
id SERIAL PRIMARY KEY,
id_pesquisa INTEGER REFERENCES %s (id),
id_categoria INTEGER REFERENCES %s (id)
);`, t(TableInterCategoriaPesquisa), t(TablePesquisas), t(TableCategorias)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
id SERIAL PRIMARY KEY,
nome VARCHAR(255) NOT NULL,
senha VARCHAR(64) NOT NULL,
id_historico INTEGER
);`, t(TableUsuario)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
id SERIAL PRIMARY KEY,
data_insercao VARCHAR(32),
id_usuario INTEGER REFERENCES %s (id),
id_pesquisas INTEGER REFERENCES %s (id)
);`, t(TableHistorico), t(TableUsuario), t(TablePesquisas)),
		fmt.Sprintf(`DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint
		WHERE conname = 'usuario_id_historico_fkey' AND connamespace = '%s'::regnamespace) THEN
		ALTER TABLE %s ADD CONSTRAINT usuario_id_historico_fkey FOREIGN KEY (id_historico) REFERENCES %s (id);
	END IF;
END
$$;`, db.Schema, t(TableUsuario), t(TableHistorico)),
	}
}

// sqliteDDL creates the tables for sqlite, which accepts forward references. Foreign
// keys are declared but, as sqlite's default, not enforced.
func sqliteDDL(db *csql.DB) []string {
	t := db.Table
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
id INTEGER PRIMARY KEY AUTOINCREMENT,
data_insercao VARCHAR(32),
nome VARCHAR(255) NOT NULL,
descricao TEXT,
id_categoria_pesquisa INTEGER
);`, t(TableCategorias)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
id INTEGER PRIMARY KEY AUTOINCREMENT,
titulo VARCHAR(512) NOT NULL,
autor VARCHAR(255),
referencia VARCHAR(512),
palavras_chaves VARCHAR(512),
resumo TEXT,
link VARCHAR(1024),
astros VARCHAR(255),
id_categoria_pesquisa INTEGER REFERENCES %s (id)
);`, t(TablePesquisas), t(TableCategorias)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
id INTEGER PRIMARY KEY AUTOINCREMENT,
id_pesquisa INTEGER REFERENCES %s (id),
id_categoria INTEGER REFERENCES %s (id)
);`, t(TableInterCategoriaPesquisa), t(TablePesquisas), t(TableCategorias)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
id INTEGER PRIMARY KEY AUTOINCREMENT,
nome VARCHAR(255) NOT NULL,
senha VARCHAR(64) NOT NULL,
id_historico INTEGER REFERENCES %s (id)
);`, t(TableUsuario), t(TableHistorico)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
id INTEGER PRIMARY KEY AUTOINCREMENT,
data_insercao VARCHAR(32),
id_usuario INTEGER REFERENCES %s (id),
id_pesquisas INTEGER REFERENCES %s (id)
);`, t(TableHistorico), t(TableUsuario), t(TablePesquisas)),
	}
}
