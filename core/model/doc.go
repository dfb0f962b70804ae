/*
Package model holds the entities of the research catalogue and their create payloads.

Every entity has an integer identifier assigned by the database. Optional fields are
pointers, an absent field is stored as NULL and rendered as JSON null. Payloads are mapped
onto entities field by field, extra fields never reach the database.

Wire names follow the column names of the tables:

	usuario                    id, nome, senha, id_historico
	pesquisas                  id, titulo, autor, referencia, palavras_chaves, resumo, link, astros, id_categoria_pesquisa
	categorias                 id, data_insercao, nome, descricao, id_categoria_pesquisa
	inter_categoria_pesquisas  id, id_pesquisa, id_categoria
	historico                  id, data_insercao, id_usuario, id_pesquisas
*/
package model
