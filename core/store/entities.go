package store

import (
	"context"

	"github.com/relabs-tech/neurai/core/model"
)

func scanUsuario(s scanner) (u model.Usuario, err error) {
	err = s.Scan(&u.ID, &u.Nome, &u.Senha, &u.IDHistorico)
	return
}

// CreateUsuario persists a user and returns the stored row
func (s *Session) CreateUsuario(ctx context.Context, u model.Usuario) (model.Usuario, error) {
	return insert(ctx, s, TableUsuario, scanUsuario, u.Nome, u.Senha, u.IDHistorico)
}

// ListUsuarios returns one page of users ordered by id
func (s *Session) ListUsuarios(ctx context.Context, page Page) ([]model.Usuario, error) {
	return list(ctx, s, TableUsuario, page, scanUsuario)
}

func scanPesquisa(s scanner) (p model.Pesquisa, err error) {
	err = s.Scan(&p.ID, &p.Titulo, &p.Autor, &p.Referencia, &p.PalavrasChaves,
		&p.Resumo, &p.Link, &p.Astros, &p.IDCategoriaPesquisa)
	return
}

// CreatePesquisa persists a research entry and returns the stored row
func (s *Session) CreatePesquisa(ctx context.Context, p model.Pesquisa) (model.Pesquisa, error) {
	return insert(ctx, s, TablePesquisas, scanPesquisa, p.Titulo, p.Autor, p.Referencia,
		p.PalavrasChaves, p.Resumo, p.Link, p.Astros, p.IDCategoriaPesquisa)
}

// ListPesquisas returns one page of research entries ordered by id
func (s *Session) ListPesquisas(ctx context.Context, page Page) ([]model.Pesquisa, error) {
	return list(ctx, s, TablePesquisas, page, scanPesquisa)
}

func scanCategoria(s scanner) (c model.Categoria, err error) {
	err = s.Scan(&c.ID, &c.DataInsercao, &c.Nome, &c.Descricao, &c.IDCategoriaPesquisa)
	return
}

// CreateCategoria persists a category and returns the stored row
func (s *Session) CreateCategoria(ctx context.Context, c model.Categoria) (model.Categoria, error) {
	return insert(ctx, s, TableCategorias, scanCategoria, c.DataInsercao, c.Nome, c.Descricao, c.IDCategoriaPesquisa)
}

// ListCategorias returns one page of categories ordered by id
func (s *Session) ListCategorias(ctx context.Context, page Page) ([]model.Categoria, error) {
	return list(ctx, s, TableCategorias, page, scanCategoria)
}

func scanInterCategoriaPesquisa(s scanner) (l model.InterCategoriaPesquisa, err error) {
	err = s.Scan(&l.ID, &l.IDPesquisa, &l.IDCategoria)
	return
}

// CreateInterCategoriaPesquisa links a research entry with a category. The returned
// link carries the id assigned by the database.
func (s *Session) CreateInterCategoriaPesquisa(ctx context.Context, l model.InterCategoriaPesquisa) (model.InterCategoriaPesquisa, error) {
	return insert(ctx, s, TableInterCategoriaPesquisa, scanInterCategoriaPesquisa, l.IDPesquisa, l.IDCategoria)
}

// ListInterCategoriaPesquisas returns one page of links ordered by id
func (s *Session) ListInterCategoriaPesquisas(ctx context.Context, page Page) ([]model.InterCategoriaPesquisa, error) {
	return list(ctx, s, TableInterCategoriaPesquisa, page, scanInterCategoriaPesquisa)
}

func scanHistorico(s scanner) (h model.Historico, err error) {
	err = s.Scan(&h.ID, &h.DataInsercao, &h.IDUsuario, &h.IDPesquisas)
	return
}

// CreateHistorico persists a history record and returns the stored row
func (s *Session) CreateHistorico(ctx context.Context, h model.Historico) (model.Historico, error) {
	return insert(ctx, s, TableHistorico, scanHistorico, h.DataInsercao, h.IDUsuario, h.IDPesquisas)
}

// ListHistorico returns one page of history records ordered by id
func (s *Session) ListHistorico(ctx context.Context, page Page) ([]model.Historico, error) {
	return list(ctx, s, TableHistorico, page, scanHistorico)
}
