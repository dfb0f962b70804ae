/*
Package backend implements the REST api of the research catalogue

A backend manages a Postgres-SQL or SQLite database with five tables and provides a
RESTful-API for them. Every resource can be created and listed:

	GET /categorias
	POST /categorias
	GET /pesquisas
	POST /pesquisas
	GET /inter_categoria_pesquisas
	POST /inter_categoria_pesquisas
	GET /usuarios
	POST /usuarios
	GET /historico
	POST /historico

All routes also accept a trailing slash.

Create

A create request carries a JSON object. It is validated against the resource's JSON schema
before it touches the database: unknown properties, missing required properties and wrong
types yield 422 (Unprocessable Entity) with a list of details. A body which is not JSON
yields 400 (Bad Request). The response is the persisted row, including the id assigned by
the database, with status 201 (Created).

If the backend has a notifier, every created row is handed to it after the insert.

List

Lists are ordered by id. The query parameters skip (default 0) and limit (default 100)
select a page, the response headers Pagination-Skip and Pagination-Limit echo it.
Every list response has an Etag. A request with a matching If-None-Match header gets
304 (Not Modified).

Storage errors, including violated foreign keys, yield 500 with an opaque error number.
The details are logged together with the request ID.

Operations

	GET /version
	GET /health
	GET /statistics

/version returns the build version, /health checks the database and /statistics counts
the rows of every table.
*/
package backend
