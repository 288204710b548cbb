// Package migrations embute os arquivos SQL do goose no binário.
package migrations

import "embed"

// FS contém as migrações, na raiz do sistema de arquivos embutido.
//
//go:embed *.sql
var FS embed.FS

// Dialect é o dialeto goose usado em todas as execuções.
const Dialect = "postgres"
