package produtorepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"produtos/internal/domain"
	"produtos/internal/errors"
	"produtos/internal/pkg/logger"
)

// ProdutoRepository executa as instruções SQL parametrizadas da tabela produtos.
type ProdutoRepository struct {
	DB        *sql.DB // Pool de conexões (PostgreSQL), injetado pelo main
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewProdutoRepository cria e retorna uma nova instância do Repositório de Produtos.
func NewProdutoRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *ProdutoRepository {
	return &ProdutoRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// withTimeout aplica o DBTimeout configurado; zero significa sem prazo próprio.
func (r *ProdutoRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.DBTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.DBTimeout)
}

// FindAll busca todos os produtos, ordenados por ID.
func (r *ProdutoRepository) FindAll(ctx context.Context) ([]domain.Produto, error) {
	r.logger.Debug("Iniciando FindAll no repositório.", nil)

	ctxTimeout, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        SELECT id, nome, descricao, preco
        FROM produtos
        ORDER BY id`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar FindAll query.", err)
		return nil, errors.NewDBError("Falha ao buscar produtos", err)
	}
	defer rows.Close()

	produtos := make([]domain.Produto, 0)
	for rows.Next() {
		var p domain.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.Descricao, &p.Preco); err != nil {
			r.logger.Error("Falha ao mapear produto na iteração de FindAll.", err)
			return nil, errors.NewDBError("Falha ao mapear produtos do DB", err)
		}
		produtos = append(produtos, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de produtos.", err)
		return nil, errors.NewDBError("Erro após iteração de produtos", err)
	}

	r.logger.Debug("FindAll concluído.", map[string]interface{}{"total": len(produtos)})
	return produtos, nil
}

// FindByID busca um produto pelo ID.
func (r *ProdutoRepository) FindByID(ctx context.Context, id int64) (domain.Produto, error) {
	r.logger.Debug("Iniciando FindByID no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        SELECT id, nome, descricao, preco
        FROM produtos
        WHERE id = $1`

	var p domain.Produto
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(&p.ID, &p.Nome, &p.Descricao, &p.Preco)

	if err == sql.ErrNoRows {
		return domain.Produto{}, errors.NewNotFoundError(fmt.Sprintf("Produto com ID %d não existe na base de dados.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar produto no DB.", err)
		return domain.Produto{}, errors.NewDBError("Falha ao buscar produto", err)
	}

	return p, nil
}

// Save insere um novo produto e devolve o ID gerado pelo banco.
func (r *ProdutoRepository) Save(ctx context.Context, input domain.ProdutoInput) (int64, error) {
	r.logger.Debug("Iniciando Save no repositório.", map[string]interface{}{"nome": input.Nome})

	ctxTimeout, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        INSERT INTO produtos (nome, descricao, preco)
        VALUES ($1, $2, $3)
        RETURNING id`

	var id int64
	if err := r.DB.QueryRowContext(ctxTimeout, query, input.Nome, input.Descricao, input.Preco).Scan(&id); err != nil {
		r.logger.Error("Falha ao inserir produto no DB.", err)
		return 0, errors.NewDBError("Falha ao criar produto", err)
	}

	r.logger.Info("Produto inserido.", map[string]interface{}{"id": id, "nome": input.Nome})
	return id, nil
}

// Update sobrescreve nome, descricao e preco do produto com o ID informado.
func (r *ProdutoRepository) Update(ctx context.Context, id int64, input domain.ProdutoInput) error {
	r.logger.Debug("Iniciando Update no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        UPDATE produtos
        SET nome = $1, descricao = $2, preco = $3
        WHERE id = $4`

	result, err := r.DB.ExecContext(ctxTimeout, query, input.Nome, input.Descricao, input.Preco, id)
	if err != nil {
		r.logger.Error("Falha ao atualizar produto no DB.", err)
		return errors.NewDBError("Falha ao atualizar produto", err)
	}

	return r.checkAffected(result, id, "atualização")
}

// Delete remove o produto com o ID informado.
func (r *ProdutoRepository) Delete(ctx context.Context, id int64) error {
	r.logger.Debug("Iniciando Delete no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := r.withTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar produto do DB.", err)
		return errors.NewDBError("Falha ao deletar produto", err)
	}

	return r.checkAffected(result, id, "exclusão")
}

// checkAffected usa a contagem de linhas afetadas como verificação de existência.
func (r *ProdutoRepository) checkAffected(result sql.Result, id int64, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas.", err)
		return errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("Produto com ID %d não encontrado para %s.", id, op))
	}

	r.logger.Info("Operação concluída no repositório.", map[string]interface{}{"id": id, "op": op, "rows": rowsAffected})
	return nil
}
