package produtoservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"produtos/internal/domain"
	apperror "produtos/internal/errors"
	"produtos/internal/pkg/logger"
)

// ProdutoRepository define o contrato que este Serviço espera da camada de Persistência.
type ProdutoRepository interface {
	FindAll(ctx context.Context) ([]domain.Produto, error)
	FindByID(ctx context.Context, id int64) (domain.Produto, error)
	Save(ctx context.Context, input domain.ProdutoInput) (int64, error)
	Update(ctx context.Context, id int64, input domain.ProdutoInput) error
	Delete(ctx context.Context, id int64) error
}

// Service implementa as cinco operações do recurso produtos.
type Service struct {
	repo     ProdutoRepository
	validate *validator.Validate
	logger   logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Produtos.
func NewService(repo ProdutoRepository, logger logger.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

// ListProdutos devolve todos os produtos (lista vazia quando não há nenhum).
func (s *Service) ListProdutos(ctx domain.Context) ([]domain.Produto, error) {
	ctxGo := s.goContext(ctx, "ListProdutos")

	produtos, err := s.repo.FindAll(ctxGo)
	if err != nil {
		return nil, internal("Falha interna ao buscar produtos.", err)
	}
	if produtos == nil {
		produtos = []domain.Produto{}
	}

	s.logger.Debug("Produtos listados.", map[string]interface{}{"count": len(produtos)})
	return produtos, nil
}

// GetProdutoByID busca um produto pelo ID recebido na URL.
func (s *Service) GetProdutoByID(ctx domain.Context, id string) (domain.Produto, error) {
	produtoID, err := parseID(id)
	if err != nil {
		return domain.Produto{}, err
	}

	produto, err := s.repo.FindByID(s.goContext(ctx, "GetProdutoByID"), produtoID)
	if err != nil {
		return domain.Produto{}, err // Erros do repositório já são NotFoundError ou DBError
	}

	return produto, nil
}

// CreateProduto valida a entrada, insere a linha e devolve os valores recebidos com o ID gerado.
func (s *Service) CreateProduto(ctx domain.Context, input domain.ProdutoInput) (domain.Produto, error) {
	s.logger.Debug("Iniciando criação de produto no serviço.", map[string]interface{}{"nome": input.Nome})

	if err := s.validateInput(input); err != nil {
		return domain.Produto{}, err
	}

	id, err := s.repo.Save(s.goContext(ctx, "CreateProduto"), input)
	if err != nil {
		return domain.Produto{}, internal("Falha interna ao criar produto.", err)
	}

	s.logger.Info("Produto criado com sucesso.", map[string]interface{}{"id": id, "nome": input.Nome})
	return input.ToProduto(id), nil
}

// UpdateProduto sobrescreve os três campos mutáveis do produto.
// A validação de presença é a mesma do CreateProduto.
func (s *Service) UpdateProduto(ctx domain.Context, id string, input domain.ProdutoInput) (domain.Produto, error) {
	s.logger.Debug("Iniciando atualização de produto no serviço.", map[string]interface{}{"id": id})

	if err := s.validateInput(input); err != nil {
		return domain.Produto{}, err
	}

	produtoID, err := parseID(id)
	if err != nil {
		return domain.Produto{}, err
	}

	if err := s.repo.Update(s.goContext(ctx, "UpdateProduto"), produtoID, input); err != nil {
		return domain.Produto{}, err
	}

	s.logger.Info("Produto atualizado com sucesso.", map[string]interface{}{"id": produtoID})
	return input.ToProduto(produtoID), nil
}

// DeleteProduto remove um produto pelo ID.
func (s *Service) DeleteProduto(ctx domain.Context, id string) error {
	produtoID, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(s.goContext(ctx, "DeleteProduto"), produtoID); err != nil {
		return err
	}

	s.logger.Info("Produto deletado com sucesso.", map[string]interface{}{"id": produtoID})
	return nil
}

// validateInput aplica as tags validate:"required" de domain.ProdutoInput.
func (s *Service) validateInput(input domain.ProdutoInput) error {
	if err := s.validate.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make(map[string]interface{}, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			s.logger.Debug("Falha na validação do produto.", fields)
			return apperror.NewValidationError(apperror.MsgCamposObrigatorios)
		}
		return apperror.NewInternalError("Falha ao validar produto.", err)
	}
	return nil
}

// goContext converte domain.Context para context.Context.
func (s *Service) goContext(ctx domain.Context, op string) context.Context {
	ctxGo, ok := ctx.(context.Context)
	if !ok || ctxGo == nil {
		s.logger.Warn("Contexto de domínio inválido, usando context.Background().", map[string]interface{}{"op": op})
		return context.Background()
	}
	return ctxGo
}

// parseID converte o ID da URL. Um texto que não é inteiro nunca casa com a
// chave primária, então resulta em NotFoundError.
func parseID(id string) (int64, error) {
	produtoID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, apperror.NewNotFoundError(fmt.Sprintf("ID %q não corresponde a nenhum produto.", id))
	}
	return produtoID, nil
}

// internal preserva erros já tipados e encapsula os demais como InternalError.
func internal(msg string, err error) error {
	var appErr apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.NewInternalError(msg, err)
}
