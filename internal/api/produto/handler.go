package produto

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"produtos/internal/domain"
	apperror "produtos/internal/errors"
	"produtos/internal/pkg/logger"
)

// ProdutoService define o contrato que o Handler espera da camada de Serviço.
type ProdutoService interface {
	ListProdutos(ctx domain.Context) ([]domain.Produto, error)
	GetProdutoByID(ctx domain.Context, id string) (domain.Produto, error)
	CreateProduto(ctx domain.Context, input domain.ProdutoInput) (domain.Produto, error)
	UpdateProduto(ctx domain.Context, id string, input domain.ProdutoInput) (domain.Produto, error)
	DeleteProduto(ctx domain.Context, id string) error
}

// Handler agrupa todos os métodos de Handler de produtos.
type Handler struct {
	Service ProdutoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProdutoService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse envia o JSON de sucesso ou traduz o erro para status + texto puro.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		if data == nil {
			w.WriteHeader(successStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
			h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
		}
		return
	}

	// TRATAMENTO DE ERROS
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		// A causa (erro do driver SQL) só aparece no log
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s %s (%s)", r.Method, r.URL.Path, category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path, "motivo": err.Error()})
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	w.Write([]byte(message))
}

// decodeInput lê o corpo JSON de POST/PUT.
func decodeInput(r *http.Request) (domain.ProdutoInput, error) {
	var input domain.ProdutoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return domain.ProdutoInput{}, apperror.NewValidationError(apperror.MsgPayloadInvalido)
	}
	return input, nil
}

// ListProdutosHandler lida com a requisição GET /produtos.
// @Summary Lista todos os produtos
// @Description Retorna todos os produtos cadastrados, ordenados por ID.
// @Tags produtos
// @Produce json
// @Success 200 {array} domain.Produto "Lista de produtos (possivelmente vazia)"
// @Failure 500 {string} string "Erro interno do servidor"
// @Router /produtos [get]
func (h *Handler) ListProdutosHandler(w http.ResponseWriter, r *http.Request) {
	produtos, err := h.Service.ListProdutos(r.Context())
	h.handleServiceResponse(w, r, produtos, err, http.StatusOK)
}

// GetProdutoByIDHandler lida com a requisição GET /produtos/{id}.
// @Summary Obtém um produto por ID
// @Tags produtos
// @Produce json
// @Param id path string true "ID do Produto"
// @Success 200 {object} domain.Produto "Produto encontrado"
// @Failure 404 {string} string "Produto não encontrado"
// @Failure 500 {string} string "Erro interno do servidor"
// @Router /produtos/{id} [get]
func (h *Handler) GetProdutoByIDHandler(w http.ResponseWriter, r *http.Request) {
	produto, err := h.Service.GetProdutoByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, produto, nil, http.StatusOK)
}

// CreateProdutoHandler lida com a requisição POST /produtos.
// @Summary Cria um novo produto
// @Description nome e preco são obrigatórios; descricao ausente vira null.
// @Tags produtos
// @Accept json
// @Produce json
// @Param produto body domain.ProdutoInput true "Dados do produto"
// @Success 201 {object} domain.Produto "Produto criado com o ID gerado"
// @Failure 400 {string} string "Nome e preço são obrigatórios"
// @Failure 500 {string} string "Erro interno do servidor"
// @Router /produtos [post]
func (h *Handler) CreateProdutoHandler(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	produto, err := h.Service.CreateProduto(r.Context(), input)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	h.handleServiceResponse(w, r, produto, nil, http.StatusCreated)
}

// UpdateProdutoHandler lida com a requisição PUT /produtos/{id}.
// @Summary Atualiza um produto
// @Description Sobrescreve nome, descricao e preco do produto.
// @Tags produtos
// @Accept json
// @Produce json
// @Param id path string true "ID do Produto"
// @Param produto body domain.ProdutoInput true "Novos dados do produto"
// @Success 200 {object} domain.Produto "Produto atualizado"
// @Failure 400 {string} string "Nome e preço são obrigatórios"
// @Failure 404 {string} string "Produto não encontrado"
// @Failure 500 {string} string "Erro interno do servidor"
// @Router /produtos/{id} [put]
func (h *Handler) UpdateProdutoHandler(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	produto, err := h.Service.UpdateProduto(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, produto, nil, http.StatusOK)
}

// DeleteProdutoHandler lida com a requisição DELETE /produtos/{id}.
// @Summary Deleta um produto
// @Tags produtos
// @Param id path string true "ID do Produto"
// @Success 204 "Nenhum conteúdo"
// @Failure 404 {string} string "Produto não encontrado"
// @Failure 500 {string} string "Erro interno do servidor"
// @Router /produtos/{id} [delete]
func (h *Handler) DeleteProdutoHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteProduto(r.Context(), chi.URLParam(r, "id"))
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}
