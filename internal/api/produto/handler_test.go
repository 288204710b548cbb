package produto_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"produtos/internal/api/produto"
	"produtos/internal/api/router"
	"produtos/internal/domain"
	apperror "produtos/internal/errors"
	"produtos/internal/pkg/logger"
)

// MockProdutoService é uma implementação mock da interface ProdutoService
type MockProdutoService struct {
	mock.Mock
}

func (m *MockProdutoService) ListProdutos(ctx domain.Context) ([]domain.Produto, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Produto), args.Error(1)
}

func (m *MockProdutoService) GetProdutoByID(ctx domain.Context, id string) (domain.Produto, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Produto), args.Error(1)
}

func (m *MockProdutoService) CreateProduto(ctx domain.Context, input domain.ProdutoInput) (domain.Produto, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Produto), args.Error(1)
}

func (m *MockProdutoService) UpdateProduto(ctx domain.Context, id string, input domain.ProdutoInput) (domain.Produto, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Produto), args.Error(1)
}

func (m *MockProdutoService) DeleteProduto(ctx domain.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setup() (http.Handler, *MockProdutoService) {
	svc := new(MockProdutoService)
	h := produto.NewHandler(svc, logger.NewNop())
	return router.NewRouter(h, logger.NewNop()), svc
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func strPtr(s string) *string { return &s }

func TestListProdutosHandler_Success(t *testing.T) {
	h, svc := setup()
	svc.On("ListProdutos", mock.Anything).Return([]domain.Produto{
		{ID: 1, Nome: "Mouse", Preco: 49.9},
		{ID: 2, Nome: "Teclado", Descricao: strPtr("ABNT2"), Preco: 120},
	}, nil)

	rec := do(h, http.MethodGet, "/produtos", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[
		{"id":1,"nome":"Mouse","descricao":null,"preco":49.9},
		{"id":2,"nome":"Teclado","descricao":"ABNT2","preco":120}
	]`, rec.Body.String())
}

func TestListProdutosHandler_EmptyIsArray(t *testing.T) {
	h, svc := setup()
	svc.On("ListProdutos", mock.Anything).Return([]domain.Produto{}, nil)

	rec := do(h, http.MethodGet, "/produtos", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListProdutosHandler_StorageFailure(t *testing.T) {
	h, svc := setup()
	svc.On("ListProdutos", mock.Anything).Return([]domain.Produto(nil), apperror.NewDBError("Falha ao buscar produtos", errors.New("pq: password authentication failed")))

	rec := do(h, http.MethodGet, "/produtos", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apperror.MsgErroInterno, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestGetProdutoByIDHandler(t *testing.T) {
	h, svc := setup()
	svc.On("GetProdutoByID", mock.Anything, "1").Return(domain.Produto{ID: 1, Nome: "Mouse", Preco: 49.9}, nil)
	svc.On("GetProdutoByID", mock.Anything, "2").Return(domain.Produto{}, apperror.NewNotFoundError("Produto com ID 2 não existe."))

	rec := do(h, http.MethodGet, "/produtos/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"nome":"Mouse","descricao":null,"preco":49.9}`, rec.Body.String())

	rec = do(h, http.MethodGet, "/produtos/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apperror.MsgNaoEncontrado, rec.Body.String())
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
}

func TestGetProdutoByIDHandler_PassesRawPathID(t *testing.T) {
	h, svc := setup()
	svc.On("GetProdutoByID", mock.Anything, "abc").Return(domain.Produto{}, apperror.NewNotFoundError("ID não numérico"))

	rec := do(h, http.MethodGet, "/produtos/abc", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreateProdutoHandler_Success(t *testing.T) {
	h, svc := setup()
	input := domain.ProdutoInput{Nome: "Mouse", Preco: 49.9}
	svc.On("CreateProduto", mock.Anything, input).Return(domain.Produto{ID: 1, Nome: "Mouse", Preco: 49.9}, nil)

	rec := do(h, http.MethodPost, "/produtos", `{"nome":"Mouse","preco":49.9}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"nome":"Mouse","descricao":null,"preco":49.9}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestCreateProdutoHandler_ValidationError(t *testing.T) {
	h, svc := setup()
	svc.On("CreateProduto", mock.Anything, domain.ProdutoInput{Preco: 10}).Return(domain.Produto{}, apperror.NewValidationError(apperror.MsgCamposObrigatorios))

	rec := do(h, http.MethodPost, "/produtos", `{"preco":10}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperror.MsgCamposObrigatorios, rec.Body.String())
}

func TestCreateProdutoHandler_MalformedJSON(t *testing.T) {
	h, svc := setup()

	rec := do(h, http.MethodPost, "/produtos", `{"nome":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperror.MsgPayloadInvalido, rec.Body.String())
	svc.AssertNotCalled(t, "CreateProduto", mock.Anything, mock.Anything)
}

func TestUpdateProdutoHandler(t *testing.T) {
	h, svc := setup()
	input := domain.ProdutoInput{Nome: "Mouse Gamer", Descricao: strPtr("RGB"), Preco: 99.9}
	svc.On("UpdateProduto", mock.Anything, "1", input).Return(domain.Produto{ID: 1, Nome: "Mouse Gamer", Descricao: strPtr("RGB"), Preco: 99.9}, nil)
	svc.On("UpdateProduto", mock.Anything, "7", input).Return(domain.Produto{}, apperror.NewNotFoundError("Produto com ID 7 não encontrado para atualização."))

	body := `{"nome":"Mouse Gamer","descricao":"RGB","preco":99.9}`

	rec := do(h, http.MethodPut, "/produtos/1", body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"nome":"Mouse Gamer","descricao":"RGB","preco":99.9}`, rec.Body.String())

	rec = do(h, http.MethodPut, "/produtos/7", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProdutoHandler(t *testing.T) {
	h, svc := setup()
	svc.On("DeleteProduto", mock.Anything, "1").Return(nil).Once()
	svc.On("DeleteProduto", mock.Anything, "1").Return(apperror.NewNotFoundError("Produto com ID 1 não encontrado para exclusão.")).Once()

	rec := do(h, http.MethodDelete, "/produtos/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(h, http.MethodDelete, "/produtos/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandler_UntypedErrorIs500(t *testing.T) {
	h, svc := setup()
	svc.On("DeleteProduto", mock.Anything, "1").Return(context.DeadlineExceeded)

	rec := do(h, http.MethodDelete, "/produtos/1", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apperror.MsgErroInterno, rec.Body.String())
}
