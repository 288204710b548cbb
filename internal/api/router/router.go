package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "produtos/docs" // Registra a especificação Swagger
	"produtos/internal/api/produto"
	"produtos/internal/pkg/logger"
	"produtos/internal/pkg/middleware"
)

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe o Handler já inicializado e, opcionalmente, middlewares extras
// (e.g., o rate limiter quando o Redis está configurado).
func NewRouter(produtoHandler *produto.Handler, log logger.Logger, extra ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares Globais ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	for _, mw := range extra {
		r.Use(mw)
	}

	// --- 2. Health Check e Documentação ---
	r.Get("/ping", PingHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 3. Rotas do Recurso produtos ---
	r.Route("/produtos", func(r chi.Router) {
		r.Get("/", produtoHandler.ListProdutosHandler)
		r.Post("/", produtoHandler.CreateProdutoHandler)

		r.Get("/{id}", produtoHandler.GetProdutoByIDHandler)
		r.Put("/{id}", produtoHandler.UpdateProdutoHandler)
		r.Delete("/{id}", produtoHandler.DeleteProdutoHandler)
	})

	return r
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
