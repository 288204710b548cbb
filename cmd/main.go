package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	// Nossos pacotes de infraestrutura e utilitários
	"produtos/config"
	"produtos/internal/pkg/cache"
	"produtos/internal/pkg/database"
	"produtos/internal/pkg/logger"
	"produtos/internal/pkg/middleware"

	// Camadas do Produto para Injeção de Dependências
	"produtos/internal/api/produto"
	"produtos/internal/api/router"
	"produtos/internal/repository/produtorepo"
	"produtos/internal/service/produtoservice"
)

// @title API de Produtos
// @version 1.0
// @description CRUD do recurso produtos sobre PostgreSQL.
// @BasePath /
func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	// Sem .env seguimos apenas com o ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg := config.LoadConfig()
	appLog := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL): pool único, vive até o fim do processo
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Rate limiting (Redis), somente se REDIS_ADDR estiver definido
	var extra []func(http.Handler) http.Handler
	if cfg.RateLimitEnabled() {
		cacheClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			appLog.Fatal("Falha ao conectar ao Redis.", err)
		}
		defer cacheClient.Close()
		extra = append(extra, middleware.RateLimiter(cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod, appLog))
		appLog.Info("Rate limiting ativado.", map[string]interface{}{"redis": cfg.RedisAddr, "max": cfg.RateLimitMaxRequests})
	}

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	produtoRepo := produtorepo.NewProdutoRepository(db, cfg.DBTimeout, appLog)
	produtoSvc := produtoservice.NewService(produtoRepo, appLog)
	produtoHandler := produto.NewHandler(produtoSvc, appLog)
	appLog.Debug("Camadas de produto inicializadas.", nil)

	// 4. Configuração do Servidor
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(produtoHandler, appLog, extra...),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLog.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLog.Fatal("Servidor encerrado com erro.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
