package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pos/internal/config"
	"pos/internal/handler"
	"pos/internal/infra/db"
	infraRepo "pos/internal/infra/repository"
	"pos/internal/obs"
	"pos/internal/server"
	"pos/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	obs.InitLogger()

	//.envはあれば読む（無くてもよい）
	if err := godotenv.Load(); err != nil {
		obs.Logger.Info("no .env file, using environment")
	}

	cfg := config.Load()

	gormDB, err := db.Connect(cfg)
	if err != nil {
		obs.Logger.Error("db connect failed", "error", err)
		os.Exit(1)
	}

	//初期化に失敗してもプロセスは落とさない。
	//以降のリクエストはStoreFailureになる。
	if err := db.Init(gormDB); err != nil {
		obs.Logger.Error("db init failed", "error", err)
	} else {
		obs.Logger.Info("db ready")
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	statsRepo := infraRepo.NewStatsGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	saleUC := usecase.NewSaleUsecase(txManager, idGen)
	dashboardUC := usecase.NewDashboardUsecase(statsRepo, clock)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	saleH := handler.NewSaleHandler(saleUC)
	dashboardH := handler.NewDashboardHandler(dashboardUC)

	//Server起動
	e := server.New(productH, saleH, dashboardH)

	go func() {
		if err := e.Start(cfg.Addr()); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		obs.Logger.Error("shutdown failed", "error", err)
	}
	if err := db.Close(gormDB); err != nil {
		obs.Logger.Error("db close failed", "error", err)
	}
}
