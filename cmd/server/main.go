package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/insightjournal/internal/auth"
	"github.com/insightjournal/internal/config"
	"github.com/insightjournal/internal/db"
	"github.com/insightjournal/internal/handler"
	"github.com/insightjournal/internal/notify"
	"github.com/insightjournal/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化两个数据库
	stores, err := db.Open(cfg.StagingDBPath, cfg.PublicationDBPath)
	if err != nil {
		log.Fatalf("failed to open stores: %v", err)
	}

	tokens := auth.NewTokenIssuer(auth.TokenConfig{
		Secret: cfg.TokenSecret,
		TTL:    cfg.TokenTTL,
	})
	authService := auth.NewService(stores.Publication, tokens)
	if err := authService.EnsureUser(cfg.BootstrapUsername, cfg.BootstrapPassword, db.RoleAdmin); err != nil {
		log.Fatalf("failed to bootstrap admin user: %v", err)
	}

	dispatcher := notify.NewDispatcher(&notify.SMTPMailer{Addr: cfg.SMTPAddr, From: cfg.SMTPFrom}, 0)
	defer dispatcher.Close()

	api := handler.NewAPI(stores, authService, dispatcher, cfg.ModerationNotifyTo)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, tokens)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
