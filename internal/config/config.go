package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr         string
	Port               string
	StagingDBPath      string
	PublicationDBPath  string
	TokenSecret        string
	TokenTTL           time.Duration
	GinMode            string
	SMTPAddr           string
	SMTPFrom           string
	ModerationNotifyTo string
	BootstrapUsername  string
	BootstrapPassword  string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "5000"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	stagingDBPath := strings.TrimSpace(os.Getenv("STAGING_DB_PATH"))
	if stagingDBPath == "" {
		stagingDBPath = "staging.db"
	}

	publicationDBPath := strings.TrimSpace(os.Getenv("PUBLICATION_DB_PATH"))
	if publicationDBPath == "" {
		publicationDBPath = "publication.db"
	}

	tokenSecret := strings.TrimSpace(os.Getenv("TOKEN_SECRET"))
	if tokenSecret == "" {
		tokenSecret = "insight-journal-dev-secret"
	}

	tokenTTL := time.Hour
	if raw := strings.TrimSpace(os.Getenv("TOKEN_TTL_MINUTES")); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			tokenTTL = time.Duration(minutes) * time.Minute
		}
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	smtpFrom := strings.TrimSpace(os.Getenv("SMTP_FROM"))
	if smtpFrom == "" {
		smtpFrom = "no-reply@insight-journal.local"
	}

	return AppConfig{
		ListenAddr:         listenAddr,
		Port:               port,
		StagingDBPath:      stagingDBPath,
		PublicationDBPath:  publicationDBPath,
		TokenSecret:        tokenSecret,
		TokenTTL:           tokenTTL,
		GinMode:            ginMode,
		SMTPAddr:           strings.TrimSpace(os.Getenv("SMTP_ADDR")),
		SMTPFrom:           smtpFrom,
		ModerationNotifyTo: strings.TrimSpace(os.Getenv("MODERATION_NOTIFY_TO")),
		BootstrapUsername:  strings.TrimSpace(os.Getenv("BOOTSTRAP_ADMIN_USERNAME")),
		BootstrapPassword:  strings.TrimSpace(os.Getenv("BOOTSTRAP_ADMIN_PASSWORD")),
	}
}
