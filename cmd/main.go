package main

import (
	"os"

	"github.com/jamiepatterson123/leenaai-sub001/config"
	"github.com/jamiepatterson123/leenaai-sub001/logger"
	"github.com/jamiepatterson123/leenaai-sub001/routes"
	"github.com/jamiepatterson123/leenaai-sub001/services"
	"github.com/jamiepatterson123/leenaai-sub001/utils"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Close()

	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	hub := services.NewRealtimeHub()
	services.SetHub(hub)

	push, err := services.NewPushService(config.DB)
	if err != nil {
		logger.Warn("push notifications disabled", zap.Error(err))
	} else {
		services.SetPush(push)
	}

	whatsapp := services.NewWhatsAppService()
	services.InitAlertDeps(config.DB, hub, push, whatsapp)

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}

	r := routes.SetupRouter()
	if err := r.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
