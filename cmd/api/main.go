package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"TomatoDoctor_AIProject/internal/classifier"
	"TomatoDoctor_AIProject/internal/config"
	"TomatoDoctor_AIProject/internal/handler"
	"TomatoDoctor_AIProject/internal/middleware"
	"TomatoDoctor_AIProject/internal/narrator"
	"TomatoDoctor_AIProject/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "TomatoDoctor_AIProject/docs"
)

// @title           Tomato Doctor API
// @version         1.0
// @description     토마토 잎 질병 예측 및 대응 안내 서버
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("main(): Failed to load config: ", err)
	}

	storage.InitDB(cfg.DBPath)
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatal("main(): Failed to create upload directory: ", err)
	}

	clf := classifier.NewHTTPClient(cfg.InferenceURL, cfg.HuggingFaceToken)

	nar, err := narrator.NewGoogleTTS(context.Background(), cfg.TTSVoice)
	if err != nil {
		log.Fatal("main(): Failed to create TTS client: ", err)
	}
	defer nar.Close()

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.Static("/uploads", cfg.UploadDir)
	router.GET("/healthz", handler.Healthz)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/signup", handler.Signup)
	router.POST("/login", handler.Login)

	predictDeps := handler.PredictDeps{
		Classifier: clf,
		Narrator:   nar,
		UploadDir:  cfg.UploadDir,
	}
	router.POST("/predict",
		middleware.AuthMiddleware(),
		middleware.PredictRateLimiter(cfg.PredictRateLimitRPS, cfg.PredictRateLimitBurst),
		handler.Predict(predictDeps))

	router.GET("/history/:user_id", middleware.AuthMiddleware(), handler.History)
	router.GET("/api/audio/:filename", middleware.AuthMiddleware(), handler.StreamAudio(cfg.UploadDir))

	log.Fatal(router.Run(":" + strconv.Itoa(cfg.AppPort)))
}
