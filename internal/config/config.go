/**
* Name: 			config.go
* Description: 		환경 변수 기반 서버 설정 로드
* Workflow: 		.env 로드(있으면) → 환경 변수 파싱 → Config 반환
 */

package config

import (
	"log"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// 서버 전역 설정, 전부 환경 변수에서 채워짐
type Config struct {
	AppPort   int    `env:"APP_PORT" envDefault:"8080"`
	DBPath    string `env:"DB_PATH" envDefault:"./tomato_doctor.db"`
	UploadDir string `env:"UPLOAD_DIR" envDefault:"./uploads"`

	// 추론 서버 (TensorFlow Serving 호환 REST endpoint)
	InferenceURL string `env:"INFERENCE_URL" envDefault:"http://localhost:8501/v1/models/tomato_leaf:predict"`
	// 모델 저장소 접근 토큰, 추론 서버에 Bearer로 전달됨
	HuggingFaceToken string `env:"HUGGINGFACE_HUB_TOKEN" envDefault:""`

	// Google Cloud TTS
	TTSVoice string `env:"TTS_VOICE" envDefault:"en-US-Wavenet-D"`

	// /predict 요청 제한 (클라이언트 IP 기준)
	PredictRateLimitRPS   float64 `env:"PREDICT_RATE_LIMIT_RPS" envDefault:"2"`
	PredictRateLimitBurst int     `env:"PREDICT_RATE_LIMIT_BURST" envDefault:"5"`
}

// Load는 .env 파일(있는 경우)과 프로세스 환경 변수에서 설정을 읽음
// JWT_SECRET_KEY와 GOOGLE_APPLICATION_CREDENTIALS는 각각
// internal/auth, internal/narrator가 직접 읽음
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("config.Load(): no .env file, using process environment only")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
