package models

import "time"

// 예측 기록 (history 테이블의 1행)
type PredictionRecord struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	Filename   string    `json:"filename"`
	Prediction string    `json:"prediction"`
	Advice     string    `json:"advice"`
	AudioPath  string    `json:"audio_path"`
	CreatedAt  time.Time `json:"created_at"`
}
