/**
* Name: 			predict_handler.go
* Description: 		업로드 → 분류 → 안내 → 음성 합성 → 기록 파이프라인
* Workflow: 		이미지 저장, 분류, 안내 조회, TTS 합성, history 기록
 */

package handler

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"TomatoDoctor_AIProject/internal/advice"
	"TomatoDoctor_AIProject/internal/classifier"
	"TomatoDoctor_AIProject/internal/narrator"
	"TomatoDoctor_AIProject/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 파이프라인 외부 협력자, 테스트에서 fake로 교체됨
type PredictDeps struct {
	Classifier classifier.Classifier
	Narrator   narrator.Narrator
	UploadDir  string
}

type PredictResponse struct {
	Filename   string `json:"filename" example:"leaf.jpg"`
	Prediction string `json:"prediction" example:"Tomato_healthy"`
	Advice     string `json:"advice" example:"Your plant is healthy! No action is needed."`
	AudioFile  string `json:"audio_file" example:"uploads/3f2a....mp3"`
}

// Predict godoc
// @Summary      잎 사진 질병 예측
// @Description  토마토 잎 사진을 업로드하면 질병 라벨, 대응 안내, 합성 음성 경로를 반환합니다.
// @Description  <br> **[인증]** 토큰의 계정 id와 user_id 필드가 일치해야 합니다.
// @Tags         API (Protected)
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file    formData file   true "잎 사진 (jpg/png)"
// @Param        user_id formData int    true "계정 id"
// @Success      200 {object} handler.PredictResponse
// @Failure      400 {object} handler.ErrorResponse "파일 누락 또는 디코딩 실패"
// @Failure      401 {object} handler.ErrorResponse "인증 실패"
// @Failure      500 {object} handler.ErrorResponse "추론/합성/기록 실패"
// @Router       /predict [post]
func Predict(deps PredictDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 토큰 계정과 요청 계정이 다르면 기록 위조이므로 거부
		authUserID := c.GetInt("user_id")
		userID, err := strconv.Atoi(c.PostForm("user_id"))
		if err != nil || userID != authUserID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}

		if err := os.MkdirAll(deps.UploadDir, 0755); err != nil {
			log.Printf("[ERROR] Predict: failed to create upload dir: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure"})
			return
		}

		// 1. 업로드 원본 저장
		// 클라이언트 파일명은 충돌/경로 탈출 위험이 있어 서버가 이름을 정함
		originalName := filepath.Base(fileHeader.Filename)
		artifactID := uuid.New().String()
		imagePath := filepath.Join(deps.UploadDir, artifactID+filepath.Ext(originalName))
		if err := c.SaveUploadedFile(fileHeader, imagePath); err != nil {
			log.Printf("[ERROR] Predict: failed to save upload: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure"})
			return
		}

		// 2~3. 전처리 + 분류
		imageFile, err := os.Open(imagePath)
		if err != nil {
			os.Remove(imagePath)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure"})
			return
		}
		label, err := deps.Classifier.Classify(c.Request.Context(), imageFile)
		imageFile.Close()
		if err != nil {
			// 이후 단계가 실패하면 저장된 산출물을 되돌려 고아 파일을 남기지 않음
			os.Remove(imagePath)
			if errors.Is(err, classifier.ErrDecodeFailure) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported or corrupted image"})
				return
			}
			log.Printf("[ERROR] Predict: classification failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Prediction failed"})
			return
		}

		// 4. 라벨 → 안내 문구
		adviceText := advice.ForLabel(label)

		// 5. 안내 문구 음성 합성
		audioContent, err := deps.Narrator.Synthesize(c.Request.Context(), adviceText)
		if err != nil {
			os.Remove(imagePath)
			log.Printf("[ERROR] Predict: narration failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Audio synthesis failed"})
			return
		}
		audioPath := filepath.Join(deps.UploadDir, artifactID+".mp3")
		if err := os.WriteFile(audioPath, audioContent, 0644); err != nil {
			os.Remove(imagePath)
			log.Printf("[ERROR] Predict: failed to save audio: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure"})
			return
		}

		// 6. history 기록 (실패 시 이미지/오디오 모두 정리)
		if err := storage.AppendHistory(userID, originalName, label, adviceText, audioPath, time.Now()); err != nil {
			os.Remove(imagePath)
			os.Remove(audioPath)
			log.Printf("[ERROR] Predict: failed to append history: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record prediction"})
			return
		}

		c.JSON(http.StatusOK, PredictResponse{
			Filename:   originalName,
			Prediction: label,
			Advice:     adviceText,
			AudioFile:  audioPath,
		})
	}
}
