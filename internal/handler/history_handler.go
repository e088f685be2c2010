package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"TomatoDoctor_AIProject/internal/storage"

	"github.com/gin-gonic/gin"
)

// history 응답의 행 포맷: [filename, prediction, advice, audio_path, timestamp]
const historyTimeLayout = "2006-01-02 15:04:05"

// History godoc
// @Summary      사용자 예측 기록 조회
// @Description  해당 계정의 예측 기록을 기록된 순서대로 반환합니다.
// @Description  <br> **[인증]** Header에 `Authorization: Bearer ...`를 넣거나, URL 파라미터 `?token=...`을 사용하세요.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path  int    true  "계정 id"
// @Param        token   query string false "JWT 토큰 (Header 사용 불가 시)"
// @Success      200 {object} object{history=[][]string}
// @Failure      401 {object} handler.ErrorResponse "토큰 불일치 또는 인증 실패"
// @Failure      500 {object} handler.ErrorResponse "DB 조회 실패 등 서버 오류"
// @Router       /history/{user_id} [get]
func History(c *gin.Context) {
	// 토큰이 요청된 계정 그 자체를 가리켜야만 조회 허용
	authUserID := c.GetInt("user_id")
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil || userID != authUserID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records, err := storage.HistoryByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}

	history := make([][]string, 0, len(records))
	for _, r := range records {
		history = append(history, []string{
			r.Filename,
			r.Prediction,
			r.Advice,
			r.AudioPath,
			r.CreatedAt.Format(historyTimeLayout),
		})
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

// StreamAudio godoc
// @Summary      합성된 오디오 파일 스트리밍
// @Description  예측 기록의 안내 음성 파일(.mp3)을 재생합니다.
// @Description  <br> **[인증]** Header에 `Authorization: Bearer ...`를 넣거나, URL 파라미터 `?token=...`을 사용하세요.
// @Tags         API (Protected)
// @Produce      audio/mpeg
// @Security     BearerAuth
// @Param        filename path  string true  "오디오 파일명 (예: 3f2a....mp3)"
// @Param        token    query string false "JWT 토큰 (Header 사용 불가 시)"
// @Success      200 {file}   file "오디오 바이너리 데이터"
// @Failure      401 {object} handler.ErrorResponse "인증 실패"
// @Failure      404 {object} handler.ErrorResponse "해당 파일을 찾을 수 없음"
// @Router       /api/audio/{filename} [get]
func StreamAudio(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authUserID := c.GetInt("user_id")
		filename := c.Param("filename")

		cleanFilename := filepath.Base(filename)
		filePath := filepath.Join(uploadDir, cleanFilename)

		// 본인 기록에 속한 클립만 제공, 타인 파일은 존재 여부도 노출하지 않음
		owned, err := storage.HistoryOwnsAudio(authUserID, filePath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
			return
		}
		if !owned {
			c.JSON(http.StatusNotFound, gin.H{"error": "Audio file not found"})
			return
		}

		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Audio file not found"})
			return
		}

		c.File(filePath)
	}
}

// Healthz godoc
// @Summary      서버 상태 확인
// @Tags         Health
// @Produce      json
// @Success      200 {object} object{status=string}
// @Router       /healthz [get]
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
