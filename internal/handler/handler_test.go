package handler

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"TomatoDoctor_AIProject/internal/classifier"
	"TomatoDoctor_AIProject/internal/middleware"
	"TomatoDoctor_AIProject/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// 실제 전처리(디코딩 검증)는 수행하고 라벨만 고정으로 리턴하는 fake
type fakeClassifier struct {
	label string
	err   error
}

func (f *fakeClassifier) Classify(ctx context.Context, r io.Reader) (string, error) {
	if _, err := classifier.Preprocess(r); err != nil {
		return "", err
	}
	if f.err != nil {
		return "", f.err
	}
	return f.label, nil
}

type fakeNarrator struct {
	audio []byte
	err   error
}

func (f *fakeNarrator) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

var errSynthesisDown = errors.New("tts unavailable")

func newTestRouter(t *testing.T, deps PredictDeps) *gin.Engine {
	t.Helper()
	storage.InitDB(filepath.Join(t.TempDir(), "test.db"))

	router := gin.New()
	router.POST("/signup", Signup)
	router.POST("/login", Login)
	router.POST("/predict", middleware.AuthMiddleware(), Predict(deps))
	router.GET("/history/:user_id", middleware.AuthMiddleware(), History)
	router.GET("/api/audio/:filename", middleware.AuthMiddleware(), StreamAudio(deps.UploadDir))
	return router
}

func createTestUser(t *testing.T, username, password string) int {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	if err := storage.CreateUser(username, string(hash)); err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	user, err := storage.GetUserByUsername(username)
	if err != nil {
		t.Fatalf("GetUserByUsername error: %v", err)
	}
	return user.ID
}

func leafPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 30, G: 160, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode error: %v", err)
	}
	return buf.Bytes()
}

func buildPredictBody(t *testing.T, filename string, content []byte, userID int) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile error: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("part.Write error: %v", err)
	}
	if err := writer.WriteField("user_id", strconv.Itoa(userID)); err != nil {
		t.Fatalf("WriteField error: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("writer.Close error: %v", err)
	}
	return &body, writer.FormDataContentType()
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("ReadDir error: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
