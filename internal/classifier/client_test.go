package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

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

// TF Serving 호환 fake: GET은 모델 상태, POST는 고정 점수
func fakeServing(t *testing.T, scores []float64, wantToken string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantToken != "" {
			if got := r.Header.Get("Authorization"); got != "Bearer "+wantToken {
				t.Errorf("Authorization header: got %q", got)
			}
		}
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"model_version_status":[{"version":"1","state":"AVAILABLE"}]}`))
		case http.MethodPost:
			var req predictRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("bad predict body: %v", err)
			}
			if len(req.Instances) != 1 {
				t.Errorf("instances: got %d want 1", len(req.Instances))
			}
			json.NewEncoder(w).Encode(predictResponse{Predictions: [][]float64{scores}})
		}
	}))
}

func TestHTTPClient_Classify(t *testing.T) {
	scores := make([]float64, len(ClassNames))
	scores[9] = 0.93 // Tomato_healthy
	srv := fakeServing(t, scores, "hf_test_token")
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/v1/models/tomato_leaf:predict", "hf_test_token")

	label, err := c.Classify(context.Background(), bytes.NewReader(leafPNG(t)))
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if label != "Tomato_healthy" {
		t.Fatalf("label: got %q want %q", label, "Tomato_healthy")
	}
}

func TestHTTPClient_Classify_TieKeepsFirstLabel(t *testing.T) {
	scores := make([]float64, len(ClassNames))
	scores[2] = 0.5
	scores[6] = 0.5
	srv := fakeServing(t, scores, "")
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/v1/models/tomato_leaf:predict", "")

	label, err := c.Classify(context.Background(), bytes.NewReader(leafPNG(t)))
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if label != ClassNames[2] {
		t.Fatalf("tie-break: got %q want %q", label, ClassNames[2])
	}
}

func TestHTTPClient_Classify_DecodeFailure(t *testing.T) {
	srv := fakeServing(t, make([]float64, len(ClassNames)), "")
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/v1/models/tomato_leaf:predict", "")

	_, err := c.Classify(context.Background(), strings.NewReader("corrupted"))
	if !errors.Is(err, ErrDecodeFailure) {
		t.Fatalf("expected ErrDecodeFailure, got %v", err)
	}
}

func TestHTTPClient_Classify_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Error(w, "model exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/v1/models/tomato_leaf:predict", "")

	_, err := c.Classify(context.Background(), bytes.NewReader(leafPNG(t)))
	if err == nil {
		t.Fatal("expected error for 500 response, got nil")
	}
}

func TestHTTPClient_CanceledFirstRequestDoesNotPoison(t *testing.T) {
	scores := make([]float64, len(ClassNames))
	scores[9] = 0.93 // Tomato_healthy
	srv := fakeServing(t, scores, "")
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/v1/models/tomato_leaf:predict", "")

	// 첫 호출자가 요청 도중 연결을 끊은 상황
	canceledCtx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Classify(canceledCtx, bytes.NewReader(leafPNG(t))); err == nil {
		t.Fatal("expected error for canceled context, got nil")
	}

	// 취소는 호출자 사정일 뿐, 이후 요청은 정상 동작해야 함
	label, err := c.Classify(context.Background(), bytes.NewReader(leafPNG(t)))
	if err != nil {
		t.Fatalf("Classify after canceled first request: %v", err)
	}
	if label != "Tomato_healthy" {
		t.Fatalf("label: got %q want %q", label, "Tomato_healthy")
	}
}

func TestHTTPClient_ModelUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/v1/models/tomato_leaf:predict", "")

	_, err := c.Classify(context.Background(), bytes.NewReader(leafPNG(t)))
	if err == nil {
		t.Fatal("expected readiness error, got nil")
	}

	// sync.Once가 실패를 캐시하므로 두 번째 호출도 같은 에러
	_, err2 := c.Classify(context.Background(), bytes.NewReader(leafPNG(t)))
	if err2 == nil {
		t.Fatal("expected cached readiness error, got nil")
	}
}
