/**
* Name: 			client.go
* Description: 		추론 서버 연결 및 분류 요청 처리
* Workflow: 		모델 상태 확인(1회) → 텐서 전송 → 점수 수신 → argmax → 라벨
 */

package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Classifier는 디코딩된 이미지 스트림을 고정 라벨 집합의 하나로 매핑
// 테스트에서는 fake 구현으로 대체됨
type Classifier interface {
	Classify(ctx context.Context, r io.Reader) (string, error)
}

// TensorFlow Serving REST API와 통신하는 Classifier 구현
type HTTPClient struct {
	predictURL string
	token      string
	httpClient *http.Client

	// 모델 가용성 확인은 프로세스 생애 1회
	ready    sync.Once
	readyErr error
}

type predictRequest struct {
	Instances [][][][]float32 `json:"instances"`
}

type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
}

func NewHTTPClient(predictURL, token string) *HTTPClient {
	return &HTTPClient{
		predictURL: predictURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// 모델 메타데이터 조회로 추론 서버가 모델을 로드했는지 확인
// 서버가 모델을 아직 받지 않았으면 여기서 저장소 토큰으로 당겨옴
// 결과는 프로세스 전역으로 캐시되므로 요청 컨텍스트와 분리해서 실행,
// 첫 호출자의 취소/타임아웃이 이후 모든 요청을 실패시키면 안 됨
func (c *HTTPClient) ensureReady() error {
	c.ready.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		statusURL := strings.TrimSuffix(c.predictURL, ":predict")

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
		if err != nil {
			c.readyErr = err
			return
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.readyErr = errors.New("ensureReady(): inference server unreachable: " + err.Error())
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			c.readyErr = errors.New("ensureReady(): model not available, status: " + resp.Status)
			return
		}
		log.Println("ensureReady(): Model loaded successfully!")
	})
	return c.readyErr
}

func (c *HTTPClient) Classify(ctx context.Context, r io.Reader) (string, error) {
	if err := c.ensureReady(); err != nil {
		return "", err
	}

	tensor, err := Preprocess(r)
	if err != nil {
		return "", err
	}

	reqBody, err := json.Marshal(predictRequest{Instances: tensor})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.predictURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("Classify(): inference failed with status: " + resp.Status)
	}

	var predictResp predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&predictResp); err != nil {
		return "", err
	}
	if len(predictResp.Predictions) != 1 {
		return "", fmt.Errorf("Classify(): expected 1 prediction, got %d", len(predictResp.Predictions))
	}
	if len(predictResp.Predictions[0]) != len(ClassNames) {
		return "", fmt.Errorf("Classify(): expected %d scores, got %d", len(ClassNames), len(predictResp.Predictions[0]))
	}

	return ClassNames[Argmax(predictResp.Predictions[0])], nil
}
