/**
* Name: 			preprocess.go
* Description: 		업로드 이미지를 모델 입력 텐서로 변환
* Workflow: 		디코딩 → 256x256 리사이즈 → [0,1] 정규화 → 1-배치 텐서
 */

package classifier

import (
	"errors"
	"fmt"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const inputSize = 256

var ErrDecodeFailure = errors.New("cannot decode image")

// Preprocess는 이미지를 [1][256][256][3] float32 텐서로 변환
// 픽셀값은 255로 나눠 [0,1] 범위
func Preprocess(r io.Reader) ([][][][]float32, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, inputSize, inputSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	sample := make([][][]float32, inputSize)
	for y := 0; y < inputSize; y++ {
		row := make([][]float32, inputSize)
		for x := 0; x < inputSize; x++ {
			px := dst.RGBAAt(x, y)
			row[x] = []float32{
				float32(px.R) / 255.0,
				float32(px.G) / 255.0,
				float32(px.B) / 255.0,
			}
		}
		sample[y] = row
	}

	return [][][][]float32{sample}, nil
}

// Argmax는 최고 점수 인덱스를 리턴, 동점이면 앞 인덱스 우선
func Argmax(scores []float64) int {
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return best
}
