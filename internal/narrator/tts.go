/**
* Name: 			tts.go
* Description: 		TTS 서버 연결 및 안내 문구 음성 변환
* Workflow: 		TTS 클라이언트 생성, 텍스트 전송, MP3 오디오 수신
 */

package narrator

import (
	"context"
	"errors"
	"log"
	"os"

	"google.golang.org/api/option"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

// Narrator는 안내 문구를 오디오 바이트로 변환
// 테스트에서는 fake 구현으로 대체됨
type Narrator interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Google Cloud TTS 기반 Narrator 구현
type GoogleTTS struct {
	client *texttospeech.Client
	voice  string
}

// TTS 클라이언트 초기화
func NewGoogleTTS(ctx context.Context, voice string) (*GoogleTTS, error) {
	credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	client, err := texttospeech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, errors.New("NewGoogleTTS(): failed to create TTS client: " + err.Error())
	}
	return &GoogleTTS{
		client: client,
		voice:  voice,
	}, nil
}

// 텍스트를 MP3 오디오로 변환
func (t *GoogleTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: "en-US",
			Name:         t.voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := t.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		log.Printf("Synthesize(): SynthesizeSpeech failed: %v", err)
		return nil, err
	}

	log.Printf("Synthesize(): SynthesizeSpeech succeeded, audio size: %d bytes", len(resp.AudioContent))
	return resp.AudioContent, nil
}

// TTS 클라이언트 종료
func (t *GoogleTTS) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}
