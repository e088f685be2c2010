/* JWT 토큰 생성 및 검증을 위한 유틸리티 함수들 */

package auth

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var jwtKey []byte

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// JWT 키 초기화, 런타임에 자동 호출
func init() {
	jwtKey = []byte(os.Getenv("JWT_SECRET_KEY"))
	if len(jwtKey) == 0 {
		jwtKey = []byte("dev_secret_change_me") // 기본 키 설정 (권장하지 않음)
		log.Println("Warning: JWT_SECRET_KEY environment variable is not set. Using default key.")
	}
}

// Claims 구조체 정의, JWT 페이로드에 계정 id 포함
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// JWT 토큰 생성, 만료는 서버 정책으로 24시간
func GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "TomatoDoctor-api",
			Subject:   "user_auth_token",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ResolveToken은 토큰에서 계정 id를 꺼냄
// 위조/만료/형식 오류는 전부 에러로 리턴, 호출자는 미인증으로 처리해야 함
func ResolveToken(tokenString string) (int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	// 만약을 위한 토큰 유효성 재검사
	if !token.Valid {
		return 0, ErrTokenInvalid
	}
	return claims.UserID, nil
}
