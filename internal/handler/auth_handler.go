/**
* Name: 			auth_handler.go
* Description: 		Gin 프레임워크의 HTTP 핸들러
* Workflow: 		회원가입, 로그인
 */

package handler

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strings"

	"TomatoDoctor_AIProject/internal/auth"
	"TomatoDoctor_AIProject/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message" example:"Account created successfully!"`
}

type LoginSuccessResponse struct {
	Success bool   `json:"success"`
	UserID  int    `json:"user_id" example:"1"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
}

// Signup godoc
// @Summary      회원가입 (Signup)
// @Description  새로운 사용자 계정을 생성합니다.
// @Tags         User
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username formData string true "사용자명"
// @Param        password formData string true "비밀번호"
// @Success      200 {object} handler.SignupResponse
// @Failure      400 {object} handler.SignupResponse
// @Failure      500 {object} handler.SignupResponse
// @Router       /signup [post]
func Signup(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	// " "으로 입력되는 케이스 방지
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		c.JSON(http.StatusBadRequest, SignupResponse{Success: false, Message: "Username and Password cannot be empty"})
		return
	}

	// password 해싱, 평문은 저장하지 않음
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, SignupResponse{Success: false, Message: "Failed to create account"})
		return
	}

	if err := storage.CreateUser(username, string(hashedPassword)); err != nil {
		if errors.Is(err, storage.ErrUsernameExists) {
			c.JSON(http.StatusBadRequest, SignupResponse{Success: false, Message: "Username already exists"})
		} else {
			// 원본 에러는 서버 로그로만, 클라이언트에는 불투명 메시지
			log.Printf("[ERROR] Signup: failed to create user (database error): %v", err)
			c.JSON(http.StatusInternalServerError, SignupResponse{Success: false, Message: "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusOK, SignupResponse{Success: true, Message: "Account created successfully!"})
}

// Login godoc
// @Summary      로그인 (Login)
// @Description  사용자명과 비밀번호로 로그인하고 JWT 토큰을 발급받습니다.
// @Tags         User
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username formData string true "사용자명"
// @Param        password formData string true "비밀번호"
// @Success      200 {object} handler.LoginSuccessResponse
// @Failure      401 {object} handler.ErrorResponse "인증 실패 (자격 증명 오류)"
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /login [post]
func Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	user, err := storage.GetUserByUsername(username)
	if err != nil {
		if err == sql.ErrNoRows {
			// 계정 없음도 자격 증명 오류와 같은 응답 (계정 존재 노출 방지)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Printf("[ERROR] Login: GetUserByUsername failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	tokenString, err := auth.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginSuccessResponse{Success: true, UserID: user.ID, Token: tokenString})
}
