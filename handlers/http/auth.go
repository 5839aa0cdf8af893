package httpHandler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-server/repositories"
	"recipe-server/sessions"
	"recipe-server/usecases"
)

type AuthHandler struct {
	useCase  *usecases.AuthUseCase
	sessions *sessions.Store
}

func NewAuthHandler(useCase *usecases.AuthUseCase, store *sessions.Store) *AuthHandler {
	return &AuthHandler{
		useCase:  useCase,
		sessions: store,
	}
}

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid input"})
		return
	}

	user, err := h.useCase.Signup(req.Username, req.Password, req.ImageURL, req.Bio)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// CheckSession handles GET /check_session
func (h *AuthHandler) CheckSession(c *gin.Context) {
	userID := CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{})
		return
	}

	user, err := h.useCase.GetByID(userID)
	if err != nil {
		// A session pointing at a missing user is treated as no session.
		c.JSON(http.StatusUnauthorized, gin.H{})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{})
		return
	}

	user, err := h.useCase.Verify(req.Username, req.Password)
	if err != nil {
		log.Printf("login: credential check failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{})
		return
	}

	token, err := h.sessions.Start(user.ID)
	if err != nil {
		log.Printf("login: could not start session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	c.SetCookie(SessionCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, user)
}

// Logout handles DELETE /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if CurrentUserID(c) == "" {
		c.JSON(http.StatusUnauthorized, gin.H{})
		return
	}

	if token, err := c.Cookie(SessionCookie); err == nil {
		h.sessions.End(token)
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

// respondStoreError maps use-case and repository errors to the HTTP codes of
// the API contract: validation and duplicates are 422, everything else 500.
func respondStoreError(c *gin.Context, err error) {
	var vErr *usecases.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": vErr.Message})
	case errors.Is(err, repositories.ErrDuplicate):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid input"})
	default:
		log.Printf("store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
	}
}
