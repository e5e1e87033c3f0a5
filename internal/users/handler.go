package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"playlist-backend/internal/shared/auth"
	"playlist-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the public registration and login routes, in
// both slash forms so neither needs a redirect.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.register)
	rg.POST("/register/", h.register)
	rg.POST("/login", h.login)
	rg.POST("/login/", h.login)
}

type registerBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var body registerBody
	_ = c.ShouldBindJSON(&body)

	if body.Username == "" || body.Password == "" {
		respond.Error(c, http.StatusBadRequest, "Username and password are required.", "")
		return
	}

	if _, err := h.Svc.Register(c.Request.Context(), body.Username, body.Email, body.Password); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			respond.Error(c, http.StatusBadRequest, "Username already exists.", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Registration failed.", "")
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{"message": "User registered successfully."})
}

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var body loginBody
	_ = c.ShouldBindJSON(&body)

	if body.Username == "" || body.Password == "" {
		respond.Error(c, http.StatusBadRequest, "Username and password are required.", "")
		return
	}

	user, err := h.Svc.Authenticate(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respond.Error(c, http.StatusUnauthorized, "Invalid username or password.", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Login failed.", "")
		return
	}

	token, err := auth.SignJWT(auth.Claims{Sub: user.Username, Email: user.Email})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Login failed.", "")
		return
	}

	respond.OK(c, gin.H{"token": token})
}
