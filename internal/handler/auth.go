package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/LSkevi/PieTracker/internal/identity"
	"github.com/LSkevi/PieTracker/internal/middleware"
	"github.com/LSkevi/PieTracker/internal/models"
	"github.com/LSkevi/PieTracker/internal/store"
	"github.com/LSkevi/PieTracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler owns signup/login/me.
type AuthHandler struct {
	Store    store.Store
	Resolver *identity.Resolver
}

func NewAuthHandler(st store.Store, r *identity.Resolver) *AuthHandler {
	return &AuthHandler{Store: st, Resolver: r}
}

type signupReq struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type loginReq struct {
	Username string `json:"username"` // username or email
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

func userResp(u models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"username":   u.Username,
		"name":       u.Name,
		"role":       u.Role,
		"is_active":  u.IsActive,
		"created_at": u.CreatedAt,
		"last_login": u.LastLogin,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.ToLower(strings.TrimSpace(req.Username))

	if err := util.ValidateEmail(email); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	if err := util.ValidateUsername(username); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	if err := util.ValidatePassword(req.Password); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	if _, exists := h.Store.FindUserByEmail(email); exists {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "email already registered")
		return
	}
	if _, exists := h.Store.FindUserByUsername(username); exists {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "username already taken")
		return
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not create account")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Role:         models.RoleUser,
		IsActive:     true,
	}
	if err := h.Store.PutUser(user); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not create account")
		return
	}

	token, err := h.Resolver.IssueToken(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not issue token")
		return
	}

	util.Success(c, gin.H{
		"token": token,
		"user":  userResp(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	// login works with either username or email
	var (
		user  models.User
		found bool
	)
	if req.Username != "" {
		user, found = h.Store.FindUserByUsername(req.Username)
		if !found {
			user, found = h.Store.FindUserByEmail(req.Username)
		}
	} else if req.Email != "" {
		user, found = h.Store.FindUserByEmail(req.Email)
	}

	if !found || !util.CheckPassword(req.Password, user.PasswordHash) {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid username or password")
		return
	}
	if !user.IsActive {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "account is deactivated")
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	user.LastLogin = &now
	if err := h.Store.PutUser(user); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not update account")
		return
	}

	token, err := h.Resolver.IssueToken(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not issue token")
		return
	}

	util.Success(c, gin.H{
		"token": token,
		"user":  userResp(user),
	})
}

// Me returns the authenticated account. The identity middleware never
// rejects, so the 401 happens here when the resolved id is anonymous or
// unknown.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" || userID == h.Resolver.AnonymousID() {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}
	user, ok := h.Store.User(userID)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}
	util.Success(c, gin.H{"user": userResp(user)})
}
