// handlers/auth.go
package handlers

import (
	"fmt"
	"os"
	"time"

	"collegit/database"
	"collegit/middleware"
	"collegit/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GuestLoginRequest struct {
	GuestName string `json:"guest_name,omitempty"`
}

type UpgradeGuestRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token,omitempty"`
	User    UserInfo `json:"user,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type UserInfo struct {
	ID                 uint      `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	IsGuest            bool      `json:"is_guest"`
	OnboardingComplete bool      `json:"onboarding_complete"`
	Level              int       `json:"level"`
	XP                 int       `json:"xp"`
	CreatedAt          time.Time `json:"created_at"`
}

// GuestLogin creates a new guest session
func GuestLogin(c *fiber.Ctx) error {
	var req GuestLoginRequest

	// Don't fail on empty body
	_ = c.BodyParser(&req)

	db := database.GetDB()
	if db == nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Database not available",
		})
	}

	guestName := req.GuestName
	if guestName == "" {
		guestName = fmt.Sprintf("Guest_%s", uuid.New().String()[:8])
	}

	guestEmail := fmt.Sprintf("guest_%s@collegit.local", uuid.New().String()[:8])

	user := models.User{
		Username:  guestName,
		Email:     &guestEmail,
		Password:  "",
		IsGuest:   true,
		CreatedAt: time.Now(),
	}

	if err := createUserWithState(db, &user); err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to create guest account",
		})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to generate token",
		})
	}

	return c.JSON(AuthResponse{
		Success: true,
		Token:   token,
		User:    userInfo(&user),
	})
}

// Login authenticates a registered user
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Username and password required",
		})
	}

	db := database.GetDB()
	if db == nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Database not available",
		})
	}

	var user models.User
	if err := db.Preload("Gamification").
		Where("username = ? AND is_guest = ?", req.Username, false).
		First(&user).Error; err != nil {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid credentials",
		})
	}

	db.Model(&user).Update("last_login", time.Now())

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to generate token",
		})
	}

	return c.JSON(AuthResponse{
		Success: true,
		Token:   token,
		User:    userInfo(&user),
	})
}

// Register creates a new user account
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Username and password required",
		})
	}

	if len(req.Password) < 6 {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Password must be at least 6 characters",
		})
	}

	db := database.GetDB()
	if db == nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Database not available",
		})
	}

	var existingUser models.User
	if err := db.Where("username = ?", req.Username).First(&existingUser).Error; err == nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Username already taken",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to hash password",
		})
	}

	user := models.User{
		Username:  req.Username,
		Email:     &req.Email,
		Password:  string(hashedPassword),
		IsGuest:   false,
		CreatedAt: time.Now(),
	}

	if err := createUserWithState(db, &user); err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to create account",
		})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to generate token",
		})
	}

	return c.JSON(AuthResponse{
		Success: true,
		Token:   token,
		User:    userInfo(&user),
	})
}

// UpgradeGuest converts a guest account to a registered account
func UpgradeGuest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Error:   "Unauthorized",
		})
	}

	var req UpgradeGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Username and password required",
		})
	}

	db := database.GetDB()
	if db == nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Database not available",
		})
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(AuthResponse{
			Success: false,
			Error:   "User not found",
		})
	}

	if !user.IsGuest {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Account is already registered",
		})
	}

	var existingUser models.User
	if err := db.Where("username = ? AND id != ?", req.Username, userID).First(&existingUser).Error; err == nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Username already taken",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to hash password",
		})
	}

	if err := db.Model(&user).Updates(map[string]interface{}{
		"username":   req.Username,
		"email":      req.Email,
		"password":   string(hashedPassword),
		"is_guest":   false,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to upgrade account",
		})
	}

	db.Preload("Gamification").First(&user, userID)

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to generate token",
		})
	}

	return c.JSON(AuthResponse{
		Success: true,
		Token:   token,
		User:    userInfo(&user),
	})
}

// Helper functions

// createUserWithState creates the account together with its zeroed
// gamification row.
func createUserWithState(db *gorm.DB, user *models.User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		state := models.GamificationState{UserID: user.ID, Level: 1}
		if err := tx.Create(&state).Error; err != nil {
			return err
		}
		user.Gamification = &state
		return nil
	})
}

func userInfo(user *models.User) UserInfo {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}

	info := UserInfo{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              email,
		IsGuest:            user.IsGuest,
		OnboardingComplete: user.OnboardingComplete,
		Level:              1,
		CreatedAt:          user.CreatedAt,
	}
	if user.Gamification != nil {
		info.Level = user.Gamification.Level
		info.XP = user.Gamification.XP
	}
	return info
}

func generateToken(user models.User) (string, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "collegit-secret-change-in-production"
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_guest": user.IsGuest,
		"exp":      time.Now().Add(time.Hour * 720).Unix(), // 30 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
