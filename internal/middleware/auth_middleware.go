package middleware

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"primegate_backend/internal/model"
	"primegate_backend/internal/storage"
)

// Claims carried by the identity provider's token.
type Claims struct {
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfileImageURL string `json:"profile_image_url"`
	jwt.RegisteredClaims
}

var (
	store     storage.Storage
	jwtSecret []byte
)

func Init(s storage.Storage, secret string) {
	store = s
	jwtSecret = []byte(secret)
}

func parseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// AuthMiddleware verifies the bearer token, syncs the user record from
// its claims and refreshes the session row. The upsert runs on every
// authenticated request, so the stored profile always mirrors the
// provider.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		claims, err := parseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil || claims.Subject == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		if err := store.UpsertUser(&model.User{
			ID:              claims.Subject,
			Email:           strPtr(claims.Email),
			FirstName:       strPtr(claims.FirstName),
			LastName:        strPtr(claims.LastName),
			ProfileImageURL: strPtr(claims.ProfileImageURL),
		}); err != nil {
			log.Printf("Could not sync user %s: %v", claims.Subject, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not sync user",
			})
		}

		user, err := store.GetUser(claims.Subject)
		if err != nil || user == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not load user",
			})
		}

		refreshSession(claims)

		c.Locals("user", user)
		c.Locals("sid", sessionID(claims))
		return c.Next()
	}
}

// RequireAdmin gates the admin surface. Must run after AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*model.User)
		if !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}
		return c.Next()
	}
}

func sessionID(claims *Claims) string {
	if claims.ID != "" {
		return claims.ID
	}
	return claims.Subject
}

func refreshSession(claims *Claims) {
	payload, err := json.Marshal(claims)
	if err != nil {
		log.Printf("Could not serialize session payload: %v", err)
		return
	}

	expire := time.Now().Add(7 * 24 * time.Hour)
	if claims.ExpiresAt != nil {
		expire = claims.ExpiresAt.Time
	}

	if err := store.PutSession(&model.Session{
		SID:    sessionID(claims),
		Sess:   payload,
		Expire: expire,
	}); err != nil {
		log.Printf("Could not refresh session %s: %v", sessionID(claims), err)
	}
}
