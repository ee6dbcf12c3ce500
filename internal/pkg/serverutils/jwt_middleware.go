package serverutils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"agent-chat-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-Token"
	localsSession = "session"
	localsUserId  = "user_id"
	RoleAdmin     = "admin"
)

// ParseToken verifies an HS256 token and returns its claims.
func ParseToken(tokenStr, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Join(entity.ErrUnauthenticated, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, entity.ErrUnauthenticated
	}
	return claims, nil
}

// IssueToken signs claims for ttl.
func IssueToken(secret, subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func userIdFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"user_id", "sub"} {
		if raw, ok := claims[key].(string); ok && raw != "" {
			return uuid.Parse(raw)
		}
	}
	return uuid.Nil, entity.ErrUnauthenticated
}

// ResolveSession turns a bearer token or an anonymous session token into a
// SessionContext. The bearer token wins when both are present.
func ResolveSession(bearer, sessionToken, secret string) (entity.SessionContext, error) {
	if bearer != "" {
		claims, err := ParseToken(bearer, secret)
		if err != nil {
			return entity.SessionContext{}, err
		}
		userId, err := userIdFromClaims(claims)
		if err != nil {
			return entity.SessionContext{}, errors.Join(entity.ErrUnauthenticated, err)
		}
		return entity.Authenticated(userId), nil
	}

	sessionToken = strings.TrimSpace(sessionToken)
	if sessionToken == "" {
		return entity.SessionContext{}, entity.ErrUnauthenticated
	}
	return entity.Anonymous(sessionToken), nil
}

func bearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ""
}

// SessionMiddleware accepts a signed-in user or an anonymous session.
func SessionMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		session, err := ResolveSession(bearerToken(ctx), ctx.Get(SessionHeader), secret)
		if err != nil {
			return err
		}

		ctx.Locals(localsSession, session)
		if userId, ok := session.UserId(); ok {
			ctx.Locals(localsUserId, userId.String())
		}
		return ctx.Next()
	}
}

// GetSession reads the SessionContext stored by SessionMiddleware.
func GetSession(ctx *fiber.Ctx) entity.SessionContext {
	session, _ := ctx.Locals(localsSession).(entity.SessionContext)
	return session
}

// AdminMiddleware only lets through tokens carrying role=admin.
func AdminMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := bearerToken(ctx)
		if tokenStr == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}

		claims, err := ParseToken(tokenStr, secret)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}
		if role, _ := claims["role"].(string); role != RoleAdmin {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(fiber.StatusForbidden, "Admins only"))
		}

		ctx.Locals("admin_email", claims["sub"])
		return ctx.Next()
	}
}
