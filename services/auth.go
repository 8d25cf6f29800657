package services

import (
	"context"
	"errors"
	"os"
	"time"

	"VisionCare360/config/cache"
	"VisionCare360/config/db"
	"VisionCare360/models"
	"VisionCare360/role"
	"VisionCare360/util"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionKeyPrefix = "session:"
	sessionTTL       = 24 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New(util.INVALID_EMAIL_OR_PASSWORD)
	ErrAuthFailed         = errors.New(util.AUTHENTICATION_FAILED)
	ErrNoSession          = errors.New(util.UNAUTHORIZED)
)

/*
* Check the master credential from env first
* On mismatch look the email up in the admins collection and compare
* A store failure is reported as a distinct generic error, not as a
* credential mismatch
 */
func Login(ctx context.Context, email, password string) (string, models.Session, error) {
	if email == "" || password == "" {
		return "", models.Session{}, ErrInvalidCredentials
	}

	if matchesMaster(email, password) {
		return createSession(ctx, email, role.Master)
	}

	coll := db.OpenCollections(util.AdminCollection)
	var admin models.Admin
	err := db.FindOne(ctx, coll, bson.M{"email": email}, &admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", models.Session{}, ErrInvalidCredentials
		}
		log.Error().Err(err).Msg("admin lookup failed")
		return "", models.Session{}, ErrAuthFailed
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return "", models.Session{}, ErrInvalidCredentials
	}

	adminRole := admin.Role
	if adminRole == "" {
		adminRole = role.Admin
	}
	return createSession(ctx, email, adminRole)
}

func matchesMaster(email, password string) bool {
	masterEmail := os.Getenv("MASTER_EMAIL")
	masterHash := os.Getenv("MASTER_PASSWORD_HASH")
	if masterEmail == "" || masterHash == "" {
		return false
	}
	if email != masterEmail {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(masterHash), []byte(password)) == nil
}

/*
* Issue an opaque token and store the typed session in Redis with a TTL
* Expiry is enforced by Redis, there is nothing to verify in the token
 */
func createSession(ctx context.Context, email, sessionRole string) (string, models.Session, error) {
	session := models.Session{
		Email:     email,
		Role:      sessionRole,
		CreatedAt: time.Now().UTC(),
	}
	token := uuid.NewString()
	if err := cache.SetJSON(ctx, sessionKeyPrefix+token, session, sessionTTL); err != nil {
		log.Error().Err(err).Msg("failed to store session")
		return "", models.Session{}, ErrAuthFailed
	}
	return token, session, nil
}

/*
* Decode the stored blob into the typed session shape
* Anything absent, expired or malformed reads as no session
 */
func GetSession(ctx context.Context, token string) (models.Session, error) {
	if token == "" {
		return models.Session{}, ErrNoSession
	}
	var session models.Session
	if err := cache.GetJSON(ctx, sessionKeyPrefix+token, &session); err != nil {
		return models.Session{}, ErrNoSession
	}
	if !session.Valid() {
		return models.Session{}, ErrNoSession
	}
	return session, nil
}

// Logout deletes the session key. Deleting a token that is already gone
// is not an error.
func Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return cache.Delete(ctx, sessionKeyPrefix+token)
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
