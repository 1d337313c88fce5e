package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/goserg/trucoserver/auth/storage"
	"github.com/goserg/trucoserver/auth/users"
)

const (
	rootName   = "root"
	CookieName = "token"
)

var (
	ErrForbidden      = errors.New("access denied")
	ErrNotAuthorized  = errors.New("unauthorized")
	ErrBadCredentials = errors.New("usuario o contraseña incorrectos")
)

type rule struct {
	Rule
	path *regexp.Regexp
}

type Service struct {
	storage storage.AuthStorage
	cfg     Config
	ttl     time.Duration
	rules   []rule
}

func New(ctx context.Context, cfg Config, st storage.AuthStorage) (*Service, error) {
	ttl, err := time.ParseDuration(cfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("auth expiration: %w", err)
	}
	s := Service{
		cfg:     cfg,
		storage: st,
		ttl:     ttl,
	}
	for _, r := range cfg.Rules {
		re, err := regexp.Compile(r.Path)
		if err != nil {
			return nil, fmt.Errorf("auth rule %q: %w", r.Name, err)
		}
		s.rules = append(s.rules, rule{Rule: r, path: re})
	}

	_, err = s.storage.GetUserSecret(ctx, users.User{Name: rootName})
	if err != nil {
		if !errors.Is(err, storage.ErrUserNotFound) {
			return nil, err
		}
		err = s.createUser(ctx, rootName, cfg.RootPassword, []string{users.RoleAdmin})
		if err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (s *Service) Login(ctx context.Context, name string, password string) (users.User, error) {
	userSecret, err := s.storage.GetUserSecret(ctx, users.User{Name: name})
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return users.User{}, ErrBadCredentials
		}
		return users.User{}, err
	}
	secret := generateSecret(password, s.cfg.PasswordPepper, userSecret.Salt)
	user, err := s.storage.SignIn(ctx, name, secret.PasswordHash)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return users.User{}, ErrBadCredentials
		}
		return users.User{}, err
	}
	return user, nil
}

func (s *Service) GenerateJWTCookie(userID uuid.UUID, host string) (*fiber.Cookie, error) {
	expirationTime := time.Now().Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  time.Now().Unix(),
		Subject:   userID.String(),
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Token))
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Path:     "/",
		Domain:   host,
		Expires:  expirationTime,
		HTTPOnly: true,
	}, nil
}

// Auth resolves the user behind the cookie and checks the first rule matching
// the path and method. An empty cookie is a guest, allowed only by "*" rules.
func (s *Service) Auth(ctx context.Context, cookie string, method string, url string) (users.User, error) {
	user, err := s.getUserFromToken(ctx, cookie)
	if err != nil {
		return users.User{}, ErrNotAuthorized
	}

	for _, r := range s.rules {
		if !r.path.MatchString(url) {
			continue
		}
		if !slices.Contains(r.Method, "*") && !slices.Contains(r.Method, method) {
			continue
		}
		for _, role := range r.Allow {
			if role == "*" || user.HasRole(role) {
				return user, nil
			}
		}
		if user.Guest() {
			return users.User{}, ErrNotAuthorized
		}
		return users.User{}, ErrForbidden
	}
	return users.User{}, ErrForbidden
}

// User resolves the cookie without checking any rule. An empty cookie is a guest.
func (s *Service) User(ctx context.Context, cookie string) (users.User, error) {
	return s.getUserFromToken(ctx, cookie)
}

func (s *Service) getUserFromToken(ctx context.Context, cookie string) (users.User, error) {
	if cookie == "" {
		return users.User{}, nil
	}
	token, err := jwt.ParseWithClaims(cookie, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.cfg.Token), nil
	})
	if err != nil {
		ve := &jwt.ValidationError{}
		if errors.As(err, &ve) && ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return users.User{}, errors.New("token expired")
		}
		return users.User{}, err
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid {
		return users.User{}, errors.New("bad request")
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return users.User{}, err
	}
	return s.storage.GetUser(ctx, id)
}

func (s *Service) SignUp(ctx context.Context, name string, password string) error {
	return s.createUser(ctx, name, password, []string{users.RoleUser})
}

func (s *Service) createUser(ctx context.Context, name string, password string, roles []string) error {
	salt, err := randomSalt()
	if err != nil {
		return err
	}
	secret := generateSecret(password, s.cfg.PasswordPepper, salt)
	return s.storage.CreateUser(ctx, users.User{
		ID:           uuid.New(),
		Name:         name,
		Roles:        roles,
		RegisteredAt: time.Now(),
	}, secret)
}

func randomSalt() ([]byte, error) {
	salt := make([]byte, 8)
	_, err := rand.Read(salt)
	if err != nil {
		return nil, err
	}
	return salt, nil
}

func generateSecret(password string, pepper string, salt []byte) users.Secret {
	sha := sha256.New()
	sha.Write([]byte(pepper + password))
	sha.Write(salt)
	return users.Secret{
		PasswordHash: sha.Sum(nil),
		Salt:         salt,
	}
}
