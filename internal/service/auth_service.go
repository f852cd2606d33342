package service

import (
	"strings"
	"time"

	"github.com/FelipeK57/comandapro-api/internal/model"
	"github.com/FelipeK57/comandapro-api/pkg/config"
	"github.com/FelipeK57/comandapro-api/pkg/jwtutil"
)

// AuthService issues credentials: it creates a restaurant plus its
// administrator on registration and mints session tokens on login.
type AuthService struct {
	users         UserStore
	restaurants   RestaurantStore
	hasher        PasswordHasher
	tx            Transactor
	sessionTTL    time.Duration
	rememberMeTTL time.Duration
}

// NewAuthService wires an AuthService with its collaborators
func NewAuthService(users UserStore, restaurants RestaurantStore, hasher PasswordHasher, tx Transactor, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{
		users:         users,
		restaurants:   restaurants,
		hasher:        hasher,
		tx:            tx,
		sessionTTL:    jwtCfg.SessionTTL,
		rememberMeTTL: jwtCfg.RememberMeTTL,
	}
}

// Register creates a new restaurant together with its administrator account.
// Both rows are written inside one transaction so a failure leaves nothing
// behind. Returns the user-facing success message.
func (s *AuthService) Register(fullName, restaurantName, email, password string) (string, error) {
	if isBlank(fullName) || isBlank(restaurantName) || isBlank(email) || isBlank(password) {
		return "", &ValidationError{Message: "Todos los campos son obligatorios"}
	}

	existing, err := s.restaurants.FindByName(restaurantName)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", &ConflictError{Message: "El nombre del restaurante ya está en uso"}
	}

	taken, err := s.users.ExistsByEmail(email)
	if err != nil {
		return "", err
	}
	if taken {
		return "", &ConflictError{Message: "El correo electrónico ya está en uso"}
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	err = s.tx.Transact(func(users UserStore, restaurants RestaurantStore) error {
		restaurant := &model.Restaurant{
			Name:   restaurantName,
			Active: true,
		}
		if err := restaurants.Save(restaurant); err != nil {
			return err
		}

		admin := &model.User{
			FullName:     fullName,
			Email:        email,
			Password:     digest,
			Role:         model.RoleAdmin,
			Active:       true,
			RestaurantID: restaurant.ID,
		}
		return users.Save(admin)
	})
	if err != nil {
		return "", err
	}

	return "Registro completado exitosamente", nil
}

// Login verifies credentials and returns a signed session token bound to the
// user's restaurant. Unknown email and wrong password produce the same error
// so the response never reveals which check failed.
func (s *AuthService) Login(email, password string, rememberMe bool) (string, error) {
	if isBlank(email) || isBlank(password) {
		return "", &ValidationError{Message: "Correo y contraseña son obligatorios"}
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", &AuthError{Message: "Credenciales inválidas"}
	}

	if !s.hasher.Matches(password, user.Password) {
		return "", &AuthError{Message: "Credenciales inválidas"}
	}

	ttl := s.sessionTTL
	if rememberMe {
		ttl = s.rememberMeTTL
	}

	return jwtutil.GenerateToken(user.ID, user.FullName, user.RestaurantID, string(user.Role), ttl)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
