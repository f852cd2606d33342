package service

import (
	"fmt"

	"github.com/FelipeK57/comandapro-api/internal/model"
)

// UserService manages staff accounts inside a restaurant
type UserService struct {
	users       UserStore
	restaurants RestaurantStore
	hasher      PasswordHasher
}

// NewUserService wires a UserService with its collaborators
func NewUserService(users UserStore, restaurants RestaurantStore, hasher PasswordHasher) *UserService {
	return &UserService{users: users, restaurants: restaurants, hasher: hasher}
}

// CreateUserInput carries the fields needed to create a staff account
type CreateUserInput struct {
	RestaurantID uint
	FullName     string
	Email        string
	Password     string
	Role         model.UserRole
	Active       bool
}

// CreateUser creates a staff account in an existing restaurant
func (s *UserService) CreateUser(in CreateUserInput) (*model.User, error) {
	if isBlank(in.FullName) {
		return nil, &ValidationError{Message: "El nombre completo es obligatorio"}
	}
	if isBlank(in.Email) {
		return nil, &ValidationError{Message: "El email es obligatorio"}
	}
	if isBlank(in.Password) {
		return nil, &ValidationError{Message: "La contraseña es obligatoria"}
	}
	if !in.Role.IsValid() {
		return nil, &ValidationError{Message: fmt.Sprintf("Rol no válido: %s", in.Role)}
	}

	restaurant, err := s.restaurants.FindByID(in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, &NotFoundError{Message: fmt.Sprintf("Restaurante no encontrado con ID: %d", in.RestaurantID)}
	}

	taken, err := s.users.ExistsByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &ConflictError{Message: fmt.Sprintf("Ya existe un usuario con el email: %s", in.Email)}
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		RestaurantID: in.RestaurantID,
		FullName:     in.FullName,
		Email:        in.Email,
		Password:     digest,
		Role:         in.Role,
		Active:       in.Active,
	}
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID returns a user or a NotFoundError
func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Message: "Usuario no encontrado"}
	}
	return user, nil
}

// GetUserByEmail returns a user or a NotFoundError
func (s *UserService) GetUserByEmail(email string) (*model.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Message: "Usuario no encontrado"}
	}
	return user, nil
}

// GetAllUsers returns every user across restaurants
func (s *UserService) GetAllUsers() ([]model.User, error) {
	return s.users.FindAll()
}

// GetUsersByRestaurant lists users of a restaurant
func (s *UserService) GetUsersByRestaurant(restaurantID uint, activeOnly bool) ([]model.User, error) {
	return s.users.FindByRestaurant(restaurantID, activeOnly)
}

// GetUsersByRole lists users with a given role, optionally scoped to a
// restaurant (restaurantID 0 means all). The role string is validated first.
func (s *UserService) GetUsersByRole(role string, restaurantID uint) ([]model.User, error) {
	r := model.UserRole(role)
	if !r.IsValid() {
		return nil, &ValidationError{Message: fmt.Sprintf("Rol no válido: %s", role)}
	}
	return s.users.FindByRole(r, restaurantID)
}

// UpdateUserInput carries optional updates; nil fields are left unchanged
type UpdateUserInput struct {
	FullName *string
	Email    *string
	Password *string
	Role     *model.UserRole
	Active   *bool
}

// UpdateUser applies a partial update to a user
func (s *UserService) UpdateUser(id uint, in UpdateUserInput) (*model.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Message: "Usuario no encontrado"}
	}

	if in.Email != nil && *in.Email != user.Email {
		taken, err := s.users.ExistsByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &ConflictError{Message: fmt.Sprintf("Ya existe un usuario con el email: %s", *in.Email)}
		}
		user.Email = *in.Email
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Password != nil {
		digest, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = digest
	}
	if in.Role != nil {
		if !in.Role.IsValid() {
			return nil, &ValidationError{Message: fmt.Sprintf("Rol no válido: %s", *in.Role)}
		}
		user.Role = *in.Role
	}
	if in.Active != nil {
		user.Active = *in.Active
	}

	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleUserStatus activates or deactivates a user
func (s *UserService) ToggleUserStatus(id uint, active bool) (*model.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Message: "Usuario no encontrado"}
	}
	user.Active = active
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user
func (s *UserService) DeleteUser(id uint) error {
	deleted, err := s.users.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return &NotFoundError{Message: "Usuario no encontrado"}
	}
	return nil
}

// ExistsByEmail reports whether any user holds the email
func (s *UserService) ExistsByEmail(email string) (bool, error) {
	return s.users.ExistsByEmail(email)
}

// CountUsersByRestaurant counts users of a restaurant
func (s *UserService) CountUsersByRestaurant(restaurantID uint, activeOnly bool) (int64, error) {
	return s.users.CountByRestaurant(restaurantID, activeOnly)
}
