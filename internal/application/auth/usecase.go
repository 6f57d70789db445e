package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/seiwa/repasse-api/internal/application/dto"
	"github.com/seiwa/repasse-api/internal/domain"
	"github.com/seiwa/repasse-api/internal/domain/entity"
	"github.com/seiwa/repasse-api/internal/domain/repository"
	"github.com/seiwa/repasse-api/pkg/jwt"
	"github.com/seiwa/repasse-api/pkg/password"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: cadastro e login.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// SignUp cadastra um usuário: hasheia a senha com bcrypt e persiste.
// Devolve ErrEmailAlreadyExists se o email já estiver em uso; o pre-check serve só
// para a mensagem amigável, a constraint única do banco é o sinal autoritativo.
func (uc *AuthUseCase) SignUp(in dto.SignUpRequest) (*dto.SignUpResponse, error) {
	existing, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return &dto.SignUpResponse{
		Message: "Usuário cadastrado com sucesso!",
		Email:   user.Email,
	}, nil
}

// SignIn verifica email/senha e emite o token de acesso.
// Email inexistente e senha incorreta produzem o mesmo ErrUnauthorized.
func (uc *AuthUseCase) SignIn(in dto.SignInRequest) (*dto.SignInResponse, error) {
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SignInResponse{
		Message:     "Login successful",
		AccessToken: token,
		TokenType:   "bearer",
		User: dto.UserData{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}
