package app

import (
	"fmt"
	"sync"

	authHTTP "github.com/allisson/notes/internal/auth/http"
	authService "github.com/allisson/notes/internal/auth/service"
	authUseCase "github.com/allisson/notes/internal/auth/usecase"
	"github.com/allisson/notes/internal/database"
	identityRepository "github.com/allisson/notes/internal/identity/repository"
	identityService "github.com/allisson/notes/internal/identity/service"
	identityUseCase "github.com/allisson/notes/internal/identity/usecase"
)

// identityComponents groups the lazily built credential and token components.
type identityComponents struct {
	identityRepository identityUseCase.IdentityRepository
	passwordService    identityService.PasswordService
	credentialUseCase  identityUseCase.CredentialUseCase
	tokenService       authService.TokenService
	authUseCase        authUseCase.AuthUseCase
	authHandler        *authHTTP.AuthHandler

	identityRepositoryInit sync.Once
	passwordServiceInit    sync.Once
	credentialUseCaseInit  sync.Once
	tokenServiceInit       sync.Once
	authUseCaseInit        sync.Once
	authHandlerInit        sync.Once
}

// IdentityRepository returns the identity repository based on database driver.
func (c *Container) IdentityRepository() (identityUseCase.IdentityRepository, error) {
	err := c.lazy(&c.identityRepositoryInit, "identityRepository", func() (err error) {
		c.identityRepository, err = c.initIdentityRepository()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.identityRepository, nil
}

// PasswordService returns the argon2id password service.
func (c *Container) PasswordService() (identityService.PasswordService, error) {
	err := c.lazy(&c.passwordServiceInit, "passwordService", func() (err error) {
		c.passwordService, err = identityService.NewPasswordService()
		if err != nil {
			return fmt.Errorf("failed to create password service: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.passwordService, nil
}

// CredentialUseCase returns the credential store use case.
func (c *Container) CredentialUseCase() (identityUseCase.CredentialUseCase, error) {
	err := c.lazy(&c.credentialUseCaseInit, "credentialUseCase", func() error {
		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for credential use case: %w", err)
		}
		repo, err := c.IdentityRepository()
		if err != nil {
			return fmt.Errorf("failed to get identity repository for credential use case: %w", err)
		}
		passwordService, err := c.PasswordService()
		if err != nil {
			return err
		}
		c.credentialUseCase = identityUseCase.NewCredentialUseCase(txManager, repo, passwordService)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.credentialUseCase, nil
}

// TokenService returns the token service. The signing secret is resolved once,
// decrypting it through KMS when a key URI is configured.
func (c *Container) TokenService() (authService.TokenService, error) {
	err := c.lazy(&c.tokenServiceInit, "tokenService", func() error {
		secret, err := authService.ResolveSigningSecret(c.ctx, c.config.SecretKey, c.config.KMSKeyURI)
		if err != nil {
			return fmt.Errorf("failed to resolve signing secret: %w", err)
		}
		c.tokenService, err = authService.NewTokenService(
			secret,
			c.config.AlgorithmHash,
			c.config.AuthTokenExpiration,
		)
		if err != nil {
			return fmt.Errorf("failed to create token service: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.tokenService, nil
}

// AuthUseCase returns the auth use case, wrapped with business metrics.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	err := c.lazy(&c.authUseCaseInit, "authUseCase", func() error {
		credentials, err := c.CredentialUseCase()
		if err != nil {
			return err
		}
		tokenService, err := c.TokenService()
		if err != nil {
			return err
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return err
		}
		useCase := authUseCase.NewAuthUseCase(credentials, tokenService, c.config.AuthRequireStoredToken)
		c.authUseCase = authUseCase.NewAuthUseCaseWithMetrics(useCase, businessMetrics)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.authUseCase, nil
}

// AuthHandler returns the HTTP handler for signup, login and logout.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	err := c.lazy(&c.authHandlerInit, "authHandler", func() error {
		useCase, err := c.AuthUseCase()
		if err != nil {
			return err
		}
		c.authHandler = authHTTP.NewAuthHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.authHandler, nil
}

func (c *Container) initIdentityRepository() (identityUseCase.IdentityRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for identity repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return identityRepository.NewMySQLIdentityRepository(db), nil
	case database.DriverPostgres:
		return identityRepository.NewPostgreSQLIdentityRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}
