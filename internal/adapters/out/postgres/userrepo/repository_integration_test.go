package userrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"farmaya/internal/adapters/out/postgres/userrepo"
	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/pkg/errs"
)

// UserRepositoryIntegrationTestSuite exercises account persistence and the
// session token lifecycle, including expiry at lookup time.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}, &userrepo.SessionDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users, sessions").Error)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAddAndGetByEmail_RoundTrips() {
	ctx := context.Background()
	repository := userrepo.NewGormUserRepository(suite.db)

	user := suite.newUser()
	suite.Require().NoError(repository.Add(ctx, user))

	persisted, err := repository.GetByEmail(ctx, "ana@example.com")
	suite.Require().NoError(err)
	suite.True(persisted.ID().IsEqual(user.ID()))
	suite.Equal(account.Cliente, persisted.Role())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetBySession_ResolvesFreshToken() {
	ctx := context.Background()
	repository := userrepo.NewGormUserRepositoryWithSessionTTL(suite.db, time.Hour)

	user := suite.newUser()
	suite.Require().NoError(repository.Add(ctx, user))
	suite.Require().NoError(repository.AddSession(ctx, "fresh-token", user.ID()))

	resolved, err := repository.GetBySession(ctx, "fresh-token")
	suite.Require().NoError(err)
	suite.True(resolved.ID().IsEqual(user.ID()))
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetBySession_ExpiredToken_ReturnsNotFound() {
	ctx := context.Background()
	repository := userrepo.NewGormUserRepositoryWithSessionTTL(suite.db, time.Hour)

	user := suite.newUser()
	suite.Require().NoError(repository.Add(ctx, user))

	// The row outlives its TTL until the cleanup job runs; the lookup must
	// already treat it as unknown.
	stale := userrepo.SessionDTO{
		Token:     "stale-token",
		UserID:    user.ID().Bytes(),
		CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
	}
	suite.Require().NoError(suite.db.Create(&stale).Error)

	_, err := repository.GetBySession(ctx, "stale-token")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// Without a TTL the same row still resolves; 0 means no expiry filter.
	unlimited := userrepo.NewGormUserRepository(suite.db)
	resolved, err := unlimited.GetBySession(ctx, "stale-token")
	suite.Require().NoError(err)
	suite.True(resolved.ID().IsEqual(user.ID()))
}

func (suite *UserRepositoryIntegrationTestSuite) newUser() *account.User {
	user, err := account.NewUser(
		kernel.NewUUID(), "ana@example.com", "Ana", "", "",
		account.Cliente, "hashed-password",
	)
	suite.Require().NoError(err)
	return user
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
