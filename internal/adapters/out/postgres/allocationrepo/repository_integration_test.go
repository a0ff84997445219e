package allocationrepo_test

import (
	"context"
	"testing"
	"time"

	"mailroom/internal/adapters/out/postgres/allocationrepo"
	"mailroom/internal/core/domain/model/allocation"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/locker"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AllocationRepositoryIntegrationTestSuite provides integration tests for
// AllocationRepository using PostgreSQL containers.
type AllocationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container            *postgres.PostgresContainer
	db                   *gorm.DB
	allocationRepository *allocationrepo.GormAllocationRepository
}

func (suite *AllocationRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&allocationrepo.AllocationDTO{}))
}

func (suite *AllocationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE allocations").Error)

	suite.allocationRepository = allocationrepo.NewGormAllocationRepository(suite.db)
}

func (suite *AllocationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AllocationRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrip() {
	ctx := context.Background()

	a, err := allocation.NewAllocation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.allocationRepository.Add(ctx, a))

	loaded, err := suite.allocationRepository.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(a))
	suite.True(loaded.RegistrationID().IsEqual(a.RegistrationID()))
	suite.True(loaded.LockerID().IsEqual(a.LockerID()))
	suite.Equal(locker.Empty, loaded.Occupancy())
	suite.WithinDuration(a.AssignedAt(), loaded.AssignedAt(), time.Second)
}

func (suite *AllocationRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.allocationRepository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AllocationRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()

	a, err := allocation.NewAllocation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.allocationRepository.Add(ctx, a))

	suite.Require().NoError(suite.allocationRepository.Delete(ctx, a.ID()))

	_, err = suite.allocationRepository.Get(ctx, a.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.allocationRepository.Delete(ctx, a.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestAllocationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationRepositoryIntegrationTestSuite))
}
