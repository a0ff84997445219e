package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"mailroom/internal/adapters/out/postgres/parcelrepo"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ParcelRepositoryIntegrationTestSuite provides integration tests for
// ParcelRepository using PostgreSQL containers, with emphasis on archived
// row visibility.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container        *postgres.PostgresContainer
	db               *gorm.DB
	parcelRepository *parcelrepo.GormParcelRepository
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)

	suite.parcelRepository = parcelrepo.NewGormParcelRepository(suite.db)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrip() {
	ctx := context.Background()
	p := suite.createTestParcel()

	loaded, err := suite.parcelRepository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(p))
	suite.Equal(parcel.Arrived, loaded.Status())
	suite.Nil(loaded.ReleaseProofURL())
	suite.False(loaded.IsArchived())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.parcelRepository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycleAndProof() {
	ctx := context.Background()
	p := suite.createTestParcel()

	suite.Require().NoError(p.RequestRelease())
	suite.Require().NoError(p.Release("https://storage.example/releases/proof.png", true))
	suite.Require().NoError(suite.parcelRepository.Update(ctx, p))

	loaded, err := suite.parcelRepository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Released, loaded.Status())
	suite.Require().NotNil(loaded.ReleaseProofURL())
	suite.Equal("https://storage.example/releases/proof.png", *loaded.ReleaseProofURL())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_ArchivedRowStaysReachable() {
	ctx := context.Background()
	p := suite.createTestParcel()

	p.Archive(time.Now())
	suite.Require().NoError(suite.parcelRepository.Update(ctx, p))

	loaded, err := suite.parcelRepository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsArchived())
	suite.Require().NotNil(loaded.DeletedAt())

	// Restoration clears the timestamp through the same Update path.
	loaded.Restore()
	suite.Require().NoError(suite.parcelRepository.Update(ctx, loaded))

	restored, err := suite.parcelRepository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.False(restored.IsArchived())
	suite.Nil(restored.DeletedAt())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestHardDelete_RemovesArchivedRow() {
	ctx := context.Background()
	p := suite.createTestParcel()

	p.Archive(time.Now())
	suite.Require().NoError(suite.parcelRepository.Update(ctx, p))

	suite.Require().NoError(suite.parcelRepository.HardDelete(ctx, p.ID()))

	_, err := suite.parcelRepository.Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.parcelRepository.HardDelete(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) createTestParcel() *parcel.Parcel {
	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), "1Z999AA10123456784")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcelRepository.Add(context.Background(), p))
	return p
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
