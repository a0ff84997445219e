package lockerrepo_test

import (
	"context"
	"testing"
	"time"

	"mailroom/internal/adapters/out/postgres/lockerrepo"
	"mailroom/internal/adapters/out/postgres/siterepo"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/locker"
	"mailroom/internal/core/domain/model/site"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LockerRepositoryIntegrationTestSuite provides integration tests for
// LockerRepository using PostgreSQL containers, including the interplay
// with the site locker counter.
type LockerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container        *postgres.PostgresContainer
	db               *gorm.DB
	lockerRepository *lockerrepo.GormLockerRepository
	siteRepository   *siterepo.GormSiteRepository
}

func (suite *LockerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&siterepo.SiteDTO{},
		&lockerrepo.LockerDTO{},
	))
}

func (suite *LockerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE lockers, sites").Error)

	suite.lockerRepository = lockerrepo.NewGormLockerRepository(suite.db)
	suite.siteRepository = siterepo.NewGormSiteRepository(suite.db)
}

func (suite *LockerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LockerRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrip() {
	ctx := context.Background()
	siteID := suite.createTestSite()

	l, err := locker.NewLocker(kernel.NewUUID(), siteID, "A-01", true)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.lockerRepository.Add(ctx, l))

	loaded, err := suite.lockerRepository.Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(l))
	suite.Equal("A-01", loaded.Code())
	suite.True(loaded.IsAvailable())
	suite.Equal(locker.Empty, loaded.Occupancy())
}

func (suite *LockerRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.lockerRepository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LockerRepositoryIntegrationTestSuite) TestUpdate_FlipsAvailabilityBack() {
	ctx := context.Background()
	siteID := suite.createTestSite()

	l, err := locker.NewLocker(kernel.NewUUID(), siteID, "A-01", true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.lockerRepository.Add(ctx, l))

	suite.Require().NoError(l.MarkAssigned())
	suite.Require().NoError(suite.lockerRepository.Update(ctx, l))

	loaded, err := suite.lockerRepository.Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsAvailable())

	loaded.MarkUnassigned()
	suite.Require().NoError(suite.lockerRepository.Update(ctx, loaded))

	reloaded, err := suite.lockerRepository.Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.True(reloaded.IsAvailable())
}

func (suite *LockerRepositoryIntegrationTestSuite) TestProvisionAndRemove_CounterFollowsLockers() {
	ctx := context.Background()
	siteID := suite.createTestSite()

	codes := []string{"A-01", "A-02", "A-03"}
	lockers := make(map[string]kernel.UUID, len(codes))
	for _, code := range codes {
		l, err := locker.NewLocker(kernel.NewUUID(), siteID, code, true)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.lockerRepository.Add(ctx, l))
		suite.Require().NoError(suite.siteRepository.IncrementLockerCount(ctx, siteID))
		lockers[code] = l.ID()
	}

	loadedSite, err := suite.siteRepository.Get(ctx, siteID)
	suite.Require().NoError(err)
	suite.Equal(3, loadedSite.TotalLockers())

	count, err := suite.lockerRepository.CountBySite(ctx, siteID)
	suite.Require().NoError(err)
	suite.Equal(3, count)

	// Remove the middle locker and write the decremented counter back.
	suite.Require().NoError(suite.lockerRepository.Delete(ctx, lockers["A-02"]))
	loadedSite.RecordLockerRemoved()
	suite.Require().NoError(suite.siteRepository.Update(ctx, loadedSite))

	reloadedSite, err := suite.siteRepository.Get(ctx, siteID)
	suite.Require().NoError(err)
	suite.Equal(2, reloadedSite.TotalLockers())

	remaining, err := suite.lockerRepository.GetAll(ctx, &siteID)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 2)
	suite.Equal("A-01", remaining[0].Code())
	suite.Equal("A-03", remaining[1].Code())
}

func (suite *LockerRepositoryIntegrationTestSuite) TestGetAll_FiltersBySite() {
	ctx := context.Background()
	firstSite := suite.createTestSite()
	secondSite := suite.createTestSite()

	first, err := locker.NewLocker(kernel.NewUUID(), firstSite, "A-01", true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.lockerRepository.Add(ctx, first))

	second, err := locker.NewLocker(kernel.NewUUID(), secondSite, "B-01", true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.lockerRepository.Add(ctx, second))

	all, err := suite.lockerRepository.GetAll(ctx, nil)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	filtered, err := suite.lockerRepository.GetAll(ctx, &firstSite)
	suite.Require().NoError(err)
	suite.Require().Len(filtered, 1)
	suite.Equal("A-01", filtered[0].Code())
}

func (suite *LockerRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	err := suite.lockerRepository.Delete(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LockerRepositoryIntegrationTestSuite) TestIncrementLockerCount_UnknownSite() {
	err := suite.siteRepository.IncrementLockerCount(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LockerRepositoryIntegrationTestSuite) createTestSite() kernel.UUID {
	s, err := site.NewSite(kernel.NewUUID(), "Main Building", "1 Mailroom Way")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.siteRepository.Add(context.Background(), s))
	return s.ID()
}

func TestLockerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LockerRepositoryIntegrationTestSuite))
}
