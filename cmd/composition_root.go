package cmd

import (
	"log/slog"

	"mailroom/internal/adapters/in/http"
	"mailroom/internal/adapters/out/postgres"
	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/ports"
	"mailroom/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters and use case handlers together.
type CompositionRoot struct {
	gormDB  *gorm.DB
	store   *postgres.GormStore
	storage ports.ObjectStorage
	ledger  *commands.CapacityLedger
	policy  commands.LifecyclePolicy
	logger  *slog.Logger

	reconcileSchedule string
}

// NewCompositionRoot builds the object graph from configuration and the
// already-opened collaborator connections.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	storage ports.ObjectStorage,
	logger *slog.Logger,
) CompositionRoot {
	store := postgres.NewGormStore(gormDB)

	policy := commands.DefaultLifecyclePolicy()
	policy.EnforceReleasePrecondition = configs.EnforceReleasePrecondition
	policy.RequireArchiveBeforePurge = configs.RequireArchiveBeforePurge

	return CompositionRoot{
		gormDB:            gormDB,
		store:             store,
		storage:           storage,
		ledger:            commands.NewCapacityLedger(store, configs.CapacityCacheTTL, logger),
		policy:            policy,
		logger:            logger,
		reconcileSchedule: configs.ReconcileSchedule,
	}
}

func (c *CompositionRoot) CreateCreateSiteCommandHandler() commands.CreateSiteCommandHandler {
	return commands.NewCreateSiteCommandHandler(c.store)
}

func (c *CompositionRoot) CreateCreateLockerCommandHandler() commands.CreateLockerCommandHandler {
	return commands.NewCreateLockerCommandHandler(c.store, c.ledger)
}

func (c *CompositionRoot) CreateUpdateLockerCommandHandler() commands.UpdateLockerCommandHandler {
	return commands.NewUpdateLockerCommandHandler(c.store)
}

func (c *CompositionRoot) CreateDeleteLockerCommandHandler() commands.DeleteLockerCommandHandler {
	return commands.NewDeleteLockerCommandHandler(c.store, c.ledger)
}

func (c *CompositionRoot) CreateAssignLockerCommandHandler() commands.AssignLockerCommandHandler {
	return commands.NewAssignLockerCommandHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateReceiveParcelCommandHandler() commands.ReceiveParcelCommandHandler {
	return commands.NewReceiveParcelCommandHandler(c.store)
}

func (c *CompositionRoot) CreateRequestParcelReleaseCommandHandler() commands.RequestParcelReleaseCommandHandler {
	return commands.NewRequestParcelReleaseCommandHandler(c.store)
}

func (c *CompositionRoot) CreateReleaseParcelCommandHandler() commands.ReleaseParcelCommandHandler {
	return commands.NewReleaseParcelCommandHandler(c.store, c.policy)
}

func (c *CompositionRoot) CreateUploadReleaseProofCommandHandler() commands.UploadReleaseProofCommandHandler {
	return commands.NewUploadReleaseProofCommandHandler(c.store, c.storage, c.policy, c.logger)
}

func (c *CompositionRoot) CreateDisposeParcelCommandHandler() commands.DisposeParcelCommandHandler {
	return commands.NewDisposeParcelCommandHandler(c.store)
}

func (c *CompositionRoot) CreateArchiveParcelCommandHandler() commands.ArchiveParcelCommandHandler {
	return commands.NewArchiveParcelCommandHandler(c.store)
}

func (c *CompositionRoot) CreateRestoreParcelCommandHandler() commands.RestoreParcelCommandHandler {
	return commands.NewRestoreParcelCommandHandler(c.store)
}

func (c *CompositionRoot) CreatePurgeParcelCommandHandler() commands.PurgeParcelCommandHandler {
	return commands.NewPurgeParcelCommandHandler(c.store, c.policy)
}

func (c *CompositionRoot) CreateReconcileCapacityCommandHandler() commands.ReconcileCapacityCommandHandler {
	return commands.NewReconcileCapacityCommandHandler(c.store, c.ledger, c.logger)
}

func (c *CompositionRoot) CreateGetSitesQueryHandler() queries.GetSitesQueryHandler {
	return queries.NewGetSitesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLockersQueryHandler() queries.GetLockersQueryHandler {
	return queries.NewGetLockersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveParcelsQueryHandler() queries.GetActiveParcelsQueryHandler {
	return queries.NewGetActiveParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetArchivedParcelsQueryHandler() queries.GetArchivedParcelsQueryHandler {
	return queries.NewGetArchivedParcelsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the HTTP
// surface.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.ServerHandlers{
		CreateSite:           c.CreateCreateSiteCommandHandler(),
		CreateLocker:         c.CreateCreateLockerCommandHandler(),
		UpdateLocker:         c.CreateUpdateLockerCommandHandler(),
		DeleteLocker:         c.CreateDeleteLockerCommandHandler(),
		AssignLocker:         c.CreateAssignLockerCommandHandler(),
		ReceiveParcel:        c.CreateReceiveParcelCommandHandler(),
		RequestParcelRelease: c.CreateRequestParcelReleaseCommandHandler(),
		ReleaseParcel:        c.CreateReleaseParcelCommandHandler(),
		UploadReleaseProof:   c.CreateUploadReleaseProofCommandHandler(),
		DisposeParcel:        c.CreateDisposeParcelCommandHandler(),
		ArchiveParcel:        c.CreateArchiveParcelCommandHandler(),
		RestoreParcel:        c.CreateRestoreParcelCommandHandler(),
		PurgeParcel:          c.CreatePurgeParcelCommandHandler(),
		GetSites:             c.CreateGetSitesQueryHandler(),
		GetLockers:           c.CreateGetLockersQueryHandler(),
		GetActiveParcels:     c.CreateGetActiveParcelsQueryHandler(),
		GetArchivedParcels:   c.CreateGetArchivedParcelsQueryHandler(),
	}, c.logger)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReconcileCapacityCommandHandler(),
		c.reconcileSchedule,
		c.logger,
	)
}
