// Package http exposes the engine over an echo HTTP surface. Handlers
// translate request payloads into commands and queries and map the error
// taxonomy onto status codes; no business rules live here.
package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/locker"
	"mailroom/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createSiteHandler           commands.CreateSiteCommandHandler
	createLockerHandler         commands.CreateLockerCommandHandler
	updateLockerHandler         commands.UpdateLockerCommandHandler
	deleteLockerHandler         commands.DeleteLockerCommandHandler
	assignLockerHandler         commands.AssignLockerCommandHandler
	receiveParcelHandler        commands.ReceiveParcelCommandHandler
	requestParcelReleaseHandler commands.RequestParcelReleaseCommandHandler
	releaseParcelHandler        commands.ReleaseParcelCommandHandler
	uploadReleaseProofHandler   commands.UploadReleaseProofCommandHandler
	disposeParcelHandler        commands.DisposeParcelCommandHandler
	archiveParcelHandler        commands.ArchiveParcelCommandHandler
	restoreParcelHandler        commands.RestoreParcelCommandHandler
	purgeParcelHandler          commands.PurgeParcelCommandHandler

	getSitesHandler           queries.GetSitesQueryHandler
	getLockersHandler         queries.GetLockersQueryHandler
	getActiveParcelsHandler   queries.GetActiveParcelsQueryHandler
	getArchivedParcelsHandler queries.GetArchivedParcelsQueryHandler

	logger *slog.Logger
}

// ServerHandlers bundles the use case handlers wired into the HTTP surface.
type ServerHandlers struct {
	CreateSite           commands.CreateSiteCommandHandler
	CreateLocker         commands.CreateLockerCommandHandler
	UpdateLocker         commands.UpdateLockerCommandHandler
	DeleteLocker         commands.DeleteLockerCommandHandler
	AssignLocker         commands.AssignLockerCommandHandler
	ReceiveParcel        commands.ReceiveParcelCommandHandler
	RequestParcelRelease commands.RequestParcelReleaseCommandHandler
	ReleaseParcel        commands.ReleaseParcelCommandHandler
	UploadReleaseProof   commands.UploadReleaseProofCommandHandler
	DisposeParcel        commands.DisposeParcelCommandHandler
	ArchiveParcel        commands.ArchiveParcelCommandHandler
	RestoreParcel        commands.RestoreParcelCommandHandler
	PurgeParcel          commands.PurgeParcelCommandHandler

	GetSites           queries.GetSitesQueryHandler
	GetLockers         queries.GetLockersQueryHandler
	GetActiveParcels   queries.GetActiveParcelsQueryHandler
	GetArchivedParcels queries.GetArchivedParcelsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(handlers ServerHandlers, logger *slog.Logger) *Server {
	return &Server{
		createSiteHandler:           handlers.CreateSite,
		createLockerHandler:         handlers.CreateLocker,
		updateLockerHandler:         handlers.UpdateLocker,
		deleteLockerHandler:         handlers.DeleteLocker,
		assignLockerHandler:         handlers.AssignLocker,
		receiveParcelHandler:        handlers.ReceiveParcel,
		requestParcelReleaseHandler: handlers.RequestParcelRelease,
		releaseParcelHandler:        handlers.ReleaseParcel,
		uploadReleaseProofHandler:   handlers.UploadReleaseProof,
		disposeParcelHandler:        handlers.DisposeParcel,
		archiveParcelHandler:        handlers.ArchiveParcel,
		restoreParcelHandler:        handlers.RestoreParcel,
		purgeParcelHandler:          handlers.PurgeParcel,
		getSitesHandler:             handlers.GetSites,
		getLockersHandler:           handlers.GetLockers,
		getActiveParcelsHandler:     handlers.GetActiveParcels,
		getArchivedParcelsHandler:   handlers.GetArchivedParcels,
		logger:                      logger.With("component", "http"),
	}
}

// RegisterRoutes attaches all routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/sites", s.CreateSite)
	api.GET("/sites", s.GetSites)

	api.POST("/lockers", s.CreateLocker)
	api.GET("/lockers", s.GetLockers)
	api.PATCH("/lockers/:id", s.UpdateLocker)
	api.DELETE("/lockers/:id", s.DeleteLocker)

	api.POST("/allocations", s.AssignLocker)

	api.POST("/parcels", s.ReceiveParcel)
	api.GET("/parcels/active", s.GetActiveParcels)
	api.GET("/parcels/archived", s.GetArchivedParcels)
	api.POST("/parcels/:id/request-release", s.RequestParcelRelease)
	api.POST("/parcels/:id/release", s.ReleaseParcel)
	api.POST("/parcels/:id/dispose", s.DisposeParcel)
	api.POST("/parcels/:id/archive", s.ArchiveParcel)
	api.POST("/parcels/:id/restore", s.RestoreParcel)
	api.DELETE("/parcels/:id", s.PurgeParcel)

	e.GET("/health", s.Health)
}

// ErrorResponse is the error payload returned by every route.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateSiteRequest is the payload for POST /api/v1/sites.
type CreateSiteRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CreateSite handles POST /api/v1/sites.
func (s *Server) CreateSite(ctx echo.Context) error {
	var req CreateSiteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateSiteCommand(req.Name, req.Address)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.createSiteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.SiteID().String()})
}

// GetSites handles GET /api/v1/sites.
func (s *Server) GetSites(ctx echo.Context) error {
	sites, err := s.getSitesHandler.Handle(ctx.Request().Context(), queries.NewGetSitesQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]SiteResponse, len(sites))
	for i, site := range sites {
		response[i] = SiteResponse{
			ID:           site.ID.String(),
			Name:         site.Name,
			Address:      site.Address,
			TotalLockers: site.TotalLockers,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SiteResponse is the site payload returned by GET /api/v1/sites.
type SiteResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	TotalLockers int    `json:"totalLockers"`
}

// CreateLockerRequest is the payload for POST /api/v1/lockers.
type CreateLockerRequest struct {
	SiteID      string `json:"siteId"`
	Code        string `json:"code"`
	IsAvailable bool   `json:"isAvailable"`
}

// CreateLocker handles POST /api/v1/lockers.
func (s *Server) CreateLocker(ctx echo.Context) error {
	var req CreateLockerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	siteID, err := kernel.UUIDFromString(req.SiteID)
	if err != nil {
		return badRequest(ctx, "Invalid site id")
	}

	cmd, err := commands.NewCreateLockerCommand(siteID, req.Code, req.IsAvailable)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.createLockerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.LockerID().String()})
}

// GetLockers handles GET /api/v1/lockers with an optional site_id filter.
func (s *Server) GetLockers(ctx echo.Context) error {
	var siteID *kernel.UUID
	if raw := ctx.QueryParam("site_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid site id")
		}
		siteID = &id
	}

	query, err := queries.NewGetLockersQuery(siteID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	lockers, err := s.getLockersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]LockerResponse, len(lockers))
	for i, l := range lockers {
		response[i] = LockerResponse{
			ID:          l.ID.String(),
			SiteID:      l.SiteID.String(),
			Code:        l.Code,
			IsAvailable: l.IsAvailable,
			Occupancy:   l.Occupancy.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// LockerResponse is the locker payload returned by GET /api/v1/lockers.
type LockerResponse struct {
	ID          string `json:"id"`
	SiteID      string `json:"siteId"`
	Code        string `json:"code"`
	IsAvailable bool   `json:"isAvailable"`
	Occupancy   string `json:"occupancy"`
}

// UpdateLockerRequest is the payload for PATCH /api/v1/lockers/:id. Absent
// fields are left unchanged.
type UpdateLockerRequest struct {
	Code        *string `json:"code"`
	IsAvailable *bool   `json:"isAvailable"`
	Occupancy   *string `json:"occupancy"`
}

// UpdateLocker handles PATCH /api/v1/lockers/:id.
func (s *Server) UpdateLocker(ctx echo.Context) error {
	lockerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid locker id")
	}

	var req UpdateLockerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var occupancy *locker.OccupancyStatus
	if req.Occupancy != nil {
		status, occErr := locker.OccupancyStatusFromString(*req.Occupancy)
		if occErr != nil {
			return badRequest(ctx, "Invalid occupancy status")
		}
		occupancy = &status
	}

	cmd, err := commands.NewUpdateLockerCommand(lockerID, req.Code, req.IsAvailable, occupancy)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.updateLockerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteLocker handles DELETE /api/v1/lockers/:id.
func (s *Server) DeleteLocker(ctx echo.Context) error {
	lockerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid locker id")
	}

	cmd, err := commands.NewDeleteLockerCommand(lockerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.deleteLockerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignLockerRequest is the payload for POST /api/v1/allocations.
type AssignLockerRequest struct {
	RegistrationID string `json:"registrationId"`
	LockerID       string `json:"lockerId"`
}

// AssignLocker handles POST /api/v1/allocations.
func (s *Server) AssignLocker(ctx echo.Context) error {
	var req AssignLockerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	registrationID, err := kernel.UUIDFromString(req.RegistrationID)
	if err != nil {
		return badRequest(ctx, "Invalid registration id")
	}

	lockerID, err := kernel.UUIDFromString(req.LockerID)
	if err != nil {
		return badRequest(ctx, "Invalid locker id")
	}

	cmd, err := commands.NewAssignLockerCommand(registrationID, lockerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.assignLockerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.AllocationID().String()})
}

// ReceiveParcelRequest is the payload for POST /api/v1/parcels.
type ReceiveParcelRequest struct {
	RegistrationID string `json:"registrationId"`
	TrackingNumber string `json:"trackingNumber"`
}

// ReceiveParcel handles POST /api/v1/parcels.
func (s *Server) ReceiveParcel(ctx echo.Context) error {
	var req ReceiveParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	registrationID, err := kernel.UUIDFromString(req.RegistrationID)
	if err != nil {
		return badRequest(ctx, "Invalid registration id")
	}

	cmd, err := commands.NewReceiveParcelCommand(registrationID, req.TrackingNumber)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.receiveParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.ParcelID().String()})
}

// RequestParcelRelease handles POST /api/v1/parcels/:id/request-release.
func (s *Server) RequestParcelRelease(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	cmd, err := commands.NewRequestParcelReleaseCommand(parcelID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.requestParcelReleaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseParcelRequest is the JSON payload for POST /api/v1/parcels/:id/release
// when the proof is already hosted elsewhere.
type ReleaseParcelRequest struct {
	ProofURL string `json:"proofUrl"`
}

// ReleaseParcel handles POST /api/v1/parcels/:id/release. A multipart body
// with a "proof" file runs the evidence pipeline (upload then release); a
// JSON body with proofUrl records an externally hosted proof directly.
func (s *Server) ReleaseParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	contentType := ctx.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return s.releaseWithUploadedProof(ctx, parcelID)
	}

	var req ReleaseParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReleaseParcelCommand(parcelID, req.ProofURL)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.releaseParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) releaseWithUploadedProof(ctx echo.Context, parcelID kernel.UUID) error {
	fileHeader, err := ctx.FormFile("proof")
	if err != nil {
		return badRequest(ctx, "Missing proof file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(ctx, "Unreadable proof file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return badRequest(ctx, "Unreadable proof file")
	}

	cmd, err := commands.NewUploadReleaseProofCommand(
		parcelID,
		content,
		fileHeader.Header.Get(echo.HeaderContentType),
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.uploadReleaseProofHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DisposeParcel handles POST /api/v1/parcels/:id/dispose.
func (s *Server) DisposeParcel(ctx echo.Context) error {
	return s.handleParcelTransition(ctx, func(parcelID kernel.UUID) error {
		cmd, err := commands.NewDisposeParcelCommand(parcelID)
		if err != nil {
			return err
		}
		return s.disposeParcelHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ArchiveParcel handles POST /api/v1/parcels/:id/archive.
func (s *Server) ArchiveParcel(ctx echo.Context) error {
	return s.handleParcelTransition(ctx, func(parcelID kernel.UUID) error {
		cmd, err := commands.NewArchiveParcelCommand(parcelID)
		if err != nil {
			return err
		}
		return s.archiveParcelHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// RestoreParcel handles POST /api/v1/parcels/:id/restore.
func (s *Server) RestoreParcel(ctx echo.Context) error {
	return s.handleParcelTransition(ctx, func(parcelID kernel.UUID) error {
		cmd, err := commands.NewRestoreParcelCommand(parcelID)
		if err != nil {
			return err
		}
		return s.restoreParcelHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// PurgeParcel handles DELETE /api/v1/parcels/:id.
func (s *Server) PurgeParcel(ctx echo.Context) error {
	return s.handleParcelTransition(ctx, func(parcelID kernel.UUID) error {
		cmd, err := commands.NewPurgeParcelCommand(parcelID)
		if err != nil {
			return err
		}
		return s.purgeParcelHandler.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) handleParcelTransition(ctx echo.Context, run func(kernel.UUID) error) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	if err := run(parcelID); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveParcels handles GET /api/v1/parcels/active with an optional
// registration_id filter.
func (s *Server) GetActiveParcels(ctx echo.Context) error {
	registrationID, err := optionalRegistrationFilter(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid registration id")
	}

	query, err := queries.NewGetActiveParcelsQuery(registrationID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	parcels, err := s.getActiveParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]ParcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = ParcelResponse{
			ID:              p.ID.String(),
			RegistrationID:  p.RegistrationID.String(),
			TrackingNumber:  p.TrackingNumber,
			Status:          p.Status.String(),
			ReleaseProofURL: p.ReleaseProofURL,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetArchivedParcels handles GET /api/v1/parcels/archived with an optional
// registration_id filter.
func (s *Server) GetArchivedParcels(ctx echo.Context) error {
	registrationID, err := optionalRegistrationFilter(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid registration id")
	}

	query, err := queries.NewGetArchivedParcelsQuery(registrationID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	parcels, err := s.getArchivedParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]ArchivedParcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = ArchivedParcelResponse{
			ParcelResponse: ParcelResponse{
				ID:              p.ID.String(),
				RegistrationID:  p.RegistrationID.String(),
				TrackingNumber:  p.TrackingNumber,
				Status:          p.Status.String(),
				ReleaseProofURL: p.ReleaseProofURL,
			},
			ArchivedAt: p.ArchivedAt.UTC().Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ParcelResponse is the package payload returned by the listing routes.
type ParcelResponse struct {
	ID              string  `json:"id"`
	RegistrationID  string  `json:"registrationId"`
	TrackingNumber  string  `json:"trackingNumber"`
	Status          string  `json:"status"`
	ReleaseProofURL *string `json:"releaseProofUrl"`
}

// ArchivedParcelResponse extends the package payload with the archival
// timestamp.
type ArchivedParcelResponse struct {
	ParcelResponse
	ArchivedAt string `json:"archivedAt"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func optionalRegistrationFilter(ctx echo.Context) (*kernel.UUID, error) {
	raw := ctx.QueryParam("registration_id")
	if raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps the error taxonomy onto HTTP status codes. Transient
// collaborator failures and consistency faults are reported with generic
// messages; the detail goes to the log only.
func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrResourceConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrUnavailable):
		s.logger.ErrorContext(ctx.Request().Context(), "collaborator unavailable", "error", err)
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Service temporarily unavailable",
		})
	case errors.Is(err, errs.ErrConsistencyFault):
		s.logger.ErrorContext(ctx.Request().Context(), "consistency fault", "error", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "unhandled error", "error", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
