package commands

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"time"

	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"
)

// UploadReleaseProofCommandHandler runs the release evidence pipeline:
// store the proof object first, then release the package with the durable
// reference. The ordering guarantees a Released package always points at
// evidence that exists.
//
// The two steps are not compensated. If the release fails after the upload
// the object stays behind as an orphan, which costs storage but never
// corrupts package state; the orphan is logged so operators can clean up.
type UploadReleaseProofCommandHandler struct {
	store   ParcelStore
	storage ports.ObjectStorage
	policy  LifecyclePolicy
	logger  *slog.Logger
}

// NewUploadReleaseProofCommandHandler creates a handler for the evidence
// pipeline.
func NewUploadReleaseProofCommandHandler(
	store ParcelStore,
	storage ports.ObjectStorage,
	policy LifecyclePolicy,
	logger *slog.Logger,
) UploadReleaseProofCommandHandler {
	return UploadReleaseProofCommandHandler{
		store:   store,
		storage: storage,
		policy:  policy,
		logger:  logger.With("component", "release_proof"),
	}
}

// Handle fetches the package, stores the evidence, and applies the release.
func (h UploadReleaseProofCommandHandler) Handle(ctx context.Context, cmd UploadReleaseProofCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	parcels := h.store.ParcelRepository()

	p, err := parcels.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	path := proofObjectPath(p.RegistrationID().String(), p.TrackingNumber(), cmd.ContentType())

	proofURL, err := h.storage.Put(ctx, path, cmd.Content(), cmd.ContentType())
	if err != nil {
		// Nothing was mutated; the caller may retry.
		return err
	}

	if err = p.Release(proofURL, h.policy.EnforceReleasePrecondition); err != nil {
		h.logOrphan(ctx, cmd, path, err)
		return errs.NewResourceConflictErrorWithCause("parcelId", cmd.ParcelID().String(), err)
	}

	if err = parcels.Update(ctx, p); err != nil {
		h.logOrphan(ctx, cmd, path, err)
		return err
	}

	return nil
}

func (h UploadReleaseProofCommandHandler) logOrphan(ctx context.Context, cmd UploadReleaseProofCommand, path string, cause error) {
	h.logger.WarnContext(ctx, "release failed after evidence upload, stored object is orphaned",
		"parcel_id", cmd.ParcelID().String(),
		"object_path", path,
		"error", cause,
	)
}

// proofObjectPath builds the storage key for a proof object. The unix
// timestamp keeps repeated releases of the same package from overwriting
// earlier evidence.
func proofObjectPath(registrationID, trackingNumber, contentType string) string {
	ext := ".bin"
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}

	return fmt.Sprintf("releases/%s/%s-%d%s", registrationID, trackingNumber, time.Now().Unix(), ext)
}
