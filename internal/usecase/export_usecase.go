package usecase

import (
	"context"
	"time"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/export"
	"health-tracker/internal/store"

	"github.com/sirupsen/logrus"
)

// exportDelay is the artificial pause before an export runs, kept from the
// product's original behavior.
const exportDelay = 2 * time.Second

type ExportUsecase interface {
	Export(ctx context.Context, req *dto.ExportRequest) (*export.Artifact, error)
}

type exportUsecase struct {
	store *store.Store
	log   *logrus.Logger
	delay time.Duration
	now   func() time.Time
}

func NewExportUsecase(st *store.Store, log *logrus.Logger) ExportUsecase {
	return &exportUsecase{
		store: st,
		log:   log,
		delay: exportDelay,
		now:   time.Now,
	}
}

// Export waits out the export delay, then builds the artifact from a fresh
// snapshot. The wait is cancellable: if the caller goes away nothing is
// built and nothing is written. The build itself is synchronous and pure.
func (u *exportUsecase) Export(ctx context.Context, req *dto.ExportRequest) (*export.Artifact, error) {
	sel := export.Selection{
		Profile:      req.IncludeProfile,
		Records:      req.IncludeRecords,
		Medications:  req.IncludeMedications,
		Appointments: req.IncludeAppointments,
	}

	// Reject an empty selection before the delay; the caller should have
	// blocked this case already.
	if sel == (export.Selection{}) {
		return nil, export.ErrNothingSelected
	}

	if u.delay > 0 {
		timer := time.NewTimer(u.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	profile, _ := u.store.CurrentUser()
	snap := export.Snapshot{
		Profile:      profile,
		Records:      u.store.Records(),
		Medications:  u.store.Medications(),
		Appointments: u.store.Appointments(),
	}

	artifact, err := export.Build(snap, sel, export.Format(req.Format), u.now())
	if err != nil {
		u.log.Errorf("Failed to build %s export: %+v", req.Format, err)
		return nil, err
	}

	u.log.Infof("Export %s built (%d bytes)", artifact.Filename, len(artifact.Content))
	return artifact, nil
}
