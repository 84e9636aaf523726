package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/campusware/registrar/internal/store"
	appErrors "github.com/campusware/registrar/pkg/errors"
)

type snapshotStorage interface {
	Snapshot(srcDir, name string) (string, error)
}

// BackupService snapshots the data directory into timestamped copies.
type BackupService struct {
	store   *store.Store
	storage snapshotStorage
	logger  *zap.Logger
}

// NewBackupService constructs a BackupService.
func NewBackupService(st *store.Store, storage snapshotStorage, logger *zap.Logger) *BackupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackupService{store: st, storage: storage, logger: logger}
}

// Run flushes all collections and copies every data file into a
// backup_<timestamp> directory, returning the snapshot path.
func (s *BackupService) Run() (string, error) {
	if err := s.store.SaveAll(); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to flush data before backup")
	}
	name := "backup_" + time.Now().Format("20060102_150405")
	path, err := s.storage.Snapshot(s.store.Dir(), name)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to snapshot data directory")
	}
	s.logger.Info("backup written", zap.String("path", path))
	return path, nil
}
