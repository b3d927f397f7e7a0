package storage

import (
	"context"
	"errors"
)

// SnapshotStorage defines the interface for the off-site backup target:
// JSON snapshots of the aggregate state stored as objects.
type SnapshotStorage interface {
	// UploadSnapshot stores one snapshot blob under objectKey, overwriting
	// any previous object with that key.
	UploadSnapshot(ctx context.Context, objectKey string, data []byte) error

	// DownloadSnapshot retrieves a previously uploaded snapshot.
	DownloadSnapshot(ctx context.Context, objectKey string) ([]byte, error)

	// DeleteSnapshot removes a snapshot object.
	DeleteSnapshot(ctx context.Context, objectKey string) error
}

// ErrSnapshotNotFound is returned when the requested snapshot object does
// not exist.
var ErrSnapshotNotFound = errors.New("snapshot not found in storage")
