package filesystem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DiskStats holds the usage statistics of the filesystem backing a path.
type DiskStats struct {
	TotalSize int64
	FreeSpace int64
}

// GetDiskUsage returns the [DiskStats] of the filesystem backing the given
// path.
func (f *Handler) GetDiskUsage(path string) (DiskStats, error) {
	var stat unix.Statfs_t

	if err := f.unixOps.Statfs(path, &stat); err != nil {
		return DiskStats{}, fmt.Errorf("(fs-usage) failed to statfs: %w", err)
	}

	stats := DiskStats{
		TotalSize: int64(stat.Blocks) * int64(stat.Bsize),
		FreeSpace: int64(stat.Bavail) * int64(stat.Bsize),
	}

	if stats.TotalSize <= 0 || stats.FreeSpace < 0 {
		return DiskStats{}, fmt.Errorf("(fs-usage) %w (TotalSize: %d, FreeSpace: %d)",
			ErrInvalidDiskStats, stats.TotalSize, stats.FreeSpace)
	}

	return stats, nil
}
