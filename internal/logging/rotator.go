package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	logFilePerm = 0o600
	logDirPerm  = 0o750
)

// RotatorOptions controls when log files roll over and how many are kept.
type RotatorOptions struct {
	BaseName   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultRotatorOptions keeps a week of 10MB logs.
func DefaultRotatorOptions() RotatorOptions {
	return RotatorOptions{
		BaseName:   "edgedock.log",
		MaxSizeMB:  10,
		MaxBackups: 5,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// Rotator is an io.Writer that appends to a log file and renames it aside
// once it grows past the size limit.
type Rotator struct {
	mu      sync.Mutex
	dir     string
	opts    RotatorOptions
	maxSize int64
	maxAge  time.Duration
	file    *os.File
	size    int64
	now     func() time.Time
}

// NewRotator opens (or creates) dir/opts.BaseName for appending.
func NewRotator(dir string, opts RotatorOptions) (*Rotator, error) {
	if opts.BaseName == "" {
		opts.BaseName = DefaultRotatorOptions().BaseName
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = DefaultRotatorOptions().MaxSizeMB
	}
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	r := &Rotator{
		dir:     dir,
		opts:    opts,
		maxSize: int64(opts.MaxSizeMB) * 1024 * 1024,
		maxAge:  time.Duration(opts.MaxAgeDays) * 24 * time.Hour,
		now:     time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *Rotator) Path() string {
	return filepath.Join(r.dir, r.opts.BaseName)
}

func (r *Rotator) open() error {
	if info, err := os.Stat(r.Path()); err == nil {
		r.size = info.Size()
	} else {
		r.size = 0
	}

	file, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = file
	return nil
}

func (r *Rotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *Rotator) rotate() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close current log file: %v\n", err)
	}
	r.file = nil

	backup := filepath.Join(r.dir, r.opts.BaseName+"."+r.now().Format("2006-01-02-15-04-05.000"))
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.opts.Compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to compress log file %s: %v\n", backup, err)
		} else if err := os.Remove(backup); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove uncompressed log file %s: %v\n", backup, err)
		}
	}

	r.prune()
	return r.open()
}

// prune removes backups past the age limit, then the oldest beyond MaxBackups.
func (r *Rotator) prune() {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	now := r.now()
	var backups []os.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), r.opts.BaseName+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			_ = os.Remove(filepath.Join(r.dir, entry.Name()))
			continue
		}
		backups = append(backups, info)
	}

	if r.opts.MaxBackups <= 0 || len(backups) <= r.opts.MaxBackups {
		return
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].ModTime().Before(backups[j].ModTime())
	})
	for _, info := range backups[:len(backups)-r.opts.MaxBackups] {
		_ = os.Remove(filepath.Join(r.dir, info.Name()))
	}
}

// Close closes the active file.
func (r *Rotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func gzipFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		_ = gz.Close()
		_ = out.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
