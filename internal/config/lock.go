package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spaceworld/console/internal/paths"
)

const (
	lockTimeout  = 5 * time.Second
	lockStaleAge = 30 * time.Second
	lockRetry    = 50 * time.Millisecond
)

// ErrLockTimeout reports that another console kept ~/.swrc locked.
var ErrLockTimeout = errors.New("config: lock timeout")

// WithLock runs fn while holding ~/.swrc.lock, so two consoles saving
// settings at once do not lose each other's writes.
func WithLock(fn func() error) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	lock, err := acquireLock(configPath+".lock", lockTimeout)
	if err != nil {
		return err
	}
	defer lock.release()

	return fn()
}

// fileLock is an exclusively created lock file holding the owner's pid.
type fileLock struct {
	path string
	file *os.File
}

func acquireLock(path string, timeout time.Duration) (*fileLock, error) {
	deadline := time.Now().Add(timeout)

	for {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return &fileLock{path: path, file: f}, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("config: lock %s: %w", path, err)
		}

		if breakStaleLock(path) {
			continue
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s held by pid %s", ErrLockTimeout, path, lockHolder(path))
		}
		time.Sleep(lockRetry)
	}
}

// breakStaleLock removes a lock left behind by a console that died while
// saving.
func breakStaleLock(path string) bool {
	info, err := os.Stat(path)
	if err != nil || time.Since(info.ModTime()) <= lockStaleAge {
		return false
	}
	return os.Remove(path) == nil
}

func lockHolder(path string) string {
	data, err := os.ReadFile(path)
	if pid := strings.TrimSpace(string(data)); err == nil && pid != "" {
		return pid
	}
	return "unknown"
}

func (l *fileLock) release() {
	_ = l.file.Close()
	_ = os.Remove(l.path)
}
