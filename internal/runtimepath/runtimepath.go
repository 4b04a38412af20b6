// Package runtimepath locates the per-user runtime files a desktop host
// creates: the shared IPC socket and a log file per host kind.
package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	socketName = "retrodesk.sock"
	appName    = "retrodesk"
)

// Paths are the runtime files of one host.
type Paths struct {
	Dir    string
	Socket string
	// Log is empty when no host kind was given.
	Log string
}

// ForHost resolves the runtime files for host ("daemon", "tui"). Every host
// shares one socket, so at most one of them serves at a time.
func ForHost(host string) (Paths, error) {
	dir, err := Dir()
	if err != nil {
		return Paths{}, err
	}
	p := Paths{Dir: dir, Socket: filepath.Join(dir, socketName)}
	if host != "" {
		p.Log = filepath.Join(dir, appName+"-"+host+".log")
	}
	return p, nil
}

// SocketPath returns the desktop IPC socket path.
func SocketPath() (string, error) {
	p, err := ForHost("")
	if err != nil {
		return "", err
	}
	return p.Socket, nil
}

// Dir returns the first usable runtime directory: $XDG_RUNTIME_DIR, then
// /run/user/<uid>, then a private directory under the system temp dir.
func Dir() (string, error) {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir, nil
	}

	uid := strconv.Itoa(os.Getuid())
	if info, err := os.Stat(filepath.Join("/run/user", uid)); err == nil && info.IsDir() {
		return filepath.Join("/run/user", uid), nil
	}

	dir := filepath.Join(os.TempDir(), appName+"-runtime-"+uid)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create runtime dir %s: %w", dir, err)
	}
	return dir, nil
}
