package prover

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Workspace is a circuits tree a job may write to. Isolated workspaces are private
// scratch copies removed on Release; shared ones point at the source tree.
type Workspace struct {
	dir     string
	scratch string
	logger  *zap.Logger
}

// Path resolves a circuit project path relative to the circuits root.
func (w *Workspace) Path(rel string) string {
	return filepath.Join(w.dir, rel)
}

// Isolated reports whether the workspace is a private copy.
func (w *Workspace) Isolated() bool {
	return w.scratch != ""
}

// Release removes an isolated copy. It is a no-op for shared workspaces.
func (w *Workspace) Release() error {
	if !w.Isolated() {
		return nil
	}
	if err := os.RemoveAll(w.scratch); err != nil {
		return fmt.Errorf("release workspace %s: %w", w.scratch, err)
	}
	w.logger.Debug("workspace released", zap.String("dir", w.scratch))
	return nil
}

// Workspaces hands out workspaces over one circuits root.
type Workspaces struct {
	root    string
	scratch string
	logger  *zap.Logger
}

// NewWorkspaces serves copies of root. Copies live under scratch, or the system temp dir when empty.
func NewWorkspaces(logger *zap.Logger, root, scratch string) *Workspaces {
	return &Workspaces{
		root:    root,
		scratch: scratch,
		logger:  logger.Named("workspace"),
	}
}

// Root is the source circuits tree.
func (w *Workspaces) Root() string {
	return w.root
}

// Acquire returns a private copy of the circuits tree when isolated, otherwise the tree itself.
func (w *Workspaces) Acquire(isolated bool) (*Workspace, error) {
	if !isolated {
		return &Workspace{dir: w.root, logger: w.logger}, nil
	}
	scratch, err := os.MkdirTemp(w.scratch, "circuits-")
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	dir := filepath.Join(scratch, "circuits")
	if err := os.CopyFS(dir, os.DirFS(w.root)); err != nil {
		_ = os.RemoveAll(scratch)
		return nil, fmt.Errorf("copy circuits into workspace: %w", err)
	}
	w.logger.Debug("workspace acquired", zap.String("dir", dir))
	return &Workspace{dir: dir, scratch: scratch, logger: w.logger}, nil
}

// With runs fn inside a workspace and releases it on every exit path.
func (w *Workspaces) With(isolated bool, fn func(ws *Workspace) error) (err error) {
	ws, err := w.Acquire(isolated)
	if err != nil {
		return err
	}
	defer func() {
		if relErr := ws.Release(); relErr != nil {
			w.logger.Warn("workspace not released", zap.String("dir", ws.scratch), zap.Error(relErr))
			if err == nil {
				err = relErr
			}
		}
	}()
	return fn(ws)
}
