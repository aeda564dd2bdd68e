package walker

import (
	"context"
	"errors"
	"fmt"

	"github.com/bethropolis/dir-tree/internal/picker"
)

// Opened is a picked root together with its scanned tree.
type Opened struct {
	Root picker.Root
	*Result
}

// OpenDirectory picks a root directory and scans it. It returns (nil, nil)
// when the user cancels the pick or ctx ends during the scan; any partial
// tree is discarded. Every other failure is returned as an error.
func OpenDirectory(ctx context.Context, p picker.Picker, opts ...Option) (*Opened, error) {
	if p == nil {
		return nil, errors.New("walker: nil picker")
	}

	root, err := p.Pick(ctx)
	if err != nil {
		if errors.Is(err, picker.ErrCancelled) {
			return nil, nil
		}
		return nil, fmt.Errorf("walker: choosing root directory: %w", err)
	}

	res, err := Walk(ctx, root.FS, opts...)
	if err != nil {
		if errors.Is(err, ErrScanCancelled) {
			return nil, nil
		}
		return nil, fmt.Errorf("walker: scanning %s: %w", root.Path, err)
	}

	return &Opened{Root: root, Result: res}, nil
}
