package out

import "context"

// DocumentReader returns the raw text of a workspace file.
type DocumentReader interface {
	Read(ctx context.Context, rel string) (string, error)
}
