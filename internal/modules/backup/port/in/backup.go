package in

import (
	"context"

	"weldtrack/internal/modules/backup/dto"
)

type Usecase interface {
	// Export serializes every silo into one portable JSON document.
	Export(ctx context.Context) (dto.ExportOutput, error)

	// Import replaces all silos from a previously exported document. The
	// replacement is atomic at the app level: either the payload decodes
	// and every silo is overwritten, or nothing changes.
	Import(ctx context.Context, input dto.ImportInput) error
}
