package in

import (
	"context"

	"weldtrack/internal/modules/backup/dto"
	backupin "weldtrack/internal/modules/backup/port/in"
)

type CLIHandler struct {
	usecase backupin.Usecase
}

func NewCLIHandler(usecase backupin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx)
}

func (h CLIHandler) Import(ctx context.Context, payload []byte) error {
	return h.usecase.Import(ctx, dto.ImportInput{Payload: payload})
}
