package in

import (
	"context"

	"weldtrack/internal/modules/streak/dto"
	streakin "weldtrack/internal/modules/streak/port/in"
)

type CLIHandler struct {
	usecase streakin.Usecase
}

func NewCLIHandler(usecase streakin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Current(ctx context.Context) (dto.StreakOutput, error) {
	return h.usecase.Current(ctx)
}
