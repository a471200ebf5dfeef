package usecase

import (
	"context"

	"weldtrack/internal/modules/streak/domain"
	"weldtrack/internal/modules/streak/dto"
	streakin "weldtrack/internal/modules/streak/port/in"
	"weldtrack/internal/modules/streak/service"
	"weldtrack/internal/platform/notify"
)

type Interactor struct {
	svc *service.StreakService
	hub *notify.Hub
}

func NewInteractor(svc *service.StreakService, hub *notify.Hub) streakin.Usecase {
	return &Interactor{svc: svc, hub: hub}
}

func (i *Interactor) Advance(ctx context.Context, actionType string) (dto.StreakOutput, error) {
	next, err := i.svc.Advance(ctx, actionType)
	if err != nil {
		return dto.StreakOutput{}, err
	}
	if i.hub != nil {
		i.hub.Publish(notify.TopicStreak)
	}
	return toOutput(next), nil
}

func (i *Interactor) Current(ctx context.Context) (dto.StreakOutput, error) {
	current, err := i.svc.Current(ctx)
	if err != nil {
		return dto.StreakOutput{}, err
	}
	return toOutput(current), nil
}

func (i *Interactor) Replace(ctx context.Context, streak dto.StreakOutput) error {
	return i.svc.Replace(ctx, domain.Streak{Count: streak.Count, Date: streak.Date, Types: streak.Types})
}

func toOutput(s domain.Streak) dto.StreakOutput {
	return dto.StreakOutput{Count: s.Count, Date: s.Date, Types: s.Types}
}
