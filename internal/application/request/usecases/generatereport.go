package usecases

import (
	"context"
	"time"

	"netgrid/internal/application/request/dto"
	"netgrid/internal/domain/request"
	"netgrid/internal/domain/resource"
	vo "netgrid/internal/domain/request/valueobjects"
	"netgrid/internal/shared/authorization"
	"netgrid/internal/shared/biztime"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodCustom  = "custom"
)

type GenerateReportCommand struct {
	ActorID   uint
	ActorRole authorization.UserRole
	Period    string
	StartDate string
	EndDate   string
	Status    string
}

// GenerateReportUseCase aggregates requests inside a report window by
// status, location and connection type, alongside current resource
// utilization. The window is either a named period ending now, or an
// explicit date range.
type GenerateReportUseCase struct {
	requestRepo  request.Repository
	resourceRepo resource.Repository
	logger       logger.Interface
}

func NewGenerateReportUseCase(
	requestRepo request.Repository,
	resourceRepo resource.Repository,
	logger logger.Interface,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		requestRepo:  requestRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

func (uc *GenerateReportUseCase) Execute(ctx context.Context, cmd GenerateReportCommand) (*dto.ReportDTO, error) {
	uc.logger.Infow("executing generate report use case",
		"actor_id", cmd.ActorID, "period", cmd.Period)

	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}
	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can generate reports")
	}

	period, start, end, err := uc.resolveWindow(cmd)
	if err != nil {
		return nil, err
	}

	filter := request.ReportFilter{Start: start, End: end}
	if cmd.Status != "" {
		status, err := vo.NewStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	statusCounts, err := uc.requestRepo.StatusCounts(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to aggregate status counts", "error", err)
		return nil, err
	}
	locationCounts, err := uc.requestRepo.LocationCounts(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to aggregate location counts", "error", err)
		return nil, err
	}
	connectionTypeCounts, err := uc.requestRepo.ConnectionTypeCounts(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to aggregate connection type counts", "error", err)
		return nil, err
	}

	resources, err := uc.resourceRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load resource utilization", "error", err)
		return nil, err
	}
	usage := make([]dto.ResourceUsageDTO, 0, len(resources))
	for _, res := range resources {
		usage = append(usage, dto.ResourceUsageDTO{
			ResourceID:        res.ID(),
			ResourceName:      res.Name(),
			QuantityTotal:     res.QuantityTotal(),
			QuantityAvailable: res.QuantityAvailable(),
			QuantityReserved:  res.Reserved(),
		})
	}

	var total int64
	for _, count := range statusCounts {
		total += count
	}

	return &dto.ReportDTO{
		Period:               period,
		Start:                start,
		End:                  end,
		GeneratedAt:          biztime.NowUTC(),
		TotalRequests:        total,
		StatusCounts:         statusCounts,
		LocationCounts:       locationCounts,
		ConnectionTypeCounts: connectionTypeCounts,
		Resources:            usage,
	}, nil
}

func (uc *GenerateReportUseCase) resolveWindow(cmd GenerateReportCommand) (string, time.Time, time.Time, error) {
	if cmd.StartDate != "" || cmd.EndDate != "" {
		if cmd.StartDate == "" || cmd.EndDate == "" {
			return "", time.Time{}, time.Time{}, errors.NewValidationError("both start date and end date are required for a custom range")
		}
		start, err := biztime.ParseDateInBizTimezone(cmd.StartDate)
		if err != nil {
			return "", time.Time{}, time.Time{}, errors.NewValidationError("invalid start date, expected YYYY-MM-DD")
		}
		end, err := biztime.ParseDateInBizTimezone(cmd.EndDate)
		if err != nil {
			return "", time.Time{}, time.Time{}, errors.NewValidationError("invalid end date, expected YYYY-MM-DD")
		}
		// The end date is inclusive: the window runs to the following
		// midnight.
		end = end.AddDate(0, 0, 1)
		if !start.Before(end) {
			return "", time.Time{}, time.Time{}, errors.NewValidationError("start date must not be after end date")
		}
		return PeriodCustom, start, end, nil
	}

	now := biztime.NowUTC()
	switch cmd.Period {
	case PeriodDaily, "":
		return PeriodDaily, biztime.StartOfDayUTC(now), now, nil
	case PeriodWeekly:
		return PeriodWeekly, biztime.StartOfWeekUTC(now), now, nil
	case PeriodMonthly:
		return PeriodMonthly, biztime.StartOfMonthUTC(now), now, nil
	default:
		return "", time.Time{}, time.Time{}, errors.NewValidationError("invalid period, expected daily, weekly or monthly")
	}
}
