package usecase

import (
	"context"
	"net/http"
	"time"

	repo "pos/internal/repository"
)

type Clock interface {
	Now() time.Time
}

type DashboardUsecase struct {
	statsRepo repo.StatsRepository
	clock     Clock
}

func NewDashboardUsecase(statsRepo repo.StatsRepository, clock Clock) *DashboardUsecase {
	return &DashboardUsecase{statsRepo: statsRepo, clock: clock}
}

type DashboardOutput struct {
	TotalProducts int64 `json:"total_products"`
	TodaySales    int64 `json:"today_sales"`
	TodayRevenue  int64 `json:"today_revenue"`
}

// GetDashboardは毎回集計し直す（キャッシュなし）。
// 「今日」はサーバーローカルの0時から。
func (u *DashboardUsecase) GetDashboard(ctx context.Context) (DashboardOutput, error) {
	total, err := u.statsRepo.CountProducts(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := u.clock.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count, revenue, err := u.statsRepo.SalesSince(ctx, midnight)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return DashboardOutput{
		TotalProducts: total,
		TodaySales:    count,
		TodayRevenue:  revenue,
	}, nil
}
