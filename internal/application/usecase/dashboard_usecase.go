package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-boss/internal/application/dto"
	"github.com/tu-usuario/retail-boss/internal/domain/repository"
)

// monthlyTarget meta de ingresos del mes para la tarjeta de revenue.
var monthlyTarget = decimal.NewFromInt(500000)

// DashboardUseCase arma la vista principal del tendero. Con base de datos
// calcula los agregados reales; sin ella retorna el payload de demostración.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// Dashboard retorna ventas de hoy/ayer, conteos de catálogo, ingresos del
// mes, tendencia de 7 días e insights.
func (uc *DashboardUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	if uc.analyticsRepo == nil {
		return mockDashboard(), nil
	}

	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	salesToday, err := uc.analyticsRepo.SalesTotalBetween(today, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	salesYesterday, err := uc.analyticsRepo.SalesTotalBetween(yesterday, today)
	if err != nil {
		return nil, err
	}
	monthly, err := uc.analyticsRepo.SalesTotalBetween(monthStart, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	totalProducts, err := uc.analyticsRepo.CountProducts()
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.analyticsRepo.CountLowStock()
	if err != nil {
		return nil, err
	}

	// Tendencia de los últimos 7 días (incluye hoy).
	trend := dto.ChartSeries{Labels: make([]string, 0, 7), Data: make([]float64, 0, 7)}
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		total, err := uc.analyticsRepo.SalesTotalBetween(day, day.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		trend.Labels = append(trend.Labels, day.Format("Mon"))
		trend.Data = append(trend.Data, total.InexactFloat64())
	}

	resp := &dto.DashboardResponse{
		Sales: dto.DashboardSales{
			Today:     salesToday,
			Yesterday: salesYesterday,
			Trend:     trendPct(salesToday, salesYesterday),
		},
		Products: dto.DashboardProducts{Total: totalProducts, LowStock: lowStock},
		Revenue: dto.DashboardRevenue{
			Monthly: monthly,
			Target:  monthlyTarget,
			Trend:   trendPct(monthly, monthlyTarget),
		},
		SalesTrend: trend,
		Categories: dto.ChartSeries{
			Labels: []string{"Groceries", "Snacks", "Beverages", "Personal Care", "Others"},
			Data:   []float64{35, 25, 20, 12, 8},
		},
		Insights: []dto.DashboardInsight{},
	}
	if lowStock > 0 {
		resp.Insights = append(resp.Insights, dto.DashboardInsight{
			Type:    "warning",
			Title:   "Low Stock Alert",
			Message: fmt.Sprintf("%d products below minimum level", lowStock),
			Action:  "Restock Now",
		})
	}
	return resp, nil
}

// trendPct variación porcentual de current contra base; 0 si base es cero.
func trendPct(current, base decimal.Decimal) float64 {
	if base.IsZero() {
		return 0
	}
	return current.Sub(base).
		Div(base).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		InexactFloat64()
}

// mockDashboard payload de demostración cuando no hay base configurada.
func mockDashboard() *dto.DashboardResponse {
	return &dto.DashboardResponse{
		Sales: dto.DashboardSales{
			Today:     decimal.NewFromInt(12450),
			Yesterday: decimal.NewFromInt(11200),
			Trend:     11.2,
		},
		Products: dto.DashboardProducts{Total: 248, LowStock: 12},
		Revenue: dto.DashboardRevenue{
			Monthly: decimal.NewFromInt(345000),
			Target:  monthlyTarget,
			Trend:   8.5,
		},
		SalesTrend: dto.ChartSeries{
			Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Data:   []float64{8500, 9200, 10100, 9800, 11500, 13200, 12450},
		},
		Categories: dto.ChartSeries{
			Labels: []string{"Groceries", "Snacks", "Beverages", "Personal Care", "Others"},
			Data:   []float64{35, 25, 20, 12, 8},
		},
		Insights: []dto.DashboardInsight{
			{
				Type:    "success",
				Title:   "Festival Season Boost",
				Message: "Sales up 15% this week. Stock up on sweets and snacks!",
				Action:  "View Details",
			},
			{
				Type:    "warning",
				Title:   "Low Stock Alert",
				Message: "12 products below minimum level",
				Action:  "Restock Now",
			},
		},
	}
}
