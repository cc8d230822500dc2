package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/retail-boss/internal/application/dto"
	"github.com/tu-usuario/retail-boss/internal/domain/repository"
)

// AnalyticsUseCase vista de analítica avanzada: pronóstico a 7 días, mejores
// clientes y horas pico. El pronóstico y los clientes son simulados (no hay
// modelo ni registro de clientes todavía); la serie histórica sí sale de la
// base cuando está configurada.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// Analytics retorna el payload completo de analítica.
func (uc *AnalyticsUseCase) Analytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	resp := mockAnalytics()
	if uc.analyticsRepo == nil {
		return resp, nil
	}

	// Reemplaza los días "actual" del pronóstico con la serie real.
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	labels := make([]string, 0, 7)
	actual := make([]*float64, 0, 7)
	for i := 4; i >= 1; i-- {
		day := today.AddDate(0, 0, -i)
		total, err := uc.analyticsRepo.SalesTotalBetween(day, day.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		v := total.InexactFloat64()
		labels = append(labels, day.Format("Jan 2"))
		actual = append(actual, &v)
	}
	for i := 0; i < 3; i++ {
		day := today.AddDate(0, 0, i)
		labels = append(labels, day.Format("Jan 2"))
		actual = append(actual, nil)
	}
	resp.Forecast.Data.Labels = labels
	resp.Forecast.Data.Actual = actual
	return resp, nil
}

func mockAnalytics() *dto.AnalyticsResponse {
	f := func(v float64) *float64 { return &v }
	return &dto.AnalyticsResponse{
		Forecast: dto.Forecast{
			Accuracy: 87,
			Data: dto.ForecastData{
				Labels:    []string{"Day 1", "Day 2", "Day 3", "Day 4", "Day 5", "Day 6", "Day 7"},
				Actual:    []*float64{f(8500), f(9200), f(10100), f(9800), nil, nil, nil},
				Predicted: []float64{8600, 9100, 10000, 9900, 11200, 12800, 12100},
			},
			Insights: []string{
				"Weekend sales expected to rise 20%",
				"Stock up on beverages before Friday",
				"Festival next week may double demand",
			},
		},
		Customers: []dto.TopCustomer{
			{Name: "Ramesh Kumar", Purchases: 45, Total: 12500, Badge: "VIP"},
			{Name: "Sunita Devi", Purchases: 38, Total: 9800, Badge: "Gold"},
			{Name: "Amit Sharma", Purchases: 31, Total: 7200, Badge: "Silver"},
		},
		PeakHours: dto.PeakHours{
			Labels: []string{"6AM", "9AM", "12PM", "3PM", "6PM", "9PM"},
			Data:   []float64{1200, 3400, 2800, 2100, 4500, 3200},
			Insights: []dto.PeakHourInsight{
				{Period: "Evening (6-9 PM)", Average: 4500},
				{Period: "Morning (9AM-12PM)", Average: 3400},
			},
		},
	}
}
