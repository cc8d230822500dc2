package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAnalyticsRepo responde totales por día de inicio del rango.
type fakeAnalyticsRepo struct {
	totalsByDay map[string]decimal.Decimal
	products    int
	lowStock    int
}

func (r *fakeAnalyticsRepo) SalesTotalBetween(from, to time.Time) (decimal.Decimal, error) {
	if total, ok := r.totalsByDay[from.Format("2006-01-02")]; ok {
		return total, nil
	}
	return decimal.Zero, nil
}
func (r *fakeAnalyticsRepo) CountProducts() (int, error) { return r.products, nil }
func (r *fakeAnalyticsRepo) CountLowStock() (int, error) { return r.lowStock, nil }

func TestDashboard_AgregadosReales(t *testing.T) {
	day := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)
	repo := &fakeAnalyticsRepo{
		totalsByDay: map[string]decimal.Decimal{
			"2024-03-15": decimal.NewFromInt(200),
			"2024-03-14": decimal.NewFromInt(100),
			"2024-03-01": decimal.NewFromInt(200), // arranque del mes
		},
		products: 5,
		lowStock: 2,
	}
	uc := NewDashboardUseCase(repo)
	uc.now = func() time.Time { return day }

	resp, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.Sales.Today.Equal(decimal.NewFromInt(200)))
	assert.True(t, resp.Sales.Yesterday.Equal(decimal.NewFromInt(100)))
	assert.InDelta(t, 100.0, resp.Sales.Trend, 0.01, "hoy duplica a ayer")
	assert.Equal(t, 5, resp.Products.Total)
	assert.Equal(t, 2, resp.Products.LowStock)
	assert.Len(t, resp.SalesTrend.Labels, 7)
	assert.Len(t, resp.SalesTrend.Data, 7)

	// Con productos en bajo stock debe salir el insight de reposición.
	require.NotEmpty(t, resp.Insights)
	assert.Equal(t, "warning", resp.Insights[0].Type)
}

func TestDashboard_SinBaseRetornaDemo(t *testing.T) {
	uc := NewDashboardUseCase(nil)
	resp, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 248, resp.Products.Total)
	assert.NotEmpty(t, resp.Insights)
}

func TestTrendPct(t *testing.T) {
	assert.Equal(t, 0.0, trendPct(decimal.NewFromInt(10), decimal.Zero), "base cero no divide")
	assert.InDelta(t, -50.0, trendPct(decimal.NewFromInt(5), decimal.NewFromInt(10)), 0.01)
	assert.InDelta(t, 11.2, trendPct(decimal.NewFromInt(12450), decimal.NewFromInt(11196)), 0.05)
}
