package dto

import "github.com/shopspring/decimal"

// DashboardSales ventas de hoy vs ayer.
type DashboardSales struct {
	Today     decimal.Decimal `json:"today"`
	Yesterday decimal.Decimal `json:"yesterday"`
	Trend     float64         `json:"trend"`
}

// DashboardProducts conteos del catálogo.
type DashboardProducts struct {
	Total    int `json:"total"`
	LowStock int `json:"lowStock"`
}

// DashboardRevenue ingresos del mes contra meta.
type DashboardRevenue struct {
	Monthly decimal.Decimal `json:"monthly"`
	Target  decimal.Decimal `json:"target"`
	Trend   float64         `json:"trend"`
}

// ChartSeries etiquetas + datos para una gráfica simple.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// DashboardInsight tarjeta de insight para el tendero.
type DashboardInsight struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// DashboardResponse payload completo del dashboard.
type DashboardResponse struct {
	Sales      DashboardSales     `json:"sales"`
	Products   DashboardProducts  `json:"products"`
	Revenue    DashboardRevenue   `json:"revenue"`
	SalesTrend ChartSeries        `json:"salesTrend"`
	Categories ChartSeries        `json:"categories"`
	Insights   []DashboardInsight `json:"insights"`
}
