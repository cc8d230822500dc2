package dto

// ForecastData pronóstico de ventas a 7 días (valores nulos = sin dato real).
type ForecastData struct {
	Labels    []string   `json:"labels"`
	Actual    []*float64 `json:"actual"`
	Predicted []float64  `json:"predicted"`
}

// Forecast bloque de pronóstico con su precisión estimada.
type Forecast struct {
	Accuracy int          `json:"accuracy"`
	Data     ForecastData `json:"data"`
	Insights []string     `json:"insights"`
}

// TopCustomer cliente destacado por compras.
type TopCustomer struct {
	Name      string  `json:"name"`
	Purchases int     `json:"purchases"`
	Total     float64 `json:"total"`
	Badge     string  `json:"badge"`
}

// PeakHourInsight franja horaria con su promedio de ventas.
type PeakHourInsight struct {
	Period  string  `json:"period"`
	Average float64 `json:"average"`
}

// PeakHours ventas por franja horaria.
type PeakHours struct {
	Labels   []string          `json:"labels"`
	Data     []float64         `json:"data"`
	Insights []PeakHourInsight `json:"insights"`
}

// AnalyticsResponse payload completo de analítica.
type AnalyticsResponse struct {
	Forecast  Forecast      `json:"forecast"`
	Customers []TopCustomer `json:"customers"`
	PeakHours PeakHours     `json:"peakHours"`
}
