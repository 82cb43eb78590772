package service

// Dashboard stats are gathered as independent metrics and merged; one
// failing metric surfaces its error in place instead of failing the
// whole response.

type Metric struct {
	Field string
	Fetch func() (int64, error)
}

type MetricResult struct {
	Field string `json:"field"`
	Value int64  `json:"value"`
	Error string `json:"error,omitempty"`
}

type DashboardService struct {
	metrics []Metric
}

func NewDashboardService(metrics ...Metric) *DashboardService {
	return &DashboardService{metrics: metrics}
}

func (s *DashboardService) GetStats() []MetricResult {
	results := make([]MetricResult, 0, len(s.metrics))
	for _, m := range s.metrics {
		value, err := m.Fetch()
		result := MetricResult{Field: m.Field, Value: value}
		if err != nil {
			result.Value = 0
			result.Error = err.Error()
		}
		results = append(results, result)
	}
	return results
}
