package usecase

import "context"

// MetricsSummary represents aggregated proctoring insights.
type MetricsSummary struct {
	TotalSessions     int64   `json:"total_sessions"`
	EndedSessions     int64   `json:"ended_sessions"`
	CompletionRate    float64 `json:"completion_rate"`
	AverageTrustScore float64 `json:"average_trust_score"`
	EvidenceRecords   int64   `json:"evidence_records"`
}

// GetMetricsSummary aggregates proctoring metrics from persisted sessions.
func (uc *SessionUseCase) GetMetricsSummary(ctx context.Context) (*MetricsSummary, error) {
	aggregation, err := uc.repo.AggregateMetrics(ctx)
	if err != nil {
		return nil, err
	}

	summary := &MetricsSummary{
		TotalSessions:     aggregation.TotalSessions,
		EndedSessions:     aggregation.EndedSessions,
		AverageTrustScore: aggregation.AverageScore,
		EvidenceRecords:   aggregation.EvidenceRecords,
	}

	if aggregation.TotalSessions > 0 {
		summary.CompletionRate = float64(aggregation.EndedSessions) / float64(aggregation.TotalSessions)
	}

	return summary, nil
}
