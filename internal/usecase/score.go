package usecase

import (
	"math"

	"github.com/example/proctor-ai/internal/repository"
)

// tabSwitchCap is the count at which tab switching saturates its metric.
const tabSwitchCap = 5.0

// metricWeights assigns equal influence to each of the five evidence
// categories.
var metricWeights = map[string]float64{
	repository.EvidenceDevice:         0.20,
	repository.EvidenceMultiplePeople: 0.20,
	repository.EvidenceAudio:          0.20,
	repository.EvidenceAI:             0.20,
	repository.EvidenceTabSwitch:      0.20,
}

// TrustScore condenses a session's evidence counts into a 0-100 score.
// 100 means no evidence of any kind; each boolean category present costs its
// full weight, while tab switching scales linearly up to five switches.
func TrustScore(counts map[string]int64) int {
	metrics := map[string]float64{
		repository.EvidenceDevice:         boolMetric(counts[repository.EvidenceDevice]),
		repository.EvidenceMultiplePeople: boolMetric(counts[repository.EvidenceMultiplePeople]),
		repository.EvidenceAudio:          boolMetric(counts[repository.EvidenceAudio]),
		repository.EvidenceAI:             boolMetric(counts[repository.EvidenceAI]),
		repository.EvidenceTabSwitch:      math.Min(float64(counts[repository.EvidenceTabSwitch])/tabSwitchCap, 1.0),
	}

	rawScore := 0.0
	for key, weight := range metricWeights {
		rawScore += weight * (1 - metrics[key])
	}

	return int(math.Round(rawScore * 100))
}

func boolMetric(count int64) float64 {
	if count > 0 {
		return 1
	}
	return 0
}
