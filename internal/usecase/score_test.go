package usecase

import (
	"testing"

	"github.com/example/proctor-ai/internal/repository"
)

func TestTrustScoreNoEvidence(t *testing.T) {
	if got := TrustScore(map[string]int64{}); got != 100 {
		t.Fatalf("expected score 100 for clean session, got %d", got)
	}
}

func TestTrustScoreAllCategoriesMaxed(t *testing.T) {
	counts := map[string]int64{
		repository.EvidenceDevice:         3,
		repository.EvidenceMultiplePeople: 1,
		repository.EvidenceAudio:          2,
		repository.EvidenceAI:             1,
		repository.EvidenceTabSwitch:      5,
	}
	if got := TrustScore(counts); got != 0 {
		t.Fatalf("expected score 0 when every category is maxed, got %d", got)
	}
}

func TestTrustScoreSingleCategory(t *testing.T) {
	counts := map[string]int64{repository.EvidenceDevice: 1}
	if got := TrustScore(counts); got != 80 {
		t.Fatalf("expected score 80 for a single triggered category, got %d", got)
	}
}

func TestTrustScoreRepeatedEvidenceCountsOnce(t *testing.T) {
	one := TrustScore(map[string]int64{repository.EvidenceDevice: 1})
	many := TrustScore(map[string]int64{repository.EvidenceDevice: 12})
	if one != many {
		t.Fatalf("expected identical scores for 1 and 12 device records, got %d and %d", one, many)
	}
}

func TestTrustScoreTabSwitchScalesLinearly(t *testing.T) {
	counts := map[string]int64{repository.EvidenceTabSwitch: 2}
	if got := TrustScore(counts); got != 92 {
		t.Fatalf("expected score 92 for 2 tab switches, got %d", got)
	}
}

func TestTrustScoreTabSwitchSaturates(t *testing.T) {
	atCap := TrustScore(map[string]int64{repository.EvidenceTabSwitch: 5})
	beyond := TrustScore(map[string]int64{repository.EvidenceTabSwitch: 40})
	if atCap != 80 || beyond != 80 {
		t.Fatalf("expected tab switching to saturate at 80, got %d and %d", atCap, beyond)
	}
}

func TestTrustScoreIgnoresUnknownTypes(t *testing.T) {
	counts := map[string]int64{"telepathy": 9}
	if got := TrustScore(counts); got != 100 {
		t.Fatalf("expected unknown types to be ignored, got %d", got)
	}
}
