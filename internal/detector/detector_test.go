package detector

import "testing"

func TestFilterDropsLowConfidence(t *testing.T) {
	detections := []Detection{
		{Label: LabelPerson, Confidence: 0.5},
		{Label: LabelPerson, Confidence: 0.51},
		{Label: LabelCellPhone, Confidence: 0.49},
		{Label: LabelBook, Confidence: 0.9},
	}

	kept := Filter(detections, TargetLabels(), 0.5)

	if len(kept) != 2 {
		t.Fatalf("expected 2 detections, got %d", len(kept))
	}
	for _, d := range kept {
		if d.Confidence <= 0.5 {
			t.Fatalf("detection with confidence %f should have been dropped", d.Confidence)
		}
	}
}

func TestFilterBoundaryIsStrict(t *testing.T) {
	detections := []Detection{{Label: LabelPerson, Confidence: 0.5}}

	if kept := Filter(detections, TargetLabels(), 0.5); len(kept) != 0 {
		t.Fatalf("confidence exactly at the floor must not pass, got %d detections", len(kept))
	}
}

func TestFilterDropsForeignLabels(t *testing.T) {
	detections := []Detection{
		{Label: "laptop", Confidence: 0.99},
		{Label: "dog", Confidence: 0.99},
		{Label: LabelPerson, Confidence: 0.99},
	}

	kept := Filter(detections, TargetLabels(), 0.5)

	if len(kept) != 1 || kept[0].Label != LabelPerson {
		t.Fatalf("expected only the person detection, got %+v", kept)
	}
}
