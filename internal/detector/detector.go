package detector

import "context"

// Target labels for exam proctoring. Anything else the model reports is
// discarded before it reaches the pipeline.
const (
	LabelPerson    = "person"
	LabelCellPhone = "cell phone"
	LabelBook      = "book"
)

// BoundingBox is an axis-aligned box in frame pixel coordinates.
type BoundingBox struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// Detection is a single labelled object reported for one frame. Detections
// are ephemeral: they are rendered and counted, never persisted individually.
type Detection struct {
	Label      string
	Confidence float64
	Box        BoundingBox
}

// Point is a landmark position in frame pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// FaceLandmarks carries the fixed 13-point landmark layout returned by the
// face scanner: six points per eye (corner, two upper lid, corner, two lower
// lid) followed by the nose tip.
type FaceLandmarks struct {
	LeftEye  [6]Point
	RightEye [6]Point
	Nose     Point
}

// ObjectDetector locates objects in a single encoded frame. Implementations
// must be safe for use from multiple sessions: each call is stateless.
type ObjectDetector interface {
	Detect(ctx context.Context, image []byte) ([]Detection, error)
}

// FaceScanner extracts facial landmarks from a single encoded frame.
// A (nil, nil) return means no face was found, which is not an error.
type FaceScanner interface {
	ScanFace(ctx context.Context, image []byte) (*FaceLandmarks, error)
}

// Filter keeps only detections whose label is in targets and whose confidence
// strictly exceeds floor.
func Filter(detections []Detection, targets map[string]struct{}, floor float64) []Detection {
	var kept []Detection
	for _, d := range detections {
		if _, ok := targets[d.Label]; !ok {
			continue
		}
		if d.Confidence > floor {
			kept = append(kept, d)
		}
	}
	return kept
}

// TargetLabels returns the label set the proctoring pipeline watches.
func TargetLabels() map[string]struct{} {
	return map[string]struct{}{
		LabelPerson:    {},
		LabelCellPhone: {},
		LabelBook:      {},
	}
}
