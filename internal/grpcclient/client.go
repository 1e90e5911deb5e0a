package grpcclient

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/example/proctor-ai/internal/detector"
	"github.com/example/proctor-ai/internal/logging"
	pb "github.com/example/proctor-ai/proto"
)

const maxFrameMessageSize = 16 * 1024 * 1024

// Client talks to the inference sidecar. It implements both
// detector.ObjectDetector and detector.FaceScanner.
type Client struct {
	client pb.InferenceClient
	logger *zap.Logger
}

// Dial connects to the inference sidecar and returns a ready-to-use client.
func Dial(ctx context.Context, addr string, logger *zap.Logger) (*Client, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxFrameMessageSize),
			grpc.MaxCallSendMsgSize(maxFrameMessageSize),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             3 * time.Second,
			PermitWithoutStream: true,
		}),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_inference", "", err)
		logger.Error("failed to dial inference sidecar", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	return &Client{client: pb.NewInferenceClient(conn), logger: logger}, conn, nil
}

// Detect runs object detection on one encoded frame.
func (c *Client) Detect(ctx context.Context, image []byte) ([]detector.Detection, error) {
	resp, err := c.client.DetectObjects(ctx, &pb.Frame{Image: image})
	if err != nil {
		return nil, logging.NewOperationError("grpcclient.detect_objects", "", err)
	}

	detections := make([]detector.Detection, 0, len(resp.GetObjects()))
	for _, obj := range resp.GetObjects() {
		box := obj.GetBox()
		detections = append(detections, detector.Detection{
			Label:      obj.GetLabel(),
			Confidence: float64(obj.GetConfidence()),
			Box: detector.BoundingBox{
				X1: int(box.GetX1()),
				Y1: int(box.GetY1()),
				X2: int(box.GetX2()),
				Y2: int(box.GetY2()),
			},
		})
	}
	return detections, nil
}

// ScanFace extracts facial landmarks from one encoded frame. Returns
// (nil, nil) when the sidecar reports no face.
func (c *Client) ScanFace(ctx context.Context, image []byte) (*detector.FaceLandmarks, error) {
	resp, err := c.client.ScanFace(ctx, &pb.Frame{Image: image})
	if err != nil {
		return nil, logging.NewOperationError("grpcclient.scan_face", "", err)
	}
	if !resp.GetFaceFound() {
		return nil, nil
	}

	points := resp.GetLandmarks()
	if len(points) < 13 {
		c.logger.Warn("inference sidecar returned a truncated landmark set", zap.Int("points", len(points)))
		return nil, nil
	}

	var landmarks detector.FaceLandmarks
	for i := 0; i < 6; i++ {
		landmarks.LeftEye[i] = detector.Point{X: float64(points[i].GetX()), Y: float64(points[i].GetY())}
		landmarks.RightEye[i] = detector.Point{X: float64(points[6+i].GetX()), Y: float64(points[6+i].GetY())}
	}
	landmarks.Nose = detector.Point{X: float64(points[12].GetX()), Y: float64(points[12].GetY())}
	return &landmarks, nil
}
