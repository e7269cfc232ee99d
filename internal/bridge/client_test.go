package bridge

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"

	pb "github.com/kazusane/sortiebot/go-controller/gen/bridge"
)

// #region fake service

type fakeService struct {
	pb.BridgeServiceClient

	lastTap   *pb.TapRequest
	lastSwipe *pb.SwipeRequest
	lastMatch *pb.MatchRequest
}

func (f *fakeService) Screenshot(context.Context, *pb.ScreenshotRequest, ...grpc.CallOption) (*pb.Frame, error) {
	return &pb.Frame{Png: []byte("png"), Width: 960, Height: 540}, nil
}

func (f *fakeService) Tap(_ context.Context, in *pb.TapRequest, _ ...grpc.CallOption) (*pb.Ack, error) {
	f.lastTap = in
	return &pb.Ack{}, nil
}

func (f *fakeService) Swipe(_ context.Context, in *pb.SwipeRequest, _ ...grpc.CallOption) (*pb.Ack, error) {
	f.lastSwipe = in
	return &pb.Ack{}, nil
}

func (f *fakeService) Match(_ context.Context, in *pb.MatchRequest, _ ...grpc.CallOption) (*pb.MatchReply, error) {
	f.lastMatch = in
	return &pb.MatchReply{Hit: true, Confidence: 0.91}, nil
}

func (f *fakeService) Classify(context.Context, *pb.ClassifyRequest, ...grpc.CallOption) (*pb.ClassifyReply, error) {
	return &pb.ClassifyReply{Counts: map[string]int32{"DD": 2}, Text: "S"}, nil
}

// #endregion

// #region tests

func TestClientWraps(t *testing.T) {
	svc := &fakeService{}
	c := NewClientWithService(svc)
	ctx := context.Background()

	png, err := c.Screenshot(ctx)
	if err != nil || string(png) != "png" {
		t.Fatalf("screenshot: %q, %v", png, err)
	}

	if err := c.Tap(ctx, 0.938, 0.926); err != nil {
		t.Fatal(err)
	}
	if svc.lastTap.X != 0.938 || svc.lastTap.Y != 0.926 {
		t.Errorf("tap request: %+v", svc.lastTap)
	}

	if err := c.Swipe(ctx, 0.1, 0.2, 0.3, 0.4, 250*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if svc.lastSwipe.DurationMs != 250 {
		t.Errorf("swipe duration: %d", svc.lastSwipe.DurationMs)
	}

	hit, conf, err := c.Match(ctx, png, "combat/result_grade", 0.8)
	if err != nil || !hit || conf != 0.91 {
		t.Fatalf("match: %v %v %v", hit, conf, err)
	}
	if svc.lastMatch.TemplateKey != "combat/result_grade" || svc.lastMatch.Threshold != 0.8 {
		t.Errorf("match request: %+v", svc.lastMatch)
	}

	counts, text, err := c.Classify(ctx, png, "result_grade")
	if err != nil || counts["DD"] != 2 || text != "S" {
		t.Fatalf("classify: %v %q %v", counts, text, err)
	}

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}

// #endregion
