package bridge

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/kazusane/sortiebot/go-controller/gen/bridge"
)

// #region client-struct
// Client wraps the gRPC connection to the Python inference service
// that owns the emulator and the template matcher. It satisfies the
// combat package's Device, Matcher, and Classifier interfaces.
type Client struct {
	conn   *grpc.ClientConn
	client pb.BridgeServiceClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to the Python inference gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewBridgeServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.BridgeServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region device
// Screenshot grabs the current emulator frame as PNG bytes.
func (c *Client) Screenshot(ctx context.Context) ([]byte, error) {
	resp, err := c.client.Screenshot(ctx, &pb.ScreenshotRequest{})
	if err != nil {
		return nil, fmt.Errorf("screenshot rpc: %w", err)
	}
	return resp.Png, nil
}

// Tap sends a relative-coordinate tap to the emulator.
func (c *Client) Tap(ctx context.Context, x, y float64) error {
	if _, err := c.client.Tap(ctx, &pb.TapRequest{X: float32(x), Y: float32(y)}); err != nil {
		return fmt.Errorf("tap rpc: %w", err)
	}
	return nil
}

// Swipe sends a relative-coordinate swipe to the emulator.
func (c *Client) Swipe(ctx context.Context, x1, y1, x2, y2 float64, duration time.Duration) error {
	_, err := c.client.Swipe(ctx, &pb.SwipeRequest{
		X1: float32(x1), Y1: float32(y1),
		X2: float32(x2), Y2: float32(y2),
		DurationMs: int32(duration.Milliseconds()),
	})
	if err != nil {
		return fmt.Errorf("swipe rpc: %w", err)
	}
	return nil
}

// #endregion device

// #region matcher
// Match asks the inference service whether a template is visible on
// the frame.
func (c *Client) Match(ctx context.Context, frame []byte, templateKey string, threshold float32) (bool, float32, error) {
	resp, err := c.client.Match(ctx, &pb.MatchRequest{
		Png:         frame,
		TemplateKey: templateKey,
		Threshold:   threshold,
	})
	if err != nil {
		return false, 0, fmt.Errorf("match rpc: %w", err)
	}
	return resp.Hit, resp.Confidence, nil
}

// #endregion matcher

// #region classifier
// Classify runs a named recognition task over the frame.
func (c *Client) Classify(ctx context.Context, frame []byte, task string) (map[string]int, string, error) {
	resp, err := c.client.Classify(ctx, &pb.ClassifyRequest{Png: frame, Task: task})
	if err != nil {
		return nil, "", fmt.Errorf("classify rpc: %w", err)
	}
	counts := make(map[string]int, len(resp.Counts))
	for k, v := range resp.Counts {
		counts[k] = int(v)
	}
	return counts, resp.Text, nil
}

// #endregion classifier
