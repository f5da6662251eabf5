package oma

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/structhealth/modal-tracking/go-analyzer/gen/modal"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/mode"
)

// #region types
// Segment describes one measurement segment available on the identification
// service.
type Segment struct {
	SegmentID int
	StartTime string
	EndTime   string
	Quality   string
}

// #endregion types

// #region client-struct
// Client wraps the gRPC connection to the operational modal analysis service
// that produces candidates from raw acceleration data.
type Client struct {
	conn   *grpc.ClientConn
	client pb.ModalIdentifierClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to the identification gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewModalIdentifierClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.ModalIdentifierClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// #endregion close

// #region list-segments
// ListSegments returns the segments the service has processed for a case.
func (c *Client) ListSegments(ctx context.Context, caseName string) ([]Segment, error) {
	resp, err := c.client.ListSegments(ctx, &pb.ListSegmentsRequest{
		CaseName: caseName,
	})
	if err != nil {
		return nil, fmt.Errorf("list segments rpc: %w", err)
	}

	segments := make([]Segment, len(resp.Segments))
	for i, s := range resp.Segments {
		segments[i] = Segment{
			SegmentID: int(s.SegmentId),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Quality:   s.Quality,
		}
	}
	return segments, nil
}

// #endregion list-segments

// #region identify
// Identify runs modal identification for one segment and returns its
// candidates with segment timing attached.
func (c *Client) Identify(ctx context.Context, caseName string, segmentID int, samplingFrequency float64, channels []string) ([]mode.Candidate, error) {
	resp, err := c.client.Identify(ctx, &pb.IdentifyRequest{
		CaseName:          caseName,
		SegmentId:         int32(segmentID),
		SamplingFrequency: samplingFrequency,
		Channels:          channels,
	})
	if err != nil {
		return nil, fmt.Errorf("identify rpc: %w", err)
	}

	candidates := make([]mode.Candidate, len(resp.Candidates))
	for i, mc := range resp.Candidates {
		candidates[i] = mode.Candidate{
			SegmentID:           int(resp.SegmentId),
			Frequency:           mc.Frequency,
			DampingRatio:        mc.DampingRatio,
			ModeShape:           mc.ModeShape,
			DetectionPercentage: mc.DetectionPercentage,
			SegmentStart:        resp.SegmentStart,
			SegmentEnd:          resp.SegmentEnd,
		}
	}
	return candidates, nil
}

// #endregion identify

// #region fetch-case
// FetchCase lists a case's segments and identifies each one, returning the
// combined candidate pool.
func (c *Client) FetchCase(ctx context.Context, caseName string, samplingFrequency float64, channels []string) ([]mode.Candidate, error) {
	segments, err := c.ListSegments(ctx, caseName)
	if err != nil {
		return nil, err
	}

	var all []mode.Candidate
	for _, s := range segments {
		cands, err := c.Identify(ctx, caseName, s.SegmentID, samplingFrequency, channels)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", s.SegmentID, err)
		}
		all = append(all, cands...)
	}
	return all, nil
}

// #endregion fetch-case
