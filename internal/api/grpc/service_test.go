package grpc

import (
	"context"
	"io"
	"math"
	"net"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/portfoliogen/internal/app"
	"github.com/m-zajac/portfoliogen/internal/app/mock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

// startServer runs grpc server on in-memory listener and returns connected client.
func startServer(t *testing.T, service PortfolioServer) *Client {
	t.Helper()

	l := logrus.New()
	l.SetOutput(io.Discard)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewServer(service, "bufnet", l).Serve(ctx, lis)
	}()

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("grpc server didn't stop")
		}
	})

	return NewClient(conn)
}

func TestServiceEnhance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enhancer := mock.NewMockEnhancer(ctrl)
	enhancer.EXPECT().
		Enhance(gomock.Any(), "Make it formal:", "i like code").
		Return("I like code.")

	client := startServer(t, NewService(enhancer, mock.NewMockRepositoryRanker(ctrl), 6))

	got, err := client.Enhance(context.Background(), "Make it formal:", "i like code")
	require.NoError(t, err)
	assert.Equal(t, "I like code.", got)
}

func TestServiceEnhanceMissingInstruction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := startServer(t, NewService(mock.NewMockEnhancer(ctrl), mock.NewMockRepositoryRanker(ctrl), 6))

	_, err := client.Enhance(context.Background(), " ", "text")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServiceEnhanceBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enhancer := mock.NewMockEnhancer(ctrl)
	enhancer.EXPECT().
		EnhanceBatch(gomock.Any(), "Return only the skill name:", []string{"golang", "postgres"}).
		Return([]string{"Go", "PostgreSQL"})

	client := startServer(t, NewService(enhancer, mock.NewMockRepositoryRanker(ctrl), 6))

	got, err := client.EnhanceBatch(context.Background(), "Return only the skill name:", []string{"golang", "postgres"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, got)
}

func TestServiceTopRepositories(t *testing.T) {
	records := []app.RepositoryRecord{
		{
			Name:        "B",
			Description: "b tool",
			URL:         "https://github.com/jane/B",
			Language:    "Go",
			Commits:     40,
			Branches:    2,
			Stars:       10,
			Forks:       1,
		},
		{
			Name:     "A",
			URL:      "https://github.com/jane/A",
			Language: app.LanguageNotSpecified,
			Stars:    1,
		},
	}

	tests := []struct {
		name     string
		handle   string
		maxCount int
		wantCall bool
		wantMax  int
		wantCode codes.Code
	}{
		{
			name:     "bare handle",
			handle:   "jane",
			maxCount: 2,
			wantCall: true,
			wantMax:  2,
		},
		{
			name:     "profile url",
			handle:   "https://github.com/jane",
			maxCount: 4,
			wantCall: true,
			wantMax:  4,
		},
		{
			name:     "missing handle",
			handle:   "",
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "invalid handle",
			handle:   "https://gitlab.com/jane",
			wantCode: codes.InvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ranker := mock.NewMockRepositoryRanker(ctrl)
			if tt.wantCall {
				ranker.EXPECT().
					FetchTopRepositories(gomock.Any(), "jane", tt.wantMax).
					Return(records)
			}

			client := startServer(t, NewService(mock.NewMockEnhancer(ctrl), ranker, 6))

			got, err := client.TopRepositories(context.Background(), tt.handle, tt.maxCount)
			if tt.wantCode != codes.OK {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, status.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, records, got)
		})
	}
}

func TestServiceTopRepositoriesDefaultCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ranker := mock.NewMockRepositoryRanker(ctrl)
	ranker.EXPECT().FetchTopRepositories(gomock.Any(), "jane", 6).Return(nil)

	s := NewService(mock.NewMockEnhancer(ctrl), ranker, 6)
	req, err := newStruct(map[string]interface{}{"handle": "jane"})
	require.NoError(t, err)

	reply, err := s.TopRepositories(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, reply.GetFields()["repositories"].GetListValue().GetValues())
}

func TestServiceTopRepositoriesInvalidMaxCount(t *testing.T) {
	tests := []struct {
		name     string
		maxCount *structpb.Value
	}{
		{name: "string", maxCount: structpb.NewStringValue("5")},
		{name: "bool", maxCount: structpb.NewBoolValue(true)},
		{name: "fraction", maxCount: structpb.NewNumberValue(2.5)},
		{name: "nan", maxCount: structpb.NewNumberValue(math.NaN())},
		{name: "infinity", maxCount: structpb.NewNumberValue(math.Inf(1))},
		{name: "too large", maxCount: structpb.NewNumberValue(1e12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := NewService(mock.NewMockEnhancer(ctrl), mock.NewMockRepositoryRanker(ctrl), 6)
			req := &structpb.Struct{Fields: map[string]*structpb.Value{
				"handle":   structpb.NewStringValue("jane"),
				"maxCount": tt.maxCount,
			}}

			_, err := s.TopRepositories(context.Background(), req)
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}
