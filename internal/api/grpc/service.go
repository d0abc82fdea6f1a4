package grpc

import (
	"context"
	"math"
	"strings"

	"github.com/m-zajac/portfoliogen/internal/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Service exposes text enhancement and repository ranking over grpc.
type Service struct {
	enhancer        app.Enhancer
	ranker          app.RepositoryRanker
	maxRepositories int
}

var _ PortfolioServer = &Service{}

// NewService creates new Service instance.
// maxRepositories is used when TopRepositories request doesn't set maxCount.
func NewService(enhancer app.Enhancer, ranker app.RepositoryRanker, maxRepositories int) *Service {
	return &Service{
		enhancer:        enhancer,
		ranker:          ranker,
		maxRepositories: maxRepositories,
	}
}

// Enhance rewrites single text.
// Request: {instruction, text}. Reply: {text}.
func (s *Service) Enhance(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	instruction, err := requiredString(req, "instruction")
	if err != nil {
		return nil, err
	}
	text := req.GetFields()["text"].GetStringValue()

	return newStruct(map[string]interface{}{
		"text": s.enhancer.Enhance(ctx, instruction, text),
	})
}

// EnhanceBatch rewrites list of texts, keeping their order.
// Request: {instruction, items}. Reply: {items}.
func (s *Service) EnhanceBatch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	instruction, err := requiredString(req, "instruction")
	if err != nil {
		return nil, err
	}

	var items []string
	for i, v := range req.GetFields()["items"].GetListValue().GetValues() {
		sv, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "items[%d] is not a string", i)
		}
		items = append(items, sv.StringValue)
	}

	enhanced := s.enhancer.EnhanceBatch(ctx, instruction, items)
	list := make([]interface{}, 0, len(enhanced))
	for _, item := range enhanced {
		list = append(list, item)
	}

	return newStruct(map[string]interface{}{
		"items": list,
	})
}

// TopRepositories returns user's top repositories.
// Request: {handle, maxCount}, handle can be github profile url. Reply: {repositories}.
func (s *Service) TopRepositories(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	handle, err := requiredString(req, "handle")
	if err != nil {
		return nil, err
	}
	handle, ok := app.GithubHandle(handle)
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "invalid github handle")
	}

	maxCount := s.maxRepositories
	if v, ok := req.GetFields()["maxCount"]; ok {
		if maxCount, err = intValue(v, "maxCount"); err != nil {
			return nil, err
		}
	}

	records := s.ranker.FetchTopRepositories(ctx, handle, maxCount)
	repos := make([]interface{}, 0, len(records))
	for _, r := range records {
		repos = append(repos, map[string]interface{}{
			"name":        r.Name,
			"description": r.Description,
			"url":         r.URL,
			"language":    r.Language,
			"commits":     r.Commits,
			"branches":    r.Branches,
			"stars":       r.Stars,
			"forks":       r.Forks,
		})
	}

	return newStruct(map[string]interface{}{
		"repositories": repos,
	})
}

func requiredString(req *structpb.Struct, field string) (string, error) {
	v := req.GetFields()[field].GetStringValue()
	if strings.TrimSpace(v) == "" {
		return "", status.Errorf(codes.InvalidArgument, "%s is required", field)
	}

	return v, nil
}

// intValue returns v as int. v must be a whole number within int32 range.
func intValue(v *structpb.Value, field string) (int, error) {
	nv, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be a number", field)
	}
	n := nv.NumberValue
	if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be an integer", field)
	}

	return int(n), nil
}

func newStruct(m map[string]interface{}) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encoding reply: %v", err)
	}

	return st, nil
}
