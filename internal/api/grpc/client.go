package grpc

import (
	"context"
	"fmt"

	"github.com/m-zajac/portfoliogen/internal/app"
	grpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls portfolio grpc service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates new Client instance.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Enhance calls Enhance method.
func (c *Client) Enhance(ctx context.Context, instruction string, text string) (string, error) {
	out, err := c.invoke(ctx, enhanceMethod, map[string]interface{}{
		"instruction": instruction,
		"text":        text,
	})
	if err != nil {
		return "", err
	}

	return out.GetFields()["text"].GetStringValue(), nil
}

// EnhanceBatch calls EnhanceBatch method.
func (c *Client) EnhanceBatch(ctx context.Context, instruction string, items []string) ([]string, error) {
	list := make([]interface{}, 0, len(items))
	for _, item := range items {
		list = append(list, item)
	}
	out, err := c.invoke(ctx, enhanceBatchMethod, map[string]interface{}{
		"instruction": instruction,
		"items":       list,
	})
	if err != nil {
		return nil, err
	}

	values := out.GetFields()["items"].GetListValue().GetValues()
	result := make([]string, 0, len(values))
	for _, v := range values {
		result = append(result, v.GetStringValue())
	}

	return result, nil
}

// TopRepositories calls TopRepositories method.
func (c *Client) TopRepositories(ctx context.Context, handle string, maxCount int) ([]app.RepositoryRecord, error) {
	out, err := c.invoke(ctx, topRepositoriesMethod, map[string]interface{}{
		"handle":   handle,
		"maxCount": maxCount,
	})
	if err != nil {
		return nil, err
	}

	values := out.GetFields()["repositories"].GetListValue().GetValues()
	records := make([]app.RepositoryRecord, 0, len(values))
	for _, v := range values {
		f := v.GetStructValue().GetFields()
		records = append(records, app.RepositoryRecord{
			Name:        f["name"].GetStringValue(),
			Description: f["description"].GetStringValue(),
			URL:         f["url"].GetStringValue(),
			Language:    f["language"].GetStringValue(),
			Commits:     int(f["commits"].GetNumberValue()),
			Branches:    int(f["branches"].GetNumberValue()),
			Stars:       int(f["stars"].GetNumberValue()),
			Forks:       int(f["forks"].GetNumberValue()),
		})
	}

	return records, nil
}

func (c *Client) invoke(ctx context.Context, method string, in map[string]interface{}) (*structpb.Struct, error) {
	req, err := structpb.NewStruct(in)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, req, out); err != nil {
		return nil, fmt.Errorf("calling %s: %w", method, err)
	}

	return out, nil
}
