package client

import (
	"context"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

type ImportsService struct {
	c *Client
}

func (c *Client) Imports() *ImportsService {
	return &ImportsService{c: c}
}

type ImportQueued struct {
	TaskID string `json:"taskId"`
}

// Upload queues a menu spreadsheet for async import.
func (s *ImportsService) Upload(ctx context.Context, fileName string, file []byte) (*ImportQueued, Envelope) {
	return into[*ImportQueued](s.c.PostFile(ctx, "/menus/import", "file", fileName, file))
}

func (s *ImportsService) Status(ctx context.Context, taskID string) (*domain.ImportTask, Envelope) {
	return into[*domain.ImportTask](s.c.Get(ctx, "/menus/import/"+taskID))
}
