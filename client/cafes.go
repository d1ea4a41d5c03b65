package client

import (
	"context"
	"net/http"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

type CafesService struct {
	c *Client
}

func (c *Client) Cafes() *CafesService {
	return &CafesService{c: c}
}

type CafeRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Image   string `json:"image,omitempty"`
}

func (s *CafesService) Get(ctx context.Context) (*domain.Cafe, Envelope) {
	return into[*domain.Cafe](s.c.Get(ctx, "/cafes"))
}

func (s *CafesService) Create(ctx context.Context, req CafeRequest) (*domain.Cafe, Envelope) {
	return into[*domain.Cafe](s.c.Post(ctx, "/cafes", req))
}

func (s *CafesService) Update(ctx context.Context, id string, req CafeRequest) (*domain.Cafe, Envelope) {
	return into[*domain.Cafe](s.c.Put(ctx, "/cafes/"+id, req))
}

func (r CafeRequest) formFields() map[string]string {
	return map[string]string{
		"name":    r.Name,
		"address": r.Address,
	}
}

// CreateWithImage submits the cafe profile as a multipart form with the image
// attached.
func (s *CafesService) CreateWithImage(ctx context.Context, req CafeRequest, imageName string, image []byte) (*domain.Cafe, Envelope) {
	file := &FileField{Field: "image", FileName: imageName, Data: image}
	return into[*domain.Cafe](s.c.SubmitForm(ctx, http.MethodPost, "/cafes", req.formFields(), file))
}

func (s *CafesService) UpdateWithImage(ctx context.Context, id string, req CafeRequest, imageName string, image []byte) (*domain.Cafe, Envelope) {
	file := &FileField{Field: "image", FileName: imageName, Data: image}
	return into[*domain.Cafe](s.c.SubmitForm(ctx, http.MethodPut, "/cafes/"+id, req.formFields(), file))
}
