package main

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildForm(t *testing.T, fields map[string]string, imageName string, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	if image != nil {
		part, err := mw.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestParseProductFormWithImage(t *testing.T) {
	picture := []byte{0x89, 'P', 'N', 'G'}
	body, contentType := buildForm(t, map[string]string{
		"name":      "latte",
		"price":     "5.5",
		"category":  "coffee",
		"available": "true",
	}, "latte.png", picture)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", body)
	req.Header.Set("Content-Type", contentType)
	require.True(t, isMultipart(req))

	payload, image, imageName, err := parseProductForm(req)
	require.NoError(t, err)

	assert.Equal(t, "latte", payload.Name)
	assert.Equal(t, 5.5, payload.Price)
	assert.Equal(t, "coffee", payload.Category)
	assert.True(t, payload.Available)
	assert.Equal(t, "latte.png", imageName)
	assert.Equal(t, picture, image)
}

func TestParseProductFormWithoutImage(t *testing.T) {
	body, contentType := buildForm(t, map[string]string{
		"name":  "espresso",
		"price": "3",
	}, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", body)
	req.Header.Set("Content-Type", contentType)

	payload, image, imageName, err := parseProductForm(req)
	require.NoError(t, err)

	assert.Equal(t, "espresso", payload.Name)
	assert.Nil(t, image)
	assert.Empty(t, imageName)
}

func TestParseProductFormRejectsBadPrice(t *testing.T) {
	body, contentType := buildForm(t, map[string]string{
		"name":  "espresso",
		"price": "not-a-number",
	}, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", body)
	req.Header.Set("Content-Type", contentType)

	_, _, _, err := parseProductForm(req)
	require.Error(t, err)
}

func TestParseCafeForm(t *testing.T) {
	picture := []byte("jpegbytes")
	body, contentType := buildForm(t, map[string]string{
		"name":    "Mocha House",
		"address": "12 Bean St",
	}, "front.jpg", picture)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cafes", body)
	req.Header.Set("Content-Type", contentType)

	payload, image, imageName, err := parseCafeForm(req)
	require.NoError(t, err)

	assert.Equal(t, "Mocha House", payload.Name)
	assert.Equal(t, "12 Bean St", payload.Address)
	assert.Equal(t, "front.jpg", imageName)
	assert.Equal(t, picture, image)
}
