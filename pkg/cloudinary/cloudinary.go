package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// Client uploads site images to Cloudinary and removes them again.
type Client interface {
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (url string, err error)
	DeleteByURL(ctx context.Context, url string) error
}

// Eager transformation applied on upload for fast frontend loading.
const imageEager = "q_auto,f_auto,w_1600,c_limit"

var eagerAsyncFalse = false

var ErrNotCloudinaryURL = errors.New("not a cloudinary upload URL")

type clientImpl struct {
	uploader *uploader.API
}

// UploadImage uploads an image with eager optimizations and returns its secure URL.
func (c *clientImpl) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	result, err := c.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:     folder,
		PublicID:   publicID,
		Eager:      imageEager,
		EagerAsync: &eagerAsyncFalse,
	})
	if err != nil {
		return "", err
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", result.Error.Message)
	}
	return result.SecureURL, nil
}

// DeleteByURL destroys the asset a previously returned URL points at.
func (c *clientImpl) DeleteByURL(ctx context.Context, url string) error {
	publicID, err := PublicIDFromURL(url)
	if err != nil {
		return err
	}
	result, err := c.uploader.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if result.Error.Message != "" {
		return fmt.Errorf("cloudinary: %s", result.Error.Message)
	}
	return nil
}

// PublicIDFromURL extracts "folder/name" from a res.cloudinary.com delivery URL,
// dropping transformations, the version segment and the file extension.
func PublicIDFromURL(url string) (string, error) {
	if !strings.Contains(url, "res.cloudinary.com/") {
		return "", ErrNotCloudinaryURL
	}
	_, rest, ok := strings.Cut(url, "/upload/")
	if !ok || rest == "" {
		return "", ErrNotCloudinaryURL
	}
	segs := strings.Split(rest, "/")
	// skip transformation segments and the version, which precede the public ID
	start := 0
	for i, s := range segs {
		if isVersion(s) {
			start = i + 1
			break
		}
	}
	if start == 0 {
		for start < len(segs)-1 && strings.Contains(segs[start], ",") {
			start++
		}
	}
	id := strings.Join(segs[start:], "/")
	id = strings.TrimSuffix(id, path.Ext(id))
	if id == "" {
		return "", ErrNotCloudinaryURL
	}
	return id, nil
}

func isVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NewClientFromParams builds a Client from Cloudinary cloud name, API key, and secret.
func NewClientFromParams(cloudName, apiKey, apiSecret string) (Client, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &clientImpl{
		uploader: up,
	}, nil
}
