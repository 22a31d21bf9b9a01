package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"beautygpt-api/repository"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800

	// Upper bound for a downloaded source image
	maxSourceImageBytes = 10 << 20

	// DefaultImageFetchTimeout bounds a single upstream image download
	DefaultImageFetchTimeout = 15 * time.Second
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrNoProductImage   = errors.New("product has no image")
	ErrUnknownImageSize = errors.New("unknown image size")
	ErrImageFetch       = errors.New("failed to fetch product image")
)

// ImageService serves resized JPEG versions of product images, cached on disk
type ImageService struct {
	repository repository.ProductRepositoryInterface
	httpClient *http.Client
	cacheDir   string
}

// NewImageService creates a new ImageService.
// A nil httpClient is replaced by one that gives up after DefaultImageFetchTimeout.
func NewImageService(repo repository.ProductRepositoryInterface, httpClient *http.Client, cacheDir string) *ImageService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultImageFetchTimeout}
	}
	return &ImageService{
		repository: repo,
		httpClient: httpClient,
		cacheDir:   cacheDir,
	}
}

// EnsureCacheDir ensures the cache directory exists, creates it if it doesn't
func (s *ImageService) EnsureCacheDir() error {
	if err := os.MkdirAll(s.cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// CachePath returns the cache file path for a given product ID and size
func (s *ImageService) CachePath(productID int, size string) string {
	return filepath.Join(s.cacheDir, fmt.Sprintf("product_%d_%s.jpg", productID, size))
}

// ProductImage returns the optimized JPEG for a product.
// size is "thumb" or "medium".
func (s *ImageService) ProductImage(ctx context.Context, productID int, size string) ([]byte, error) {
	logger := zerolog.Ctx(ctx)

	if _, _, err := imageSettings(size); err != nil {
		return nil, err
	}

	product, ok := s.repository.GetByID(productID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, productID)
	}
	if product.ImageURL == "" {
		return nil, fmt.Errorf("%w: id %d", ErrNoProductImage, productID)
	}

	cachePath := s.CachePath(productID, size)
	if data, err := os.ReadFile(cachePath); err == nil {
		logger.Debug().Str("path", cachePath).Msg("image cache hit")
		return data, nil
	}

	raw, err := s.fetch(ctx, product.ImageURL)
	if err != nil {
		return nil, err
	}

	optimized, err := OptimizeImage(raw, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageFetch, err)
	}

	if err := s.saveToCache(cachePath, optimized); err != nil {
		// The image is still served, only caching failed
		logger.Warn().Err(err).Str("path", cachePath).Msg("⚠️  failed to cache image")
	} else {
		logger.Info().Str("path", cachePath).Msg("✓ Image cached")
	}

	return optimized, nil
}

func (s *ImageService) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageFetch, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: image endpoint returned status %d", ErrImageFetch, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceImageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageFetch, err)
	}
	return data, nil
}

// saveToCache writes through a temp file so readers never see a partial image
func (s *ImageService) saveToCache(cachePath string, data []byte) error {
	if err := s.EnsureCacheDir(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.cacheDir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}

	if err := os.Rename(tmp.Name(), cachePath); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

func imageSettings(size string) (maxDim int, quality int, err error) {
	switch size {
	case "thumb":
		return maxSizeThumb, qualityThumb, nil
	case "medium":
		return maxSizeMedium, qualityMedium, nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownImageSize, size)
	}
}

// OptimizeImage decodes imageData (PNG, JPEG, GIF, ...), fits it into the size bound
// without upscaling and re-encodes it as JPEG.
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	maxDim, quality, err := imageSettings(size)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(imageData), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
