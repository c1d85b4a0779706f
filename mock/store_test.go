package mock_test

import (
	"context"
	"testing"

	"github.com/ourgreenway/scrape2tex"
	"github.com/ourgreenway/scrape2tex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageStore_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ scrape2tex.ImageStore = &mock.ImageStore{}
}

func TestImageStore_SaveImage(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SaveImageFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		s := &mock.ImageStore{
			SaveImageFn: func(_ context.Context, sourceURL string, _ []byte) (string, error) {
				calledWith = sourceURL
				return "images/a.png", nil
			},
		}

		path, err := s.SaveImage(context.Background(), "https://example.com/a.png", []byte("png"))

		require.NoError(t, err)
		assert.Equal(t, "images/a.png", path)
		assert.Equal(t, "https://example.com/a.png", calledWith)
	})
}
