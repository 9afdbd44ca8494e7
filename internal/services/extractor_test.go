package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextRejectsUnsupportedExtension(t *testing.T) {
	extractor := NewExtractorService()

	_, err := extractor.ExtractText("resume.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file extension")
}

func TestExtractTextReportsOpenFailure(t *testing.T) {
	extractor := NewExtractorService()

	missing := filepath.Join(t.TempDir(), "does-not-exist.pdf")
	_, err := extractor.ExtractText(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open PDF")
}
