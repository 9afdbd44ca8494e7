package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRawDocumentCountsWhitespaceDelimitedUnits(t *testing.T) {
	doc := NewRawDocument("one two\tthree\nfour  five", LabelResume)

	assert.Equal(t, 5, doc.WordCount)
	assert.Equal(t, LabelResume, doc.Label)
}

func TestNewRawDocumentEmptyText(t *testing.T) {
	doc := NewRawDocument("", LabelJobDescription)
	assert.Equal(t, 0, doc.WordCount)
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("recruiter")
	require.NoError(t, err)
	assert.Equal(t, RoleRecruiter, role)

	role, err = ParseRole("applier")
	require.NoError(t, err)
	assert.Equal(t, RoleApplier, role)

	_, err = ParseRole("manager")
	assert.Error(t, err)

	_, err = ParseRole("")
	assert.Error(t, err)
}

func TestNormalizedDocumentText(t *testing.T) {
	doc := NormalizedDocument{Tokens: []string{"python", "docker"}}
	assert.Equal(t, "python docker", doc.Text())
	assert.False(t, doc.IsEmpty())

	assert.True(t, NormalizedDocument{}.IsEmpty())
}
