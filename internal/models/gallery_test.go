package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCoverExplicit(t *testing.T) {
	cover := "img-cover"
	album := GalleryAlbum{CoverImageID: &cover}
	images := []GalleryImage{{ImageID: "img-a"}, {ImageID: "img-b"}}

	resolved := ResolveCover(album, images)
	require.NotNil(t, resolved)
	assert.Equal(t, "img-cover", *resolved)
}

func TestResolveCoverFallsBackToFirstImage(t *testing.T) {
	album := GalleryAlbum{}
	images := []GalleryImage{{ImageID: "img-a"}, {ImageID: "img-b"}, {ImageID: "img-c"}}

	resolved := ResolveCover(album, images)
	require.NotNil(t, resolved)
	assert.Equal(t, "img-a", *resolved)

	// removing the first image shifts the fallback
	resolved = ResolveCover(album, images[1:])
	require.NotNil(t, resolved)
	assert.Equal(t, "img-b", *resolved)
}

func TestResolveCoverEmptyAlbum(t *testing.T) {
	assert.Nil(t, ResolveCover(GalleryAlbum{}, nil))
}

func TestParentAllowed(t *testing.T) {
	assert.True(t, ParentAllowed(PageTypePressItem, PageTypePressIndex))
	assert.True(t, ParentAllowed(PageTypePressAlbum, PageTypePressCategory))
	assert.False(t, ParentAllowed(PageTypePressItem, PageTypeEventIndex))
	assert.False(t, ParentAllowed(PageTypePressIndex, PageTypePressIndex))
}
