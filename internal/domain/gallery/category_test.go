package gallery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryForKey(t *testing.T) {
	assert.Equal(t, "beard", CategoryForKey("beard/fade-1.jpg"))
	assert.Equal(t, "haircuts", CategoryForKey("fade-1.jpg"))
	assert.Equal(t, "full-service", CategoryForKey("full service/combo.jpg"))
	assert.Equal(t, "premium", CategoryForKey("Premium/gold.png"))

	// Unknown folders pass through slugified.
	assert.Equal(t, "wedding-prep", CategoryForKey("wedding prep/groom.jpg"))
}

func TestTitleForKey(t *testing.T) {
	assert.Equal(t, "Fade 1", TitleForKey("beard/fade-1.jpg"))
	assert.Equal(t, "Hot towel shave", TitleForKey("shave/hot_towel-shave.jpeg"))
	assert.Equal(t, "Media", TitleForKey("haircuts/.jpg"))
}

func TestIsMediaKey(t *testing.T) {
	assert.True(t, IsMediaKey("beard/fade-1.jpg", "image/jpeg"))
	assert.True(t, IsMediaKey("clips/trim.mp4", "video/mp4"))

	assert.False(t, IsMediaKey("beard/", ""))         // folder placeholder
	assert.False(t, IsMediaKey("beard/readme", ""))   // no extension
	assert.False(t, IsMediaKey("notes.txt", "text/plain"))
}

func TestFixtureSource(t *testing.T) {
	src := FixtureSource{}

	all, err := src.Fetch(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 12)

	again, err := src.Fetch(context.Background(), "all")
	require.NoError(t, err)
	assert.Len(t, again, 12)

	beard, err := src.Fetch(context.Background(), "beard")
	require.NoError(t, err)
	require.Len(t, beard, 1)
	assert.Equal(t, "Beard Grooming", beard[0].Title)
}

type stubSource struct {
	name   string
	images []Image
	err    error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Fetch(context.Context, string) ([]Image, error) {
	return s.images, s.err
}

func TestResolveDemotesFailedTiers(t *testing.T) {
	want := []Image{{ID: "x", Title: "From second tier"}}

	images, ok := Resolve(
		context.Background(),
		"",
		stubSource{name: "first", err: assert.AnError},
		stubSource{name: "second", images: want},
		stubSource{name: "third", images: []Image{{ID: "unreached"}}},
	)

	assert.True(t, ok)
	assert.Equal(t, want, images)
}

func TestResolveSkipsEmptyTiers(t *testing.T) {
	want := []Image{{ID: "x"}}

	images, ok := Resolve(
		context.Background(),
		"",
		stubSource{name: "empty"},
		stubSource{name: "full", images: want},
	)

	assert.True(t, ok)
	assert.Equal(t, want, images)
}

func TestResolveExhaustion(t *testing.T) {
	images, ok := Resolve(
		context.Background(),
		"",
		stubSource{name: "a", err: assert.AnError},
		stubSource{name: "b"},
	)

	assert.False(t, ok)
	assert.Empty(t, images)
	assert.NotNil(t, images)
}
