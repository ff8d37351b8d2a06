package address

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedGazetteer(t *testing.T) {
	g, err := NewEmbedded()
	require.NoError(t, err)
	ctx := context.Background()

	provinces, err := g.Provinces(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, provinces)

	codes := make([]string, 0, len(provinces))
	for _, p := range provinces {
		codes = append(codes, p.Code)
		assert.NotEmpty(t, p.Name)
	}
	assert.Contains(t, codes, "12")

	districts, err := g.Districts(ctx, "12")
	require.NoError(t, err)
	assert.Equal(t, "1201", districts[0].Code)

	communes, err := g.Communes(ctx, "12", "1201")
	require.NoError(t, err)
	assert.Equal(t, "120101", communes[0].Code)

	villages, err := g.Villages(ctx, "12", "1201", "120101")
	require.NoError(t, err)
	assert.Equal(t, "12010101", villages[0].Code)
}

func TestEmbeddedGazetteerEveryChildResolves(t *testing.T) {
	g, err := NewEmbedded()
	require.NoError(t, err)
	ctx := context.Background()

	provinces, _ := g.Provinces(ctx)
	for _, p := range provinces {
		districts, _ := g.Districts(ctx, p.Code)
		assert.NotEmpty(t, districts, p.Code)
		for _, d := range districts {
			communes, _ := g.Communes(ctx, p.Code, d.Code)
			assert.NotEmpty(t, communes, d.Code)
			for _, c := range communes {
				villages, _ := g.Villages(ctx, p.Code, d.Code, c.Code)
				assert.NotEmpty(t, villages, c.Code)
			}
		}
	}
}

func TestStaticMissingKeysAreEmpty(t *testing.T) {
	g, err := NewEmbedded()
	require.NoError(t, err)
	ctx := context.Background()

	districts, err := g.Districts(ctx, "99")
	assert.NoError(t, err)
	assert.Empty(t, districts)

	// a commune under the wrong province does not resolve
	villages, err := g.Villages(ctx, "17", "1201", "120101")
	assert.NoError(t, err)
	assert.Empty(t, villages)
}

func TestStaticReturnsCopies(t *testing.T) {
	g, err := NewEmbedded()
	require.NoError(t, err)
	ctx := context.Background()

	first, _ := g.Provinces(ctx)
	first[0].Name = "changed"
	second, _ := g.Provinces(ctx)
	assert.NotEqual(t, "changed", second[0].Name)
}

func TestNewStaticRejectsGarbage(t *testing.T) {
	_, err := NewStatic([]byte("{"))
	assert.Error(t, err)
}
