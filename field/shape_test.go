package field_test

import (
	"testing"

	"github.com/plus3/fieldtris/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMask(t *testing.T) {
	m, err := field.ParseMask(
		"#...",
		".#..",
		"..#.",
		"...#",
	)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Count())
	assert.True(t, m[0][0])
	assert.True(t, m[3][3])
	assert.False(t, m[1][0])
	assert.Equal(t, "#...\n.#..\n..#.\n...#", m.String())

	_, err = field.ParseMask("....", "....")
	assert.Error(t, err)

	_, err = field.ParseMask("....", "...", "....", "....")
	assert.Error(t, err)
}

func TestMaskRotate(t *testing.T) {
	bar, err := field.ParseMask(
		".#..",
		".#..",
		".#..",
		".#..",
	)
	require.NoError(t, err)

	cw := bar.Rotate(field.Clockwise)
	assert.Equal(t, "....\n####\n....\n....", cw.String())

	ccw := bar.Rotate(field.CounterClockwise)
	assert.Equal(t, "....\n....\n####\n....", ccw.String())

	for _, catalog := range []field.Catalog{field.ClassicCatalog, field.StandardCatalog} {
		for _, shape := range catalog {
			t.Run(shape.Name, func(t *testing.T) {
				m := shape.Mask
				assert.Equal(t, m, m.Rotate(field.Clockwise).Rotate(field.CounterClockwise))
				assert.Equal(t, m, m.Rotate(field.CounterClockwise).Rotate(field.Clockwise))

				turned := m
				for range 4 {
					turned = turned.Rotate(field.Clockwise)
					assert.Equal(t, m.Count(), turned.Count())
				}
				assert.Equal(t, m, turned)
			})
		}
	}
}

func TestCatalogs(t *testing.T) {
	assert.Len(t, field.ClassicCatalog, 3)
	assert.Len(t, field.StandardCatalog, 7)
	for _, shape := range field.StandardCatalog {
		assert.Equal(t, 4, shape.Mask.Count(), shape.Name)
	}

	c, ok := field.CatalogByName("standard")
	assert.True(t, ok)
	assert.Equal(t, field.StandardCatalog, c)

	c, ok = field.CatalogByName("")
	assert.True(t, ok)
	assert.Equal(t, field.ClassicCatalog, c)

	_, ok = field.CatalogByName("pentomino")
	assert.False(t, ok)
}
