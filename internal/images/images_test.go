package images

import (
	"strings"
	"testing"

	"vendafacil/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileNameSanitizesOriginalName(t *testing.T) {
	name := FileName("Vaso Cachepô 15x13cm.jpg")

	assert.True(t, strings.HasPrefix(name, "produto_"))
	assert.True(t, strings.HasSuffix(name, "Vaso_Cachep__15x13cm.jpg"))
	assert.NotContains(t, name, " ")
}

func TestSaveAndGet(t *testing.T) {
	m := NewManager(storage.NewStore(t.TempDir()))

	name := m.Save("data:image/png;base64,AAAA", "foto.png")
	require.NotEmpty(t, name)

	data, ok := m.Get(name)
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,AAAA", data)
}

func TestDelete(t *testing.T) {
	m := NewManager(storage.NewStore(t.TempDir()))

	name := m.Save("data:image/png;base64,AAAA", "foto.png")
	m.Delete(name)

	_, ok := m.Get(name)
	assert.False(t, ok)
}

func TestResolvePrefersLocalImage(t *testing.T) {
	m := NewManager(storage.NewStore(t.TempDir()))

	name := m.Save("data:image/png;base64,LOCAL", "foto.png")
	assert.Equal(t, "data:image/png;base64,LOCAL", m.Resolve(name))
}

func TestResolvePassesThroughDataURL(t *testing.T) {
	m := NewManager(storage.NewStore(t.TempDir()))

	ref := "data:image/jpeg;base64,QQQQ"
	assert.Equal(t, ref, m.Resolve(ref))
}

func TestResolveFallsBackToStaticPath(t *testing.T) {
	m := NewManager(storage.NewStore(t.TempDir()))

	assert.Equal(t, StaticPathPrefix+"racao_cachorro.png", m.Resolve("racao_cachorro.png"))
}
