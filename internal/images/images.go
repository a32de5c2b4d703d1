package images

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"vendafacil/internal/storage"
)

// KeyPrefix é o prefixo das chaves de imagem no armazenamento local.
const KeyPrefix = "product_image_"

// StaticPathPrefix é o caminho dos assets estáticos usado como fallback de
// resolução.
const StaticPathPrefix = "/vendafacil/assets/images/"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// Manager guarda imagens de produto (data-URLs) no armazenamento local, uma
// chave por imagem, e resolve referências opacas de imagem.
type Manager struct {
	store *storage.Store
}

// NewManager cria um Manager sobre o Store injetado.
func NewManager(store *storage.Store) *Manager {
	return &Manager{store: store}
}

// FileName gera o nome de arquivo de uma imagem enviada: timestamp mais o
// nome original com caracteres fora de [a-zA-Z0-9.] trocados por "_".
func FileName(originalName string) string {
	return fmt.Sprintf("produto_%d_%s", time.Now().UnixMilli(), unsafeChars.ReplaceAllString(originalName, "_"))
}

// Save armazena a imagem sob um nome gerado e retorna esse nome. Falha de
// escrita é engolida pelo adaptador de persistência; o nome retornado segue
// válido como referência.
func (m *Manager) Save(data, originalName string) string {
	name := FileName(originalName)
	m.store.Save(KeyPrefix+name, data)
	return name
}

// Get retorna a imagem armazenada sob o nome, se existir.
func (m *Manager) Get(name string) (string, bool) {
	var data string
	if m.store.Load(KeyPrefix+name, &data) {
		return data, true
	}
	return "", false
}

// Delete remove a imagem armazenada sob o nome.
func (m *Manager) Delete(name string) {
	m.store.Remove(KeyPrefix + name)
}

// Resolve transforma uma referência opaca de imagem em algo exibível:
// primeiro o armazenamento local, depois data-URLs como estão, por fim o
// caminho de assets estáticos.
func (m *Manager) Resolve(ref string) string {
	if data, ok := m.Get(ref); ok {
		return data
	}
	if strings.HasPrefix(ref, "data:") {
		return ref
	}
	return StaticPathPrefix + ref
}
