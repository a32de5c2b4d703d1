package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Store é o adaptador de persistência local: um diretório com um arquivo
// JSON por chave, equivalente ao localStorage do navegador. A persistência é
// um cache de melhor esforço do estado da UI, não uma garantia de
// durabilidade: falhas de leitura e escrita são registradas no log e
// engolidas, nunca propagadas ao chamador.
type Store struct {
	mu  sync.RWMutex
	dir string
}

// NewStore cria um Store sobre o diretório informado.
func NewStore(dir string) *Store {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Storage.NewStore - Error creating data dir %s: %v", dir, err)
	}
	return &Store{dir: dir}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load lê o valor JSON da chave em v. Retorna false (ausente) para chave
// inexistente, arquivo ilegível ou JSON inválido; nunca retorna erro.
func (s *Store) Load(key string, v any) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Storage.Load - Error reading key %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Storage.Load - Invalid JSON for key %s: %v", key, err)
		return false
	}
	return true
}

// Save grava o valor JSON sob a chave. Falhas são registradas e engolidas.
func (s *Store) Save(key string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("Storage.Save - Error encoding key %s: %v", key, err)
		return
	}
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		log.Printf("Storage.Save - Error writing key %s: %v", key, err)
	}
}

// Remove apaga a chave. Falhas são registradas e engolidas.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		log.Printf("Storage.Remove - Error removing key %s: %v", key, err)
	}
}
