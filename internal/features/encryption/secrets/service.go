package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	files_utils "diligent-backend/internal/util/files"

	"github.com/google/uuid"
)

// SecretKeyService resolves the token signing secret. A configured secret
// wins; otherwise a random key is generated once into secretKeyPath.
type SecretKeyService struct {
	configuredSecret string
	secretKeyPath    string

	mu        sync.Mutex
	cachedKey *string
}

func (s *SecretKeyService) GetSecretKey() (string, error) {
	if s.configuredSecret != "" {
		return s.configuredSecret, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cachedKey != nil {
		return *s.cachedKey, nil
	}

	data, err := os.ReadFile(s.secretKeyPath)
	if err != nil {
		if os.IsNotExist(err) {
			newKey := s.generateNewSecretKey()

			if err := files_utils.EnsureDirectories(filepath.Dir(s.secretKeyPath)); err != nil {
				return "", err
			}

			if err := os.WriteFile(s.secretKeyPath, []byte(newKey), 0600); err != nil {
				return "", fmt.Errorf("failed to write new secret key: %w", err)
			}

			s.cachedKey = &newKey
			return newKey, nil
		}
		return "", fmt.Errorf("failed to read secret key file: %w", err)
	}

	key := string(data)
	if key == "" {
		return "", fmt.Errorf("secret key file %s is empty", s.secretKeyPath)
	}

	s.cachedKey = &key
	return key, nil
}

func (s *SecretKeyService) generateNewSecretKey() string {
	return uuid.New().String() + uuid.New().String()
}
