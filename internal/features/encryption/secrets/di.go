package secrets

func NewSecretKeyService(configuredSecret string, secretKeyPath string) *SecretKeyService {
	return &SecretKeyService{
		configuredSecret: configuredSecret,
		secretKeyPath:    secretKeyPath,
	}
}
