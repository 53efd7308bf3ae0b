package auth

import "time"

// Service implements the identity use cases: signup, login and token
// verification. All orchestration lives here; transport and storage are
// behind the ports.
type Service struct {
	users      UserRepo
	hasher     PasswordHasher
	signer     TokenSigner
	tokenTTL   time.Duration
	department string
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, tokenTTL time.Duration, department string) *Service {
	return &Service{
		users:      users,
		hasher:     hasher,
		signer:     signer,
		tokenTTL:   tokenTTL,
		department: department,
	}
}
