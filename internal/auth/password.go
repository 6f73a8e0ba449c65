package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt only looks at the first 72 bytes; longer inputs are cut rather
// than rejected so any string can be hashed.
const bcryptMaxInput = 72

type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword(clip(password), h.cost)
}

func (h *Hasher) Verify(password string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, clip(password)) == nil
}

func clip(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxInput {
		b = b[:bcryptMaxInput]
	}
	return b
}
