package logincode

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	ErrNotFound        = errors.New("login code not found or expired")
	ErrMismatch        = errors.New("login code does not match")
	ErrTooManyAttempts = errors.New("too many verification attempts")
)

const (
	codeTTL     = 10 * time.Minute
	maxAttempts = 5
)

// Store keeps one-time login codes in redis with a TTL, so codes survive
// process restarts and work across replicas.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func codeKey(email string) string {
	return "logincode:" + strings.ToLower(strings.TrimSpace(email))
}

func attemptsKey(email string) string {
	return "logincode_attempts:" + strings.ToLower(strings.TrimSpace(email))
}

// GenerateCode returns a random zero-padded 6-digit code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Issue stores a fresh code for the address, replacing any previous one and
// resetting the attempt counter.
func (s *Store) Issue(ctx context.Context, email, code string) error {
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, codeKey(email), code, codeTTL)
	pipe.Del(ctx, attemptsKey(email))
	_, err := pipe.Exec(ctx)
	return err
}

// verifyScript compares and consumes the stored code in one round trip, so
// two concurrent verifications cannot both succeed.
var verifyScript = redis.NewScript(`
local stored = redis.call("GET", KEYS[1])
if not stored then
	return -1
end
if stored ~= ARGV[1] then
	return 0
end
redis.call("DEL", KEYS[1])
redis.call("DEL", KEYS[2])
return 1
`)

// Verify consumes the code on success. Mismatches count against a small
// attempt budget; exhausting it invalidates the code.
func (s *Store) Verify(ctx context.Context, email, code string) error {
	attempts, err := s.rdb.Incr(ctx, attemptsKey(email)).Result()
	if err != nil {
		return err
	}
	s.rdb.Expire(ctx, attemptsKey(email), codeTTL)

	if attempts > maxAttempts {
		s.rdb.Del(ctx, codeKey(email))
		return ErrTooManyAttempts
	}

	res, err := verifyScript.Run(
		ctx, s.rdb,
		[]string{codeKey(email), attemptsKey(email)},
		code,
	).Int()
	if err != nil {
		return err
	}

	switch res {
	case 1:
		return nil
	case 0:
		return ErrMismatch
	default:
		return ErrNotFound
	}
}
