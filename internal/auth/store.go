package auth

import "context"

type User struct {
	Username string
	Hash     []byte
}

// UserStore keeps credentials. Usernames are not required to be unique;
// lookups return the earliest record.
type UserStore interface {
	Add(ctx context.Context, u User) error
	FindByUsername(ctx context.Context, username string) (User, bool, error)
	Ping(ctx context.Context) error
}
