package bst

import (
	"fmt"
	"strings"
)

// User is the record stored by the lesson's user databases.
type User struct {
	Username string
	Name     string
	Email    string
}

// Introduce returns the one-line description printed by the databases.
func (u *User) Introduce() string {
	return fmt.Sprintf("Username: %s, Name: %s, Email: %s", u.Username, u.Name, u.Email)
}

// String implements fmt.Stringer.
func (u *User) String() string {
	return fmt.Sprintf("user(username=%q, name=%q, email=%q)", u.Username, u.Name, u.Email)
}

// UserDB is the common surface of LinearUserDB and TreeUserDB.
type UserDB interface {
	Insert(u *User) error
	Find(username string) (*User, error)
	Update(username, email string) error
	List() []string
	Len() int
}

// DBOption configures a user database.
type DBOption func(*dbConfig)

type dbConfig struct {
	caseSensitive bool
}

// WithCaseInsensitive makes username lookups ignore letter case.
// "Alice" and "alice" then refer to the same user.
func WithCaseInsensitive() DBOption {
	return func(c *dbConfig) { c.caseSensitive = false }
}

func newDBConfig(opts []DBOption) dbConfig {
	c := dbConfig{caseSensitive: true}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func (c dbConfig) key(username string) string {
	if c.caseSensitive {
		return username
	}

	return strings.ToLower(username)
}

func validateUser(u *User) error {
	if u == nil {
		return fmt.Errorf("%w: nil user", ErrInvalidUser)
	}
	if u.Username == "" {
		return fmt.Errorf("%w: username cannot be empty", ErrInvalidUser)
	}

	return nil
}

// LinearUserDB stores users in insertion order and finds them by scanning.
// Every lookup is O(n); it is the baseline the BST version is measured against.
type LinearUserDB struct {
	cfg   dbConfig
	users []*User
}

// NewLinearUserDB returns an empty LinearUserDB.
func NewLinearUserDB(opts ...DBOption) *LinearUserDB {
	return &LinearUserDB{cfg: newDBConfig(opts)}
}

// Insert appends u after checking that its username is unused.
func (db *LinearUserDB) Insert(u *User) error {
	if err := validateUser(u); err != nil {
		return err
	}
	if db.index(u.Username) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateUser, u.Username)
	}
	db.users = append(db.users, u)

	return nil
}

func (db *LinearUserDB) index(username string) int {
	k := db.cfg.key(username)
	for i, u := range db.users {
		if db.cfg.key(u.Username) == k {
			return i
		}
	}

	return -1
}

// Find returns the user with the given username, or ErrUserNotFound.
func (db *LinearUserDB) Find(username string) (*User, error) {
	i := db.index(username)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, username)
	}

	return db.users[i], nil
}

// Update replaces the email of an existing user.
func (db *LinearUserDB) Update(username, email string) error {
	u, err := db.Find(username)
	if err != nil {
		return err
	}
	u.Email = email

	return nil
}

// List returns Introduce lines in insertion order.
func (db *LinearUserDB) List() []string {
	out := make([]string, 0, len(db.users))
	for _, u := range db.users {
		out = append(out, u.Introduce())
	}

	return out
}

// Len returns the number of users.
func (db *LinearUserDB) Len() int { return len(db.users) }

// TreeUserDB indexes users by username in a Tree.
// Lookups cost O(h): O(log n) on random input, O(n) on sorted input.
type TreeUserDB struct {
	cfg  dbConfig
	tree *Tree[string, *User]
}

// NewTreeUserDB returns an empty TreeUserDB.
func NewTreeUserDB(opts ...DBOption) *TreeUserDB {
	return &TreeUserDB{cfg: newDBConfig(opts), tree: New[string, *User]()}
}

// Insert adds u under its (possibly case-folded) username.
func (db *TreeUserDB) Insert(u *User) error {
	if err := validateUser(u); err != nil {
		return err
	}
	if err := db.tree.Insert(db.cfg.key(u.Username), u); err != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateUser, u.Username)
	}

	return nil
}

// Find returns the user with the given username, or ErrUserNotFound.
func (db *TreeUserDB) Find(username string) (*User, error) {
	u, ok := db.tree.Search(db.cfg.key(username))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, username)
	}

	return u, nil
}

// Update replaces the email of an existing user.
func (db *TreeUserDB) Update(username, email string) error {
	u, err := db.Find(username)
	if err != nil {
		return err
	}
	u.Email = email

	return nil
}

// List returns Introduce lines in ascending username order.
func (db *TreeUserDB) List() []string {
	out := make([]string, 0, db.tree.Len())
	db.tree.Walk(func(_ string, u *User) { out = append(out, u.Introduce()) })

	return out
}

// Len returns the number of users.
func (db *TreeUserDB) Len() int { return db.tree.Len() }

// Height exposes the index height, useful when comparing with log2(n).
func (db *TreeUserDB) Height() int { return db.tree.Height() }
