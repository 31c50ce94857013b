package bst_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldsa/bst"
)

// databases returns a fresh instance of every UserDB implementation.
func databases(opts ...bst.DBOption) map[string]bst.UserDB {
	return map[string]bst.UserDB{
		"linear": bst.NewLinearUserDB(opts...),
		"tree":   bst.NewTreeUserDB(opts...),
	}
}

func TestUserDB_Contract(t *testing.T) {
	for name, db := range databases() {
		t.Run(name, func(t *testing.T) {
			aakash := &bst.User{Username: "aakash123", Name: "Aakash", Email: "aakash@example.com"}
			require.NoError(t, db.Insert(aakash))
			require.NoError(t, db.Insert(&bst.User{Username: "biraj", Name: "Biraj", Email: "biraj@example.com"}))

			assert.ErrorIs(t, db.Insert(nil), bst.ErrInvalidUser)
			assert.ErrorIs(t, db.Insert(&bst.User{}), bst.ErrInvalidUser)
			assert.ErrorIs(t, db.Insert(&bst.User{Username: "aakash123"}), bst.ErrDuplicateUser)

			u, err := db.Find("aakash123")
			require.NoError(t, err)
			assert.Equal(t, "Username: aakash123, Name: Aakash, Email: aakash@example.com", u.Introduce())

			_, err = db.Find("AAKASH123")
			assert.ErrorIs(t, err, bst.ErrUserNotFound, "lookups are case sensitive by default")

			require.NoError(t, db.Update("biraj", "b@new.com"))
			u, err = db.Find("biraj")
			require.NoError(t, err)
			assert.Equal(t, "b@new.com", u.Email)
			assert.ErrorIs(t, db.Update("nobody", "x"), bst.ErrUserNotFound)

			assert.Equal(t, 2, db.Len())
			assert.Len(t, db.List(), 2)
		})
	}
}

func TestUserDB_CaseInsensitive(t *testing.T) {
	for name, db := range databases(bst.WithCaseInsensitive()) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, db.Insert(&bst.User{Username: "Alice", Name: "A"}))
			assert.ErrorIs(t, db.Insert(&bst.User{Username: "alice"}), bst.ErrDuplicateUser)
			u, err := db.Find("ALICE")
			require.NoError(t, err)
			assert.Equal(t, "Alice", u.Username)
		})
	}
}

func TestTreeUserDB_ListIsSorted(t *testing.T) {
	db := bst.NewTreeUserDB()
	for _, name := range []string{"mike", "alice", "zoe", "bob"} {
		require.NoError(t, db.Insert(&bst.User{Username: name, Name: name, Email: name + "@x"}))
	}
	want := []string{
		"Username: alice, Name: alice, Email: alice@x",
		"Username: bob, Name: bob, Email: bob@x",
		"Username: mike, Name: mike, Email: mike@x",
		"Username: zoe, Name: zoe, Email: zoe@x",
	}
	assert.Equal(t, want, db.List())
	assert.Equal(t, 3, db.Height())
}

func TestUser_String(t *testing.T) {
	u := &bst.User{Username: "u", Name: "n", Email: "e"}
	assert.Equal(t, `user(username="u", name="n", email="e")`, fmt.Sprint(u))
}
