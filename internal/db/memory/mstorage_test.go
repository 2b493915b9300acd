package memory

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type target struct {
	Key string
	Val int
}

func TestSet(t *testing.T) {
	type args struct {
		key  string
		val  *target
		opts []func(*SetOptions)
	}
	ms := NewMemStorage()
	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			name: "default",
			args: args{key: "key1", val: &target{Key: "key1", Val: 1}},
		}, {
			name:    "duplicate records",
			args:    args{key: "key1", val: &target{Key: "key1", Val: 2}},
			wantErr: ErrDuplicateKey,
		}, {
			name: "overwrite",
			args: args{key: "key1", val: &target{Key: "key1", Val: 3}, opts: []func(*SetOptions){WithOverwrite()}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Set[target](t.Context(), tt.args.key, tt.args.val, ms, tt.args.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			val, getErr := Get[target](t.Context(), tt.args.key, ms)
			require.NoError(t, getErr)
			assert.Equal(t, *tt.args.val, *val)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get[target](t.Context(), "missing", NewMemStorage())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate(t *testing.T) {
	ms := NewMemStorage()
	require.NoError(t, Set(t.Context(), "k", &target{Key: "k"}, ms))

	t.Run("concurrent increments are not lost", func(t *testing.T) {
		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = Update[target](t.Context(), "k", ms, func(v *target) error {
					v.Val++
					return nil
				})
			}()
		}
		wg.Wait()

		val, err := Get[target](t.Context(), "k", ms)
		require.NoError(t, err)
		assert.Equal(t, 50, val.Val)
	})

	t.Run("fn error keeps value", func(t *testing.T) {
		boom := errors.New("boom")
		err := Update[target](t.Context(), "k", ms, func(v *target) error {
			v.Val = -1
			return boom
		})
		require.ErrorIs(t, err, boom)

		val, getErr := Get[target](t.Context(), "k", ms)
		require.NoError(t, getErr)
		assert.Equal(t, 50, val.Val)
	})

	t.Run("missing key", func(t *testing.T) {
		err := Update[target](t.Context(), "missing", ms, func(*target) error { return nil })
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFilterAllAndDelete(t *testing.T) {
	ms := NewMemStorage()
	for i := range 5 {
		key := fmt.Sprintf("key%d", i)
		require.NoError(t, Set(t.Context(), key, &target{Key: key, Val: i}, ms))
	}

	even, err := FilterAll[target](t.Context(), ms, func(v target) bool { return v.Val%2 == 0 })
	require.NoError(t, err)
	assert.Len(t, even, 3)
	assert.Equal(t, "key0", even[0].Key)

	require.NoError(t, Delete(t.Context(), "key0", ms))
	assert.ErrorIs(t, Delete(t.Context(), "key0", ms), ErrNotFound)
	assert.Equal(t, 4, ms.Len())

	all, err := GetAll[target](t.Context(), ms)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
