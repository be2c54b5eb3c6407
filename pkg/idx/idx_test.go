package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewIsSortable(t *testing.T) {
	t.Parallel()

	a := NewAt(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	b := NewAt(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.Less(t, a.String(), b.String())
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("round trips a generated id", func(t *testing.T) {
		id := New()
		parsed, err := Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})

	t.Run("rejects empty and malformed input", func(t *testing.T) {
		_, err := Parse("")
		require.ErrorIs(t, err, ErrInvalid)

		_, err = Parse("not-a-ulid")
		require.ErrorIs(t, err, ErrInvalid)
	})
}

func TestTimeExtraction(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 15, 12, 30, 0, 0, time.UTC)
	id := NewAt(at)
	require.WithinDuration(t, at, id.Time(), time.Millisecond)

	require.True(t, Zero.IsZero())
	require.True(t, Zero.Time().IsZero())
}
