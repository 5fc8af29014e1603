package stack_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gg.dev/gg/internal/branchname"
	ggerrors "gg.dev/gg/internal/errors"
	"gg.dev/gg/internal/stack"
	"gg.dev/gg/testhelpers"
)

var codec = branchname.NewCodec(branchname.Config{Prefix: "me", Separator: "/"})

func id(base string, x100 uint32) branchname.Identity {
	return branchname.Identity{Prefix: "me", HasPrefix: true, Base: base, Position: branchname.NewPosition(x100)}
}

func newNavigator(t *testing.T, names ...string) *stack.Navigator {
	t.Helper()
	runner := testhelpers.NewMemoryRunner(t.TempDir())
	for _, name := range names {
		runner.SetBranch(name, "main")
	}
	return stack.NewNavigator(runner, codec)
}

func positions(ids []branchname.Identity) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Position.String())
	}
	return out
}

func TestManaged(t *testing.T) {
	nav := newNavigator(t,
		"me/feat/part-1.0",
		"me/starts/feat/part-1.0",
		"_tmp_-me/feat/part-2.0",
		"other/feat/part-1.0",
		"me/loose",
		"me/starts/part-1.0",
	)

	managed, err := nav.Managed(context.Background())
	require.NoError(t, err)

	var names []string
	for _, m := range managed {
		names = append(names, codec.Encode(m))
	}
	assert.ElementsMatch(t, []string{"me/feat/part-1.0", "me/loose", "me/starts/part-1.0"}, names)
}

func TestSiblings(t *testing.T) {
	t.Run("sorted by position", func(t *testing.T) {
		nav := newNavigator(t,
			"me/feat/part-3.0",
			"me/feat/part-1.0",
			"me/feat/part-1.5",
			"me/other/part-2.0",
		)
		siblings, err := nav.Siblings(context.Background(), "feat")
		require.NoError(t, err)
		assert.Equal(t, []string{"1.0", "1.5", "3.0"}, positions(siblings))
	})

	t.Run("unpositioned first", func(t *testing.T) {
		nav := newNavigator(t, "me/feat/part-1.0", "me/feat/part-x")
		siblings, err := nav.Siblings(context.Background(), "feat/part-x")
		require.NoError(t, err)
		require.Len(t, siblings, 1)
		assert.False(t, siblings[0].Position.IsSet())
	})

	t.Run("empty", func(t *testing.T) {
		nav := newNavigator(t)
		siblings, err := nav.Siblings(context.Background(), "feat")
		require.NoError(t, err)
		assert.Empty(t, siblings)
	})
}

func TestSortByPositionStable(t *testing.T) {
	ids := []branchname.Identity{
		id("a", 200),
		{Prefix: "me", HasPrefix: true, Base: "first"},
		id("a", 100),
		{Prefix: "me", HasPrefix: true, Base: "second"},
	}
	stack.SortByPosition(ids)
	assert.Equal(t, "first", ids[0].Base)
	assert.Equal(t, "second", ids[1].Base)
	assert.Equal(t, uint32(100), ids[2].Position.X100())
	assert.Equal(t, uint32(200), ids[3].Position.X100())
}

func TestLocate(t *testing.T) {
	nav := newNavigator(t, "me/feat/part-1.0", "me/feat/part-2.0")
	ctx := context.Background()

	idx, siblings, err := nav.Locate(ctx, id("feat", 200))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Len(t, siblings, 2)

	_, _, err = nav.Locate(ctx, id("feat", 300))
	assert.ErrorIs(t, err, ggerrors.ErrNotInStack)

	_, _, err = nav.Locate(ctx, branchname.Identity{Prefix: "me", HasPrefix: true, Base: "feat"})
	assert.ErrorIs(t, err, ggerrors.ErrNotInStack)
}

func TestNavigate(t *testing.T) {
	nav := newNavigator(t, "me/feat/part-1.0", "me/feat/part-2.0", "me/feat/part-3.0")
	ctx := context.Background()

	tests := []struct {
		name    string
		current branchname.Identity
		dir     stack.Direction
		want    string
		found   bool
	}{
		{"next from middle", id("feat", 200), stack.Direction{Kind: stack.Next}, "3.0", true},
		{"previous from middle", id("feat", 200), stack.Direction{Kind: stack.Previous}, "1.0", true},
		{"next from last", id("feat", 300), stack.Direction{Kind: stack.Next}, "", false},
		{"previous from first", id("feat", 100), stack.Direction{Kind: stack.Previous}, "", false},
		{"start of stack", id("feat", 300), stack.Direction{Kind: stack.StartOfStack}, "1.0", true},
		{"exact position", id("feat", 100), stack.At(branchname.NewPosition(200)), "2.0", true},
		{"missing exact position", id("feat", 100), stack.At(branchname.NewPosition(250)), "", false},
		{"start from unpositioned branch", branchname.Identity{Prefix: "me", HasPrefix: true, Base: "feat"}, stack.Direction{Kind: stack.StartOfStack}, "1.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := nav.Navigate(ctx, tt.current, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, got.Position.String())
				assert.Equal(t, "feat", got.Base)
			}
		})
	}

	t.Run("next needs a located branch", func(t *testing.T) {
		_, _, err := nav.Navigate(ctx, id("feat", 250), stack.Direction{Kind: stack.Next})
		assert.ErrorIs(t, err, ggerrors.ErrNotInStack)
	})
}

func TestChildren(t *testing.T) {
	nav := newNavigator(t, "me/feat/part-3.0", "me/feat/part-1.0", "me/feat/part-2.0", "me/feat/part-2.5")
	children, err := nav.Children(context.Background(), id("feat", 200))
	require.NoError(t, err)
	assert.Equal(t, []string{"2.5", "3.0"}, positions(children))

	children, err = nav.Children(context.Background(), id("feat", 300))
	require.NoError(t, err)
	assert.Empty(t, children)
}
