package branchname_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gg.dev/gg/internal/branchname"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	codec := branchname.NewCodec(branchname.Config{Prefix: "wh", Separator: "/"})

	tests := []struct {
		name      string
		id        branchname.Identity
		wantFull  string
		wantStart string
	}{
		{
			name:      "prefixed and positioned",
			id:        branchname.Identity{Prefix: "wh", HasPrefix: true, Base: "feature", Position: branchname.NewPosition(100)},
			wantFull:  "wh/feature/part-1.0",
			wantStart: "wh/starts/feature/part-1.0",
		},
		{
			name:      "fractional position",
			id:        branchname.Identity{Prefix: "wh", HasPrefix: true, Base: "feature", Position: branchname.NewPosition(250)},
			wantFull:  "wh/feature/part-2.5",
			wantStart: "wh/starts/feature/part-2.5",
		},
		{
			name:      "unpositioned",
			id:        branchname.Identity{Prefix: "wh", HasPrefix: true, Base: "feature"},
			wantFull:  "wh/feature",
			wantStart: "wh/starts/feature",
		},
		{
			name:      "no prefix",
			id:        branchname.Identity{Base: "feature", Position: branchname.NewPosition(300)},
			wantFull:  "feature/part-3.0",
			wantStart: "starts/feature/part-3.0",
		},
		{
			name:      "second decimal is truncated",
			id:        branchname.Identity{Prefix: "wh", HasPrefix: true, Base: "x", Position: branchname.NewPosition(149)},
			wantFull:  "wh/x/part-1.4",
			wantStart: "wh/starts/x/part-1.4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantFull, codec.Encode(tt.id))
			assert.Equal(t, tt.wantStart, codec.EncodeStart(tt.id))
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	codec := branchname.NewCodec(branchname.Config{Prefix: "wh", Separator: "_"})

	t.Run("full name", func(t *testing.T) {
		t.Parallel()
		id := codec.Decode("wh_my_feature_part-2.0")
		require.True(t, id.HasPrefix)
		require.Equal(t, "wh", id.Prefix)
		require.Equal(t, "my_feature", id.Base)
		require.Equal(t, uint32(200), id.Position.X100())
	})

	t.Run("splits on the last part marker", func(t *testing.T) {
		t.Parallel()
		id := codec.Decode("wh_a_part-1.0_b_part-3.0")
		require.Equal(t, "a_part-1.0_b", id.Base)
		require.Equal(t, uint32(300), id.Position.X100())
	})

	t.Run("foreign branch keeps whole string as base", func(t *testing.T) {
		t.Parallel()
		id := codec.Decode("main")
		require.False(t, id.HasPrefix)
		require.Equal(t, "main", id.Base)
		require.False(t, id.Position.IsSet())
	})

	t.Run("unparsable position falls back to base", func(t *testing.T) {
		t.Parallel()
		id := codec.Decode("wh_feature_part-abc")
		require.True(t, id.HasPrefix)
		require.Equal(t, "feature_part-abc", id.Base)
		require.False(t, id.Position.IsSet())
	})

	t.Run("prefix only matches at the start", func(t *testing.T) {
		t.Parallel()
		id := codec.Decode("xwh_feature")
		require.False(t, id.HasPrefix)
		require.Equal(t, "xwh_feature", id.Base)
	})

	t.Run("never panics on odd input", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"", "_", "wh_", "_part-", "wh__part-", "wh_part-1.0", "_tmp_-wh_x_part-1.0", "wh_x_part-NaN", "wh_x_part--1"} {
			require.NotPanics(t, func() { codec.Decode(raw) }, raw)
		}
		require.False(t, codec.Decode("wh_x_part-NaN").Position.IsSet())
		require.False(t, codec.Decode("wh_x_part--1").Position.IsSet())
	})
}

func TestDecodeAny(t *testing.T) {
	t.Parallel()

	codec := branchname.NewCodec(branchname.Config{Prefix: "wh", Separator: "/"})

	id, start := codec.DecodeAny("wh/starts/feature/part-1.0")
	require.True(t, start)
	require.Equal(t, "feature", id.Base)
	require.Equal(t, uint32(100), id.Position.X100())

	id, start = codec.DecodeAny("wh/feature/part-1.0")
	require.False(t, start)
	require.Equal(t, "feature", id.Base)

	require.True(t, codec.IsStart("starts/feature"))
	require.False(t, codec.IsStart("wh/starts"))

	id, start = codec.DecodeAny("wh/starts/part-1.0")
	require.False(t, start)
	require.Equal(t, "starts", id.Base)
	require.Equal(t, uint32(100), id.Position.X100())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	configs := []branchname.Config{
		{Prefix: "wh", Separator: "/"},
		{Prefix: "user", Separator: "_"},
		{Prefix: "team-a", Separator: "--"},
	}
	bases := []string{"feature", "fix-login", "deep_nested", "a.b"}
	positions := []branchname.Position{
		{},
		branchname.NewPosition(0),
		branchname.NewPosition(100),
		branchname.NewPosition(150),
		branchname.NewPosition(1230),
		branchname.NewPosition(99990),
	}

	for _, cfg := range configs {
		codec := branchname.NewCodec(cfg)
		for _, base := range bases {
			for _, pos := range positions {
				for _, prefixed := range []bool{true, false} {
					id := branchname.Identity{Base: base, Position: pos}
					if prefixed {
						id = id.WithPrefix(cfg.Prefix)
					}

					require.Equal(t, id, codec.Decode(codec.Encode(id)), codec.Encode(id))

					got, start := codec.DecodeAny(codec.EncodeStart(id))
					require.True(t, start, codec.EncodeStart(id))
					require.Equal(t, id, got, codec.EncodeStart(id))
				}
			}
		}
	}
}

func TestParsePosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  uint32
		ok    bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.5", 150, true},
		{"1.499", 149, true},
		{"1.15", 115, true},
		{"0.07", 7, true},
		{".5", 50, true},
		{"2.", 200, true},
		{"+3", 300, true},
		{"1e1", 1000, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-1.0", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{"1.2.3", 0, false},
		{"99999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := branchname.ParsePosition(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.want, got.X100())
			}
		})
	}
}

func TestPositionFromFloat(t *testing.T) {
	t.Parallel()

	for input, want := range map[float64]uint32{1.0: 100, 1.15: 115, 1.499: 149, 2.5: 250} {
		pos, ok := branchname.PositionFromFloat(input)
		require.True(t, ok, input)
		require.Equal(t, want, pos.X100(), input)
	}

	_, ok := branchname.PositionFromFloat(-1)
	require.False(t, ok)
}

func TestParsePart(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"1", "1.5", "2.0", "10.9"} {
		pos, err := branchname.ParsePart(input)
		require.NoError(t, err, input)

		codec := branchname.NewCodec(branchname.Config{Prefix: "me", Separator: "/"})
		id := branchname.Identity{}.WithPrefix("me").WithBase("feat").WithPosition(pos)
		require.Equal(t, id, codec.Decode(codec.Encode(id)), input)
	}

	for _, input := range []string{"1.49", "0.07", "1.15", "x"} {
		_, err := branchname.ParsePart(input)
		require.Error(t, err, input)
	}
}

func TestPositionOrdering(t *testing.T) {
	t.Parallel()

	unset := branchname.Position{}
	one := branchname.NewPosition(100)
	two := branchname.NewPosition(200)

	assert.True(t, unset.Less(one))
	assert.False(t, one.Less(unset))
	assert.False(t, unset.Less(unset))
	assert.True(t, one.Less(two))
	assert.Equal(t, two, one.Add(100))
	assert.Equal(t, one, unset.Add(100))
}

func TestTransactionMarker(t *testing.T) {
	t.Parallel()

	name := branchname.TmpName("wh/feature/part-1.0")
	require.Equal(t, "_tmp_-wh/feature/part-1.0", name)
	require.True(t, branchname.IsTmp(name))

	orig, ok := branchname.FromTmp(name)
	require.True(t, ok)
	require.Equal(t, "wh/feature/part-1.0", orig)

	_, ok = branchname.FromTmp("wh/feature/part-1.0")
	require.False(t, ok)
	_, ok = branchname.FromTmp(branchname.TransactionMarker)
	require.False(t, ok)
}
