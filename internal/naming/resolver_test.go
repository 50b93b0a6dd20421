package naming

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemBuilder_Go/internal/domain"
)

func writeAliases(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aliases.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveKind(t *testing.T) {
	path := writeAliases(t, `{
		"version": "1.0",
		"schema": "item-aliases",
		"aliases": {
			"diamond_sword": ["blade", "Big Sword"],
			"player_head": ["skull"]
		}
	}`)
	r, err := NewResolver(path)
	require.NoError(t, err)

	tests := []struct {
		name   string
		input  string
		want   domain.Kind
		wantOk bool
	}{
		{"kind name", "diamond_sword", domain.KindDiamondSword, true},
		{"spaced and cased", "Diamond Sword", domain.KindDiamondSword, true},
		{"namespaced", "minecraft:firework_rocket", domain.KindFireworkRocket, true},
		{"hyphenated", "filled-map", domain.KindFilledMap, true},
		{"alias", "blade", domain.KindDiamondSword, true},
		{"multi-word alias", "big   sword", domain.KindDiamondSword, true},
		{"alias case insensitive", "SKULL", domain.KindPlayerHead, true},
		{"unknown", "laser", "", false},
		{"empty", "  ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.ResolveKind(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayName(t *testing.T) {
	r, err := NewResolver("")
	require.NoError(t, err)

	assert.Equal(t, "Diamond Sword", r.DisplayName(domain.KindDiamondSword))
	assert.Equal(t, "Stone", r.DisplayName(domain.KindStone))
	assert.Equal(t, "Firework Rocket", r.DisplayName(domain.KindFireworkRocket))
}

func TestRegisterAlias(t *testing.T) {
	r, err := NewResolver("")
	require.NoError(t, err)

	require.NoError(t, r.RegisterAlias("Pointy Stick", domain.KindStick))
	got, ok := r.ResolveKind("pointy_stick")
	assert.True(t, ok)
	assert.Equal(t, domain.KindStick, got)

	assert.ErrorIs(t, r.RegisterAlias("", domain.KindStick), ErrEmptyAlias)
	assert.ErrorIs(t, r.RegisterAlias("thing", "not_a_kind"), ErrUnknownKind)
}

func TestReload(t *testing.T) {
	path := writeAliases(t, `{"version": "1.0", "schema": "item-aliases", "aliases": {"stone": ["rock"]}}`)
	r, err := NewResolver(path)
	require.NoError(t, err)
	require.NoError(t, r.RegisterAlias("pebble", domain.KindStone))

	_, ok := r.ResolveKind("rock")
	require.True(t, ok)

	require.NoError(t, os.WriteFile(path, []byte(`{"version": "1.1", "schema": "item-aliases", "aliases": {"stick": ["twig"]}}`), 0644))
	require.NoError(t, r.Reload())

	_, ok = r.ResolveKind("rock")
	assert.False(t, ok, "aliases from the old file are dropped")

	got, ok := r.ResolveKind("twig")
	assert.True(t, ok)
	assert.Equal(t, domain.KindStick, got)

	got, ok = r.ResolveKind("pebble")
	assert.True(t, ok, "runtime registrations survive reload")
	assert.Equal(t, domain.KindStone, got)
}

func TestNewResolver_FileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"missing version", `{"schema": "item-aliases", "aliases": {}}`, "missing version"},
		{"wrong schema", `{"version": "1.0", "schema": "item-themes"}`, "invalid schema"},
		{"unknown kind", `{"version": "1.0", "schema": "item-aliases", "aliases": {"laser_gun": ["pew"]}}`, "unknown item kind"},
		{"conflict", `{"version": "1.0", "schema": "item-aliases", "aliases": {"stone": ["x"], "stick": ["x"]}}`, "maps to both"},
		{"bad json", `{"version": `, "unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResolver(writeAliases(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewResolver_MissingFileIsEmpty(t *testing.T) {
	r, err := NewResolver(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	got, ok := r.ResolveKind("stone")
	assert.True(t, ok)
	assert.Equal(t, domain.KindStone, got)
}
