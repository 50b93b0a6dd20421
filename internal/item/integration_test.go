package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemBuilder_Go/internal/domain"
	"github.com/osse101/ItemBuilder_Go/internal/naming"
)

// TestStarterTemplates builds the shipped templates in strict mode
func TestStarterTemplates(t *testing.T) {
	resolver, err := naming.NewResolver("../../configs/items/aliases.json")
	require.NoError(t, err)
	loader := NewLoader(resolver, quiet()...)

	tests := []struct {
		path  string
		kinds []domain.Kind
	}{
		{
			path:  "../../configs/templates/starter.json",
			kinds: []domain.Kind{domain.KindDiamondSword, domain.KindLeatherChest, domain.KindWrittenBook, domain.KindPotion},
		},
		{
			path:  "../../configs/templates/starter.hcl",
			kinds: []domain.Kind{domain.KindFireworkRocket, domain.KindWhiteBanner, domain.KindFilledMap},
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			config, err := loader.Load(tt.path)
			require.NoError(t, err)

			built, err := loader.BuildAll(context.Background(), config)
			require.NoError(t, err)
			require.Len(t, built, len(tt.kinds))
			for i, kind := range tt.kinds {
				assert.Equal(t, kind, built[i].Stack.Kind, built[i].Name)
			}
		})
	}
}
