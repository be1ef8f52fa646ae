package themes

import (
	"sync"
	"testing"

	"github.com/Veraticus/lumen/internal/activity"
	"github.com/Veraticus/lumen/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDocument_Markers(t *testing.T) {
	doc := NewDocument()
	assert.Empty(t, doc.Markers())

	doc.AddMarker(model.MarkerPublic)
	doc.AddMarker(model.MarkerPublic)
	doc.AddMarker("compact")
	assert.Equal(t, []string{"compact", model.MarkerPublic}, doc.Markers())
	assert.True(t, doc.Public())

	doc.RemoveMarker(model.MarkerPublic)
	doc.RemoveMarker(model.MarkerPublic)
	assert.False(t, doc.HasMarker(model.MarkerPublic))
	assert.Equal(t, []string{"compact"}, doc.Markers())
}

func TestDocument_ConcurrentAccess(t *testing.T) {
	doc := NewDocument()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if (i+j)%2 == 0 {
					doc.AddMarker(model.MarkerPersonal)
				} else {
					doc.RemoveMarker(model.MarkerPersonal)
				}
				_ = doc.Markers()
			}
		}(i)
	}
	wg.Wait()
}

func TestGetTheme(t *testing.T) {
	tests := []struct {
		name   string
		want   Theme
		public bool
	}{
		{name: "default", public: false, want: DefaultPersonal},
		{name: "default", public: true, want: DefaultPublic},
		{name: "catppuccin-mocha", public: false, want: MochaPersonal},
		{name: "catppuccin-mocha", public: true, want: MochaPublic},
		{name: "neon", public: true, want: DefaultPublic},
	}

	for _, tt := range tests {
		got := GetTheme(tt.name, tt.public)
		assert.Equal(t, tt.want.Primary, got.Primary, "%s public=%v", tt.name, tt.public)
		assert.Equal(t, tt.want.Name, got.Name)
	}
	assert.NotEqual(t, DefaultPersonal.Primary, DefaultPublic.Primary)
}

func TestDocument_ThemeFollowsMarker(t *testing.T) {
	doc := NewDocument()
	doc.AddMarker(model.MarkerPersonal)
	assert.Equal(t, DefaultPersonal.Primary, doc.Theme("default").Primary)

	doc.RemoveMarker(model.MarkerPersonal)
	doc.AddMarker(model.MarkerPublic)
	assert.Equal(t, DefaultPublic.Primary, doc.Theme("default").Primary)
}

func TestActivityBadge(t *testing.T) {
	cfg := activity.Classify("milestone")

	badge := ActivityBadge(cfg)
	assert.Contains(t, badge, "🏆")
	assert.Contains(t, badge, "Milestone")
	assert.Equal(t, lipgloss.Color(cfg.Color), ActivityAccent(cfg))
	assert.Equal(t, []string{"default", "catppuccin-mocha"}, Names())
}
