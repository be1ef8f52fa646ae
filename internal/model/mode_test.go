package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input  string
		want   Mode
		wantOK bool
	}{
		{input: "personal", want: ModePersonal, wantOK: true},
		{input: "public", want: ModePublic, wantOK: true},
		{input: "Public", wantOK: false},
		{input: "", wantOK: false},
		{input: "group", wantOK: false},
		{input: `"public"`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseMode(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode_Helpers(t *testing.T) {
	assert.Equal(t, ModePublic, ModePersonal.Other())
	assert.Equal(t, ModePersonal, ModePublic.Other())
	assert.Equal(t, MarkerPersonal, ModePersonal.Marker())
	assert.Equal(t, MarkerPublic, ModePublic.Marker())
	assert.Equal(t, "Personal", ModePersonal.Label())
	assert.Equal(t, "Public", ModePublic.Label())
	assert.True(t, ModePublic.Valid())
	assert.False(t, Mode("shared").Valid())
	assert.Equal(t, []Mode{ModePersonal, ModePublic}, Modes())
}

func TestEntry_VisibleIn(t *testing.T) {
	private := Entry{ID: "a", Mode: ModePersonal}
	shared := Entry{ID: "b", Mode: ModePublic}

	assert.True(t, private.VisibleIn(ModePersonal))
	assert.True(t, shared.VisibleIn(ModePersonal))
	assert.False(t, private.VisibleIn(ModePublic))
	assert.True(t, shared.VisibleIn(ModePublic))
}
