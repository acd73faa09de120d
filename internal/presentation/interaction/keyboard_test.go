package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want *KeyEvent
	}{
		{"letter", []byte{'j'}, &KeyEvent{Key: 'j', Type: KeyChar}},
		{"digit", []byte{'3'}, &KeyEvent{Key: '3', Type: KeyChar}},
		{"ctrl-c", []byte{3}, &KeyEvent{Key: 3, Type: KeyChar}},
		{"carriage return", []byte{'\r'}, &KeyEvent{Key: '\r', Type: KeyEnter}},
		{"newline", []byte{'\n'}, &KeyEvent{Key: '\r', Type: KeyEnter}},
		{"tab", []byte{'\t'}, &KeyEvent{Key: '\t', Type: KeyTab}},
		{"bare escape", []byte{27}, &KeyEvent{Key: 27, Type: KeyEscape}},
		{"arrow up", []byte{27, '[', 'A'}, &KeyEvent{Type: KeyUp}},
		{"arrow down", []byte{27, '[', 'B'}, &KeyEvent{Type: KeyDown}},
		{"page up", []byte{27, '[', '5', '~'}, &KeyEvent{Type: KeyPgUp}},
		{"page down", []byte{27, '[', '6', '~'}, &KeyEvent{Type: KeyPgDn}},
		{"unknown sequence", []byte{27, '[', 'Z'}, nil},
		{"truncated page key", []byte{27, '[', '5'}, nil},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseInput(tt.buf)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}
