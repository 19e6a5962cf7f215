package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips_ini_extension", "opcache.ini", "opcache"},
		{"strips_so_extension", "igbinary.so", "igbinary"},
		{"strips_ini_then_so", "igbinary.so.ini", "igbinary"},
		{"takes_basename_of_path", "/tmp/conf/opcache.ini", "opcache"},
		{"leaves_bare_name_untouched", "ext-igbinary", "ext-igbinary"},
		{"keeps_inner_dots", "memory.limit.ini", "memory.limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalName(tt.input))
		})
	}
}

func TestStoredName(t *testing.T) {
	t.Run("prepends_kind_prefix", func(t *testing.T) {
		assert.Equal(t, "cfg-opcache", StoredName(KindConfig, "opcache"))
		assert.Equal(t, "ext-igbinary", StoredName(KindExtension, "igbinary"))
	})

	t.Run("empty_kind_returns_name_unchanged", func(t *testing.T) {
		assert.Equal(t, "ext-igbinary", StoredName("", "ext-igbinary"))
	})
}
