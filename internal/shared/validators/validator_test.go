package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type charsetHolder struct {
	Encoding string `validate:"required,charset"`
}

func TestNew_CharsetTag(t *testing.T) {
	t.Parallel()

	validate := New()

	for _, label := range []string{"utf-8", "UTF-8", "latin1", "windows-1252", "shift_jis"} {
		assert.NoError(t, validate.Struct(&charsetHolder{Encoding: label}), "label %q", label)
	}

	err := validate.Struct(&charsetHolder{Encoding: "klingon-8"})
	if assert.Error(t, err) {
		ve, ok := err.(ValidationErrors)
		if assert.True(t, ok) {
			assert.Equal(t, "charset", ve[0].Tag())
		}
	}
}
