package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_ReadString(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompterWithIO(strings.NewReader("bob\n"), &out)

	value, err := prompter.ReadString("CASICS user name", "")
	require.NoError(t, err)

	assert.Equal(t, "bob", value)
	assert.Equal(t, "CASICS user name: ", out.String())
}

func TestPrompter_ReadString_Default(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompterWithIO(strings.NewReader("\n"), &out)

	value, err := prompter.ReadString("CASICS host", "localhost")
	require.NoError(t, err)

	assert.Equal(t, "localhost", value)
	assert.Equal(t, "CASICS host [localhost]: ", out.String())
}

func TestPrompter_ReadString_OverridesDefault(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompterWithIO(strings.NewReader("db.example.org\n"), &out)

	value, err := prompter.ReadString("CASICS host", "localhost")
	require.NoError(t, err)
	assert.Equal(t, "db.example.org", value)
}

func TestPrompter_ReadString_TrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompterWithIO(strings.NewReader("  bob  \n"), &out)

	value, err := prompter.ReadString("user", "")
	require.NoError(t, err)
	assert.Equal(t, "bob", value)
}

func TestPrompter_ReadString_EOF(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompterWithIO(strings.NewReader(""), &out)

	_, err := prompter.ReadString("CASICS user name", "")
	assert.Error(t, err)
}

func TestPrompter_ReadString_ValueWithoutTrailingNewline(t *testing.T) {
	// Final line of piped input may lack a newline; the value still counts
	var out bytes.Buffer
	prompter := NewPrompterWithIO(strings.NewReader("bob"), &out)

	value, err := prompter.ReadString("user", "")
	require.NoError(t, err)
	assert.Equal(t, "bob", value)
}

func TestPrompter_ReadSecret_FallbackRead(t *testing.T) {
	// Not a terminal, so the plain read path is used
	var out bytes.Buffer
	prompter := NewPrompterWithIO(strings.NewReader("s3cret\n"), &out)

	value, err := prompter.ReadSecret("CASICS password")
	require.NoError(t, err)

	assert.Equal(t, "s3cret", value)
	assert.Equal(t, "CASICS password: ", out.String())
}

func TestPrompter_ReadSecret_EOF(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompterWithIO(strings.NewReader(""), &out)

	_, err := prompter.ReadSecret("CASICS password")
	assert.Error(t, err)
}
