package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"toml", "TOML", ".toml"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, FormatTOML, f)
	}
	for _, name := range []string{"yaml", "yml", ".yml"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, FormatYAML, f)
	}

	_, err := ParseFormat("json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecode_TOML(t *testing.T) {
	data := []byte(`
enabled = true
level = "warn"
destination = "file:app.log"
`)

	l, err := Decode(data, FormatTOML)
	require.NoError(t, err)
	assert.True(t, l.Enabled())
	assert.Equal(t, LogLevelWarn, l.Level())
	assert.Equal(t, File("app.log"), l.Destination())
}

func TestDecode_YAML(t *testing.T) {
	data := []byte("enabled: true\nlevel: debug\ndestination: stderr\n")

	l, err := Decode(data, FormatYAML)
	require.NoError(t, err)
	assert.True(t, l.Enabled())
	assert.Equal(t, LogLevelDebug, l.Level())
	assert.Equal(t, Stderr(), l.Destination())
}

func TestDecode_MissingKeysKeepDefaults(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"empty toml", "", FormatTOML},
		{"empty yaml", "", FormatYAML},
		{"partial toml", "enabled = false\n", FormatTOML},
		{"partial yaml", "enabled: false\n", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Decode([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, NewLogging(), l)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		format  Format
		wantErr error
	}{
		{"bad level toml", `level = "trace"`, FormatTOML, ErrInvalidLogLevel},
		{"bad level yaml", "level: trace\n", FormatYAML, ErrInvalidLogLevel},
		{"bad destination toml", `destination = "syslog"`, FormatTOML, ErrInvalidLogOutput},
		{"bad destination yaml", "destination: syslog\n", FormatYAML, ErrInvalidLogOutput},
		{"unsupported format", "{}", Format("json"), ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Decode([]byte("enabled = "), FormatTOML)
	assert.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	original := NewLogging()
	original.SetEnabled(true)
	original.SetLevel(LogLevelError)
	original.SetDestination(File("/tmp/app.log"))

	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(original, format)
			require.NoError(t, err)
			assert.Contains(t, string(data), "file:/tmp/app.log")

			decoded, err := Decode(data, format)
			require.NoError(t, err)
			assert.Equal(t, original, decoded)
		})
	}

	_, err := Encode(original, Format("ini"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEncode_RejectsValuesDecodeCannotRead(t *testing.T) {
	tests := []struct {
		name        string
		level       LogLevel
		destination LogOutput
		wantErr     error
	}{
		{"unknown level", LogLevel("verbose"), Stdout(), ErrInvalidLogLevel},
		{"empty level", LogLevel(""), Stdout(), ErrInvalidLogLevel},
		{"empty file path", LogLevelInfo, File(""), ErrInvalidLogOutput},
	}

	for _, tt := range tests {
		for _, format := range []Format{FormatTOML, FormatYAML} {
			t.Run(tt.name+"/"+string(format), func(t *testing.T) {
				l := NewLogging()
				l.SetLevel(tt.level)
				l.SetDestination(tt.destination)

				data, err := Encode(l, format)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, data)
			})
		}
	}
}

func TestEncode_RoundTripKeepsFilePathWhitespace(t *testing.T) {
	original := NewLogging()
	original.SetDestination(File("app.log "))

	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(original, format)
			require.NoError(t, err)

			decoded, err := Decode(data, format)
			require.NoError(t, err)
			assert.Equal(t, File("app.log "), decoded.Destination())
		})
	}
}
