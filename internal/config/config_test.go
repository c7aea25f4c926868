package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, s string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "junction.toml")
	if err := os.WriteFile(p, []byte(s), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad(t *testing.T) {
	for _, tc := range []struct {
		name string
		file string
		want *Config
	}{
		{
			name: "empty",
			file: "",
			want: Default(),
		},
		{
			name: "all keys",
			file: "log_level = \"debug\"\nlog_format = \"json\"\ntrace = true\n",
			want: &Config{LogLevel: "debug", LogFormat: FormatJSON, Trace: true},
		},
		{
			name: "partial",
			file: "trace = true\n",
			want: &Config{LogLevel: "info", LogFormat: FormatText, Trace: true},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Load(writeConfig(t, tc.file))
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		file string
		key  string
	}{
		{"bad level", "log_level = \"loud\"\n", keyLogLevel},
		{"bad format", "log_format = \"xml\"\n", keyLogFormat},
		{"unknown key", "log_levle = \"debug\"\n", "log_levle"},
		{"wrong type", "trace = \"yes\"\n", ""},
		{"syntax", "log_level = \n", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.file))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.key) {
				t.Errorf("expected error to name %q, got %v", tc.key, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

func TestLevelAndFormatter(t *testing.T) {
	c := &Config{LogLevel: "warning", LogFormat: FormatJSON}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Level() != logrus.WarnLevel {
		t.Errorf("expected %v, got %v", logrus.WarnLevel, c.Level())
	}
	if _, ok := c.Formatter().(*logrus.JSONFormatter); !ok {
		t.Errorf("expected a JSON formatter, got %T", c.Formatter())
	}

	c = Default()
	if c.Level() != logrus.InfoLevel {
		t.Errorf("expected %v, got %v", logrus.InfoLevel, c.Level())
	}
	if _, ok := c.Formatter().(*logrus.TextFormatter); !ok {
		t.Errorf("expected a text formatter, got %T", c.Formatter())
	}
}
