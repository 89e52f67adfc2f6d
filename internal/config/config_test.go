package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CXX != "" || cfg.CXXFlags != nil || cfg.IncludePaths != nil || cfg.KeepCPP {
		t.Errorf("got %#v, want zero value", cfg)
	}
}

func TestLoadParsesKnownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lorsc.yaml")
	doc := "cxx: clang++\ncxxflags: [\"-std=c++20\", \"-O2\"]\nincludePaths: [\"lib/\"]\nkeepCpp: true\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CXX != "clang++" {
		t.Errorf("got CXX=%q", cfg.CXX)
	}
	if len(cfg.CXXFlags) != 2 || cfg.CXXFlags[0] != "-std=c++20" {
		t.Errorf("got CXXFlags=%v", cfg.CXXFlags)
	}
	if len(cfg.IncludePaths) != 1 || cfg.IncludePaths[0] != "lib/" {
		t.Errorf("got IncludePaths=%v", cfg.IncludePaths)
	}
	if !cfg.KeepCPP {
		t.Errorf("got KeepCPP=false, want true")
	}
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lorsc.yaml")
	doc := "cxx: g++\nfutureKnob: 42\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CXX != "g++" {
		t.Errorf("got CXX=%q", cfg.CXX)
	}
}

func TestMergeOverridesOnlyNonZeroFields(t *testing.T) {
	base := Config{CXX: "g++", CXXFlags: []string{"-Wall"}, KeepCPP: false}
	merged := base.Merge(Config{CXX: "clang++"})
	if merged.CXX != "clang++" {
		t.Errorf("got CXX=%q, want clang++", merged.CXX)
	}
	if len(merged.CXXFlags) != 1 || merged.CXXFlags[0] != "-Wall" {
		t.Errorf("got CXXFlags=%v, want base's flags preserved", merged.CXXFlags)
	}
}
