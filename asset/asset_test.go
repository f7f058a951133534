package asset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/lixenwraith/flapper/status"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{A: 0})                           // transparent
	img.Set(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255}) // white
	img.Set(0, 1, color.NRGBA{A: 255})                         // black
	img.Set(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 64})  // mostly transparent
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeTextPadsRows(t *testing.T) {
	s, err := DecodeText(strings.NewReader("ab\nabcd\n\n\n"))
	if err != nil {
		t.Fatalf("DecodeText failed: %v", err)
	}
	if s.Width != 4 || s.Height != 2 {
		t.Fatalf("Expected 4x2, got %dx%d", s.Width, s.Height)
	}
	if s.At(2, 0) != Transparent || s.At(3, 1) != 'd' {
		t.Errorf("Unexpected cells %q", string(s.Cells))
	}
	if s.At(-1, 0) != Transparent || s.At(0, 5) != Transparent {
		t.Error("Expected out of range lookups to be transparent")
	}
}

func TestDecodeTextEmpty(t *testing.T) {
	if _, err := DecodeText(strings.NewReader("\n  \n")); err == nil {
		t.Error("Expected error for empty sprite")
	}
}

func TestFlipY(t *testing.T) {
	s, err := DecodeText(strings.NewReader("ab\ncd\nef"))
	if err != nil {
		t.Fatalf("DecodeText failed: %v", err)
	}
	f := s.FlipY()
	if got := string(f.Cells); got != "efcdab" {
		t.Errorf("Expected efcdab, got %s", got)
	}
	if string(s.Cells) != "abcdef" {
		t.Error("FlipY must not modify the source sprite")
	}
}

func TestDecodePNG(t *testing.T) {
	s, err := DecodePNG(bytes.NewReader(encodePNG(t)))
	if err != nil {
		t.Fatalf("DecodePNG failed: %v", err)
	}
	if s.Width != 2 || s.Height != 2 {
		t.Fatalf("Expected 2x2, got %dx%d", s.Width, s.Height)
	}
	if s.At(0, 0) != Transparent || s.At(1, 1) != Transparent {
		t.Errorf("Expected transparent cells, got %q", string(s.Cells))
	}
	if s.At(0, 1) != '@' {
		t.Errorf("Expected black pixel to map to '@', got %q", s.At(0, 1))
	}
	if s.At(1, 0) != '.' {
		t.Errorf("Expected white pixel to map to '.', got %q", s.At(1, 0))
	}
}

func TestLoaderStatuses(t *testing.T) {
	fsys := fstest.MapFS{
		"a.txt":   {Data: []byte("xx\nxx\n")},
		"b.png":   {Data: encodePNG(t)},
		"c.bmp":   {Data: []byte("nope")},
		"bad.png": {Data: []byte("not a png")},
	}
	reg := status.NewRegistry()
	l := NewLoader(fsys, reg)

	txt := l.Load("a.txt")
	img := l.Load("b.png")
	unsupported := l.Load("c.bmp")
	corrupt := l.Load("bad.png")
	missing := l.Load("missing.txt")
	l.Wait()

	for _, h := range []Handle{txt, img} {
		if got := l.Status(h); got != StatusLoaded {
			t.Errorf("Handle %d: expected loaded, got %s", h, got)
		}
		if _, ok := l.Sprite(h); !ok {
			t.Errorf("Handle %d: expected sprite", h)
		}
		if err := l.Err(h); err != nil {
			t.Errorf("Handle %d: expected no error, got %v", h, err)
		}
	}
	for _, h := range []Handle{unsupported, corrupt, missing} {
		if got := l.Status(h); got != StatusFailed {
			t.Errorf("Handle %d: expected failed, got %s", h, got)
		}
		if _, ok := l.Sprite(h); ok {
			t.Errorf("Handle %d: expected no sprite", h)
		}
		if l.Err(h) == nil {
			t.Errorf("Handle %d: expected error", h)
		}
	}

	if got := reg.Ints.Get(status.KeyAssetLoaded).Load(); got != 2 {
		t.Errorf("Expected 2 loaded, got %d", got)
	}
	if got := reg.Ints.Get(status.KeyAssetFailed).Load(); got != 3 {
		t.Errorf("Expected 3 failed, got %d", got)
	}
}

func TestLoaderDeduplicatesPaths(t *testing.T) {
	l := NewLoader(fstest.MapFS{"a.txt": {Data: []byte("x")}}, nil)
	h1 := l.Load("a.txt")
	h2 := l.Load("a.txt")
	l.Wait()
	if h1 != h2 {
		t.Errorf("Expected shared handle, got %d and %d", h1, h2)
	}
}

func TestLoaderUnknownHandle(t *testing.T) {
	l := NewLoader(fstest.MapFS{}, nil)
	if l.Status(0) != StatusFailed || l.Status(99) != StatusFailed {
		t.Error("Expected unknown handles to read as failed")
	}
	if l.Err(99) == nil {
		t.Error("Expected error for unknown handle")
	}
}

func TestEmbeddedManifestResolves(t *testing.T) {
	m, err := LoadManifest(FS, "manifest.toml")
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}

	l := NewLoader(FS, nil)
	var handles []Handle
	for _, name := range m.Names() {
		p, err := m.Path(name)
		if err != nil {
			t.Fatalf("Path(%s): %v", name, err)
		}
		handles = append(handles, l.Load(p))
	}
	l.Wait()

	if len(handles) != 3 {
		t.Fatalf("Expected 3 bundled sprites, got %d", len(handles))
	}
	for _, h := range handles {
		if l.Status(h) != StatusLoaded {
			t.Errorf("Bundled sprite %d failed: %v", h, l.Err(h))
		}
	}
}

func TestManifestErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.toml":   {Data: []byte("")},
		"unknown.toml": {Data: []byte("[sprites]\na = \"a.txt\"\n[extra]\nb = 1\n")},
		"broken.toml":  {Data: []byte("[sprites\n")},
		"ok.toml":      {Data: []byte("[sprites]\na = \"a.txt\"\n")},
	}
	for _, name := range []string{"empty.toml", "unknown.toml", "broken.toml", "missing.toml"} {
		if _, err := LoadManifest(fsys, name); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	m, err := LoadManifest(fsys, "ok.toml")
	if err != nil {
		t.Fatalf("ok.toml: %v", err)
	}
	if _, err := m.Path("missing"); err == nil {
		t.Error("Expected error for undeclared sprite")
	}
}
