package driver

import (
	"testing"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCache("hidlgen-test", t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	key := CombineDigests("android.hardware.light@1.0", HashContent([]byte("body")))
	payload := &CachePayload{
		Schema:  cacheSchemaVersion,
		Package: "android.hardware.light",
		Targets: []string{"cpp"},
		Names:   []string{"ILight.h"},
		Content: [][]byte{[]byte("#pragma once\n")},
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got CachePayload
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatalf("expected a cache hit")
	}
	if got.Package != payload.Package || got.Names[0] != "ILight.h" {
		t.Errorf("payload mismatch: %+v", got)
	}
	if string(got.Content[0]) != "#pragma once\n" {
		t.Errorf("content mismatch: %q", got.Content[0])
	}
}

func TestDiskCacheMissAndDrop(t *testing.T) {
	cache, err := OpenDiskCache("hidlgen-test", t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	var out CachePayload
	hit, err := cache.Get(CombineDigests("nothing"), &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Fatalf("empty cache must miss")
	}

	key := CombineDigests("pkg", HashContent([]byte("x")))
	if err := cache.Put(key, &CachePayload{Schema: cacheSchemaVersion}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if hit, _ := cache.Get(key, &out); hit {
		t.Errorf("dropped cache must miss")
	}
}

func TestDiskCacheNilNeverHits(t *testing.T) {
	var cache *DiskCache
	if err := cache.Put(Digest{}, &CachePayload{}); err != nil {
		t.Errorf("nil Put: %v", err)
	}
	var out CachePayload
	if hit, err := cache.Get(Digest{}, &out); hit || err != nil {
		t.Errorf("nil Get = (%v, %v), want miss", hit, err)
	}
}

func TestCombineDigestsDistinguishesOrder(t *testing.T) {
	a := HashContent([]byte("a"))
	b := HashContent([]byte("b"))
	if CombineDigests("pkg", a, b) == CombineDigests("pkg", b, a) {
		t.Errorf("digest must depend on file order")
	}
	if CombineDigests("pkg", a) == CombineDigests("other", a) {
		t.Errorf("digest must depend on package identity")
	}
}
