package manifold_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/camber-bio/manifold"
)

func TestClosureCache_ReusesResolvedClosure(t *testing.T) {
	a := attr("a")
	a.RequiredDependencies = []manifold.AttributeID{"b"}
	b := attr("b")

	resolver := manifold.NewResolver(schemaOf(a, b))
	cache := manifold.NewClosureCache()
	m := manifold.Manifest{Name: "M1", Roots: []manifold.AttributeID{"a"}}

	first := resolver.CachedClosureFor(cache, m)
	second := resolver.CachedClosureFor(cache, m)

	if cache.Size() != 1 {
		t.Fatalf("expected one cached entry, got %d", cache.Size())
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected cached result to match original")
	}
	if len(first) > 0 && &first[0] != &second[0] {
		t.Errorf("expected the cached slice to be returned, not a recomputation")
	}
}

func TestClosureCache_KeyIsCanonicalOverRootSet(t *testing.T) {
	a := attr("a")
	b := attr("b")

	resolver := manifold.NewResolver(schemaOf(a, b))
	cache := manifold.NewClosureCache()

	m1 := manifold.Manifest{Name: "M1", Roots: []manifold.AttributeID{"a"}}
	m2 := manifold.Manifest{Name: "M2", Roots: []manifold.AttributeID{"b"}}

	resolver.CachedClosureFor(cache, m1, m2)
	resolver.CachedClosureFor(cache, m2, m1)

	if cache.Size() != 1 {
		t.Fatalf("expected manifest order not to fragment the cache, got %d entries", cache.Size())
	}
}

func TestClosureCache_DistinctRootSets(t *testing.T) {
	a := attr("a")
	b := attr("b")

	resolver := manifold.NewResolver(schemaOf(a, b))
	cache := manifold.NewClosureCache()

	resolver.CachedClosureFor(cache, manifold.Manifest{Name: "M1", Roots: []manifold.AttributeID{"a"}})
	resolver.CachedClosureFor(cache, manifold.Manifest{Name: "M1", Roots: []manifold.AttributeID{"a", "b"}})

	if cache.Size() != 2 {
		t.Fatalf("expected distinct root sets to cache separately, got %d entries", cache.Size())
	}
}

func TestClosureCache_TTLExpiry(t *testing.T) {
	a := attr("a")

	resolver := manifold.NewResolver(schemaOf(a))
	cache := manifold.NewClosureCache(manifold.WithTTL(time.Nanosecond))
	m := manifold.Manifest{Name: "M1", Roots: []manifold.AttributeID{"a"}}

	resolver.CachedClosureFor(cache, m)
	time.Sleep(time.Millisecond)
	resolver.CachedClosureFor(cache, m)

	// The expired entry is replaced, not accumulated.
	if cache.Size() != 1 {
		t.Fatalf("expected expired entry to be replaced, got %d entries", cache.Size())
	}
}

func TestClosureCache_Clear(t *testing.T) {
	a := attr("a")

	resolver := manifold.NewResolver(schemaOf(a))
	cache := manifold.NewClosureCache()
	resolver.CachedClosureFor(cache, manifold.Manifest{Name: "M1", Roots: []manifold.AttributeID{"a"}})

	cache.Clear()

	if cache.Size() != 0 {
		t.Fatalf("expected empty cache after Clear, got %d entries", cache.Size())
	}
}
