package iconchanger

import (
	"math/rand/v2"
	"sync"
	"testing"
)

func TestSelector_Sequential(t *testing.T) {
	icons := testCollection("A", "B", "C")
	s := NewSelector(icons, ModeSequential)

	want := []string{"A", "B", "C", "A", "B", "C"}
	for i, name := range want {
		icon, ok := s.Next()
		if !ok {
			t.Fatalf("call %d: Next() returned no icon", i)
		}
		if icon.Name() != name {
			t.Errorf("call %d: Next() = %v, want %v", i, icon.Name(), name)
		}
		if icon != icons[i%len(icons)] {
			t.Errorf("call %d: Next() returned a copy instead of the collection entry", i)
		}
	}
}

func TestSelector_SequentialSingle(t *testing.T) {
	s := NewSelector(testCollection("only"), ModeSequential)
	for i := 0; i < 5; i++ {
		if icon, ok := s.Next(); !ok || icon.Name() != "only" {
			t.Fatalf("call %d: Next() = %v, %v, want only", i, icon, ok)
		}
	}
}

func TestSelector_SequentialConcurrent(t *testing.T) {
	icons := testCollection("A", "B", "C", "D", "E")
	s := NewSelector(icons, ModeSequential)

	const rounds = 200
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		counts = map[string]int{}
	)
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds*len(icons)/10; i++ {
				icon, _ := s.Next()
				mu.Lock()
				counts[icon.Name()]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	for _, icon := range icons {
		if counts[icon.Name()] != rounds {
			t.Errorf("%s returned %d times, want %d", icon.Name(), counts[icon.Name()], rounds)
		}
	}
}

func TestSelector_Random(t *testing.T) {
	t.Run("always returns a member of the collection", func(t *testing.T) {
		icons := testCollection("A", "B", "C", "D")
		members := map[*Icon]bool{}
		for _, icon := range icons {
			members[icon] = true
		}
		s := NewSelector(icons, ModeRandom, WithRand(rand.New(rand.NewPCG(1, 2))))

		seen := map[*Icon]bool{}
		for i := 0; i < 1000; i++ {
			icon, ok := s.Next()
			if !ok {
				t.Fatalf("call %d: Next() returned no icon", i)
			}
			if !members[icon] {
				t.Fatalf("call %d: Next() returned %v, not in the collection", i, icon.Name())
			}
			seen[icon] = true
		}
		if len(seen) != len(icons) {
			t.Errorf("1000 draws hit %d of %d icons", len(seen), len(icons))
		}
	})

	t.Run("single icon is always returned", func(t *testing.T) {
		s := NewSelector(testCollection("only"), ModeRandom)
		for i := 0; i < 100; i++ {
			if icon, ok := s.Next(); !ok || icon.Name() != "only" {
				t.Fatalf("call %d: Next() = %v, %v, want only", i, icon, ok)
			}
		}
	})

	t.Run("global source is used without WithRand", func(t *testing.T) {
		s := NewSelector(testCollection("A", "B"), ModeRandom)
		for i := 0; i < 100; i++ {
			if _, ok := s.Next(); !ok {
				t.Fatalf("call %d: Next() returned no icon", i)
			}
		}
	})
}

func TestSelector_Empty(t *testing.T) {
	for _, mode := range []Mode{ModeRandom, ModeSequential} {
		t.Run(mode.String(), func(t *testing.T) {
			for _, icons := range []Collection{nil, {}} {
				s := NewSelector(icons, mode)
				for i := 0; i < 3; i++ {
					if icon, ok := s.Next(); ok || icon != nil {
						t.Fatalf("Next() = %v, %v, want nil, false", icon, ok)
					}
				}

				md := &recordingMetadata{favicon: "untouched"}
				if _, ok := s.Apply(md); ok {
					t.Error("Apply() reported an icon for an empty collection")
				}
				if md.calls != 0 || md.favicon != "untouched" {
					t.Errorf("Apply() modified metadata: %+v", md)
				}
			}
		})
	}
}

func TestSelector_Apply(t *testing.T) {
	s := NewSelector(testCollection("A", "B"), ModeSequential)

	md := &ServerMetadata{}
	icon, ok := s.Apply(md)
	if !ok || icon.Name() != "A" {
		t.Fatalf("Apply() = %v, %v, want A", icon, ok)
	}
	if md.Favicon != "data:image/png;base64,A" {
		t.Errorf("Favicon = %v, want the data uri of A", md.Favicon)
	}

	s.Apply(md)
	if md.Favicon != "data:image/png;base64,B" {
		t.Errorf("Favicon = %v, want the data uri of B", md.Favicon)
	}
}
