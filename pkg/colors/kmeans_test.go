package colors

import (
	"math/rand"
	"testing"
)

func TestKmeansSeparatesDistantClusters(t *testing.T) {
	// Two tight groups far apart in RGB space.
	var points []point3
	for i := 0; i < 50; i++ {
		points = append(points, point3{R: 10 + float64(i%3), G: 10, B: 10})
	}
	for i := 0; i < 30; i++ {
		points = append(points, point3{R: 240, G: 240 + float64(i%3), B: 240})
	}

	rng := rand.New(rand.NewSource(42))
	centroids, counts, converged := kmeans(points, 2, rng, 50, 1.0)
	if !converged {
		t.Fatal("Expected convergence on well-separated clusters")
	}
	if len(centroids) != 2 {
		t.Fatalf("Expected 2 centroids, got %d", len(centroids))
	}

	total := counts[0] + counts[1]
	if total != 80 {
		t.Errorf("Expected 80 assigned points, got %d", total)
	}
	if counts[0] != 50 && counts[0] != 30 {
		t.Errorf("Expected cluster sizes 50 and 30, got %v", counts)
	}

	for _, c := range centroids {
		nearDark := c.R < 50 && c.G < 50 && c.B < 50
		nearLight := c.R > 200 && c.G > 200 && c.B > 200
		if !nearDark && !nearLight {
			t.Errorf("Centroid %v is not near either group", c)
		}
	}
}

func TestKmeansDeterministicForFixedSeed(t *testing.T) {
	var points []point3
	for i := 0; i < 200; i++ {
		points = append(points, point3{
			R: float64((i * 37) % 256),
			G: float64((i * 91) % 256),
			B: float64((i * 53) % 256),
		})
	}

	run := func() ([]point3, []int) {
		rng := rand.New(rand.NewSource(42))
		centroids, counts, converged := kmeans(points, 4, rng, 50, 1.0)
		if !converged {
			t.Fatal("Expected convergence")
		}
		return centroids, counts
	}

	c1, n1 := run()
	c2, n2 := run()

	for i := range c1 {
		if c1[i] != c2[i] || n1[i] != n2[i] {
			t.Fatalf("Runs differ at cluster %d: %v/%d vs %v/%d", i, c1[i], n1[i], c2[i], n2[i])
		}
	}
}

func TestDistance(t *testing.T) {
	a := point3{R: 0, G: 0, B: 0}
	b := point3{R: 3, G: 4, B: 0}
	if d := a.distance(b); d != 5 {
		t.Errorf("Expected distance 5, got %g", d)
	}
}
