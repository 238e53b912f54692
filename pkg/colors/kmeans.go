package colors

import (
	"math"
	"math/rand"
)

// point3 is a point in RGB space treated as 3-D Euclidean coordinates.
type point3 struct {
	R, G, B float64
}

// distance returns the Euclidean distance between two points.
func (p point3) distance(other point3) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// kmeans clusters points into k groups using k-means++ initialization and a
// bounded iteration count. It returns the final centroids, the number of
// points assigned to each, and whether a convergence criterion was met before
// the iteration bound. All randomness comes from rng, so results are
// reproducible for a fixed seed.
func kmeans(points []point3, k int, rng *rand.Rand, maxIterations int, convergence float64) ([]point3, []int, bool) {
	centroids := initCentroids(points, k, rng)
	assignments := make([]int, len(points))
	converged := false

	for iter := 0; iter < maxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// Assignment churn below 1% counts as converged.
		if float64(changed)/float64(len(points)) < 0.01 {
			converged = true
			break
		}

		next := recalculateCentroids(points, assignments, k, rng)

		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next

		if movement/float64(k) < convergence {
			converged = true
			break
		}
	}

	counts := make([]int, k)
	for _, a := range assignments {
		counts[a]++
	}
	return centroids, counts, converged
}

// initCentroids picks initial centroids with the k-means++ scheme: the first
// uniformly at random, each subsequent one with probability proportional to
// its squared distance from the nearest existing centroid.
func initCentroids(points []point3, k int, rng *rand.Rand) []point3 {
	if len(points) == 0 || k == 0 {
		return nil
	}

	centroids := make([]point3, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := p.distance(c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Every remaining point coincides with an existing centroid;
			// duplicate the last one slightly perturbed so k is reached.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid returns the index of the centroid closest to p.
func nearestCentroid(p point3, centroids []point3) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := p.distance(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recalculateCentroids moves each centroid to the mean of its assigned
// points. Empty clusters are reseeded from a random point.
func recalculateCentroids(points []point3, assignments []int, k int, rng *rand.Rand) []point3 {
	sums := make([]point3, k)
	counts := make([]int, k)

	for i, p := range points {
		cluster := assignments[i]
		sums[cluster].R += p.R
		sums[cluster].G += p.G
		sums[cluster].B += p.B
		counts[cluster]++
	}

	centroids := make([]point3, k)
	for i := range centroids {
		if counts[i] > 0 {
			centroids[i] = point3{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rng.Intn(len(points))]
		}
	}
	return centroids
}
